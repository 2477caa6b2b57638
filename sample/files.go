// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"

	"github.com/nvgx/fpsviolin/fpsfmt"
)

// DefaultInputs are the sample files read when none are given, in
// backend order.
var DefaultInputs = []fpsfmt.Input{
	{Label: "OpenGL", Path: "fps/ogl.txt"},
	{Label: "OpenGL(Inst)", Path: "fps/ogl-inst.txt"},
	{Label: "WGPU-Vulkan", Path: "fps/wgpu.txt"},
	{Label: "WGPU-Vulkan(Inst)", Path: "fps/wgpu-inst.txt"},
}

// A Files is a Source that reads one set per sample file.
type Files struct {
	// Inputs lists the files to read. Each input's label becomes
	// the Name of its set.
	Inputs []fpsfmt.Input

	// Unit is the unit the files are recorded in. Values are
	// converted to frames per second.
	Unit Unit
}

func (f *Files) Sets() ([]*Set, error) {
	if len(f.Inputs) == 0 {
		return nil, fmt.Errorf("no sample files")
	}
	sets := make([]*Set, 0, len(f.Inputs))
	for _, in := range f.Inputs {
		values, err := fpsfmt.ReadFile(in.Path)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			if values[i], err = f.Unit.ToFPS(v); err != nil {
				return nil, fmt.Errorf("%s: sample %d: %w", in.Path, i+1, err)
			}
		}
		sets = append(sets, &Set{Name: in.Label, Values: values})
	}
	return sets, nil
}
