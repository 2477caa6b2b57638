// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpsfmt

import (
	"path/filepath"
	"strings"
)

// An Input names one sample file and the label its samples are shown
// under.
type Input struct {
	Label string
	Path  string
}

func (in Input) String() string {
	return in.Label + "=" + in.Path
}

// ParseInputs parses a list of input specifications.
//
// Each specification is either "label=path" or a bare path. A bare
// path is labeled with its base name, minus any extension, so
// "fps/OpenGL.csv" becomes "OpenGL".
func ParseInputs(specs []string) []Input {
	inputs := make([]Input, 0, len(specs))
	for _, spec := range specs {
		if i := strings.Index(spec, "="); i >= 0 {
			inputs = append(inputs, Input{Label: spec[:i], Path: spec[i+1:]})
			continue
		}
		inputs = append(inputs, Input{Label: defaultLabel(spec), Path: spec})
	}
	return inputs
}

func defaultLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
