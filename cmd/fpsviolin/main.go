// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fpsviolin charts frame-rate samples of several rendering backends
// as violin plots.
//
// Usage:
//
//	fpsviolin [flags] [label=path ...]
//
// With no arguments, fpsviolin charts synthetic samples: 100 values
// from each of four zero-mean normal distributions with standard
// deviations 6, 7, 8 and 9, drawn with seed 19680801. This previews
// the chart layout before any measurements exist.
//
// Given sample files, fpsviolin charts one violin per file, in
// argument order. A sample file holds white-space separated numbers;
// "#" starts a comment. Each argument may be prefixed with "label="
// to name its violin; otherwise the file's base name is used. Use
// --unit s or --unit ms for files of frame times instead of frame rates.
//
// The chart opens in a window and fpsviolin exits when the window is
// closed. Press Q or Escape to close it.
//
// A TOML file given by --config can set everything the flags can,
// plus the chart's size, labels and markers. Flags override the file.
//
// Example
//
// Record frame times in the demo with the save-fps feature, then:
//
//	fpsviolin --unit s OpenGL=ogl.csv 'OpenGL(Inst)=ogl-inst.csv' \
//		WGPU-Vulkan=wgpu.csv 'WGPU-Vulkan(Inst)=wgpu-inst.csv'
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "fpsviolin",
	})
	cmd := newRootCommand(logger, showChart)
	if err := cmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
