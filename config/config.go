// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a chart run.
//
// The zero-argument defaults reproduce the reference benchmark chart.
// A TOML file may override any of them:
//
//	[source]
//	mode = "file"
//	files = ["OpenGL=fps/ogl.txt", "OpenGL(Inst)=fps/ogl-inst.txt"]
//	unit = "s"
//
//	[chart]
//	labels = ["OpenGL", "OpenGL(Inst)"]
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"

	"github.com/nvgx/fpsviolin/fpsfmt"
	"github.com/nvgx/fpsviolin/sample"
	"github.com/nvgx/fpsviolin/violin"
)

// Source modes.
const (
	ModeSynthetic = "synthetic"
	ModeFile      = "file"
)

// ErrInvalid is returned for configurations that fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full configuration of a run.
type Config struct {
	Source Source `toml:"source"`
	Chart  Chart  `toml:"chart"`
}

// Source selects and parameterizes where sample sets come from.
type Source struct {
	// Mode is ModeSynthetic or ModeFile.
	Mode string `toml:"mode"`

	// Synthetic parameters.
	Seed    int64     `toml:"seed"`
	Mean    float64   `toml:"mean"`
	StdDevs []float64 `toml:"stddevs"`
	Samples int       `toml:"samples"`

	// Files lists sample files as "label=path" or "path".
	Files []string `toml:"files"`
	// Unit is the unit the files are recorded in: fps, s or ms.
	Unit string `toml:"unit"`
}

// Chart holds presentation settings.
type Chart struct {
	Title  string `toml:"title"`
	YLabel string `toml:"ylabel"`

	// Labels name the sets on the x axis. If empty, the names of
	// the sets themselves are used.
	Labels []string `toml:"labels"`

	Grid bool `toml:"grid"`

	// Width and Height are in inches.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	DPI    int     `toml:"dpi"`

	Medians bool `toml:"medians"`
	Means   bool `toml:"means"`
	Extrema bool `toml:"extrema"`
}

// Default returns the reference configuration: the synthetic source
// with seed 19680801 and standard deviations 6 through 9, charted
// under the four backend labels.
func Default() *Config {
	files := make([]string, len(sample.DefaultInputs))
	for i, in := range sample.DefaultInputs {
		files[i] = in.String()
	}
	return &Config{
		Source: Source{
			Mode:    ModeSynthetic,
			Seed:    sample.DefaultSeed,
			StdDevs: []float64{6, 7, 8, 9},
			Samples: 100,
			Files:   files,
			Unit:    sample.FPS.String(),
		},
		Chart: Chart{
			Title:   violin.DefaultTitle,
			YLabel:  "FPS",
			Labels:  append([]string(nil), violin.DefaultLabels...),
			Grid:    true,
			Width:   9,
			Height:  4,
			DPI:     100,
			Medians: true,
			Extrema: true,
		},
	}
}

// Load reads the TOML file at path over the defaults. Keys missing
// from the file keep their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks cfg for settings that cannot produce a chart.
func (cfg *Config) Validate() error {
	switch cfg.Source.Mode {
	case ModeSynthetic:
		if cfg.Source.Samples <= 0 {
			return fmt.Errorf("%w: source.samples must be positive, got %d", ErrInvalid, cfg.Source.Samples)
		}
		if len(cfg.Source.StdDevs) == 0 {
			return fmt.Errorf("%w: source.stddevs is empty", ErrInvalid)
		}
	case ModeFile:
		if len(cfg.Source.Files) == 0 {
			return fmt.Errorf("%w: source.files is empty", ErrInvalid)
		}
		if _, err := sample.ParseUnit(cfg.Source.Unit); err != nil {
			return fmt.Errorf("%w: source.unit: %v", ErrInvalid, err)
		}
	default:
		return fmt.Errorf("%w: source.mode %q, want %q or %q", ErrInvalid, cfg.Source.Mode, ModeSynthetic, ModeFile)
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return fmt.Errorf("%w: chart size %vx%v", ErrInvalid, cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.DPI <= 0 {
		return fmt.Errorf("%w: chart.dpi must be positive, got %d", ErrInvalid, cfg.Chart.DPI)
	}
	return nil
}

// NewSource returns the sample source selected by cfg.
func (cfg *Config) NewSource() (sample.Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src := cfg.Source
	if src.Mode == ModeFile {
		unit, err := sample.ParseUnit(src.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w: source.unit: %v", ErrInvalid, err)
		}
		return &sample.Files{Inputs: fpsfmt.ParseInputs(src.Files), Unit: unit}, nil
	}
	return &sample.Synthetic{
		Seed:    src.Seed,
		Mean:    src.Mean,
		StdDevs: append([]float64(nil), src.StdDevs...),
		N:       src.Samples,
	}, nil
}

// Figure returns the chart of sets under cfg's presentation settings.
// If no labels are configured, each set is labeled with its name.
func (cfg *Config) Figure(sets []*sample.Set) *violin.Figure {
	fig := violin.NewFigure(sets)
	c := cfg.Chart
	fig.Title = c.Title
	fig.YLabel = c.YLabel
	if len(c.Labels) > 0 {
		fig.Labels = append([]string(nil), c.Labels...)
	} else {
		fig.Labels = sample.Names(sets)
	}
	fig.Grid = c.Grid
	fig.Width = vg.Length(c.Width) * vg.Inch
	fig.Height = vg.Length(c.Height) * vg.Inch
	fig.DPI = c.DPI
	fig.ShowMedians = c.Medians
	fig.ShowMeans = c.Means
	fig.ShowExtrema = c.Extrema
	return fig
}
