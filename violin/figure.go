// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package violin builds violin plots of frame-rate sample sets.
//
// A Figure is a plain description of the chart: the sets, their
// labels and the presentation settings. Build turns a Figure into a
// gonum plot without touching any output device, so charts can be
// constructed and inspected headlessly; Image and Encode rasterize a
// built plot.
package violin

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nvgx/fpsviolin/sample"
)

// DefaultTitle identifies the reference benchmark machine.
const DefaultTitle = "NVGX Bench Mark(CPU: 7940HS, GPU: 780M)"

// DefaultLabels name the four rendering backends, in the order their
// sets are acquired.
var DefaultLabels = []string{"OpenGL", "OpenGL(Inst)", "WGPU-Vulkan", "WGPU-Vulkan(Inst)"}

var (
	// ErrNoSets is returned when a Figure has no sample sets.
	ErrNoSets = errors.New("no sample sets")

	// ErrLabelCount is returned when the number of labels differs
	// from the number of sample sets.
	ErrLabelCount = errors.New("label count does not match sample set count")

	// ErrEmptySet is returned when a sample set has no values.
	ErrEmptySet = errors.New("empty sample set")

	// ErrNonFinite is returned when a sample set holds a NaN or
	// infinite value, which has no place on the value axis.
	ErrNonFinite = errors.New("non-finite sample")
)

// A Figure describes a violin chart.
type Figure struct {
	Title  string
	YLabel string

	// Labels name the sets on the x axis. Labels[i] is shown under
	// Sets[i]; the two must have the same length.
	Labels []string
	Sets   []*sample.Set

	// Grid enables horizontal grid lines on the value axis.
	Grid bool

	// Width and Height are the size of the figure. DPI is the
	// resolution it is rasterized at.
	Width, Height vg.Length
	DPI           int

	// ViolinWidth is the x-axis span of each violin; violins are
	// 1 unit apart.
	ViolinWidth float64

	// Points is the number of points each density is sampled at.
	Points int

	ShowMedians, ShowMeans, ShowExtrema bool
}

// NewFigure returns a Figure of sets with the reference presentation:
// default title and labels, an "FPS" value axis with grid lines,
// medians and extrema shown, means hidden, 9×4 inches at 100 DPI.
func NewFigure(sets []*sample.Set) *Figure {
	return &Figure{
		Title:       DefaultTitle,
		YLabel:      "FPS",
		Labels:      append([]string(nil), DefaultLabels...),
		Sets:        sets,
		Grid:        true,
		Width:       9 * vg.Inch,
		Height:      4 * vg.Inch,
		DPI:         100,
		ViolinWidth: 0.5,
		Points:      DefaultPoints,
		ShowMedians: true,
		ShowExtrema: true,
	}
}

// Validate checks the figure's data. It asserts that there is
// exactly one label per set rather than truncating or padding
// either list.
func (fig *Figure) Validate() error {
	if len(fig.Sets) == 0 {
		return ErrNoSets
	}
	if len(fig.Labels) != len(fig.Sets) {
		return fmt.Errorf("%w: %d labels, %d sets", ErrLabelCount, len(fig.Labels), len(fig.Sets))
	}
	for i, s := range fig.Sets {
		if len(s.Values) == 0 {
			return fmt.Errorf("%w: %s (%s)", ErrEmptySet, fig.Labels[i], s.Name)
		}
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s (%s) value %d is %v", ErrNonFinite, fig.Labels[i], s.Name, j+1, v)
			}
		}
	}
	return nil
}

// Violins returns one Violin per set, located at x = 1, 2, ..., n.
func (fig *Figure) Violins() ([]*Violin, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	width := fig.ViolinWidth
	if width <= 0 {
		width = 0.5
	}
	violins := make([]*Violin, len(fig.Sets))
	for i, s := range fig.Sets {
		v := NewViolin(float64(i+1), width, s.Values, fig.Points)
		v.ShowMedian = fig.ShowMedians
		v.ShowMean = fig.ShowMeans
		v.ShowExtrema = fig.ShowExtrema
		violins[i] = v
	}
	return violins, nil
}

// Ticks returns the x-axis ticks: one labeled tick per set.
func (fig *Figure) Ticks() []plot.Tick {
	ticks := make([]plot.Tick, len(fig.Labels))
	for i, l := range fig.Labels {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: l}
	}
	return ticks
}

// Plotters returns the plot elements of fig in drawing order: the
// grid, if enabled, then one Violin per set.
func (fig *Figure) Plotters() ([]plot.Plotter, error) {
	violins, err := fig.Violins()
	if err != nil {
		return nil, err
	}
	var ps []plot.Plotter
	if fig.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = nil
		ps = append(ps, grid)
	}
	for _, v := range violins {
		ps = append(ps, v)
	}
	return ps, nil
}

// Build constructs the chart described by fig.
func Build(fig *Figure) (*plot.Plot, error) {
	ps, err := fig.Plotters()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.Y.Label.Text = fig.YLabel
	p.Add(ps...)

	p.X.Tick.Marker = plot.ConstantTicks(fig.Ticks())
	p.X.Min = 0.5
	p.X.Max = float64(len(fig.Sets)) + 0.5

	return p, nil
}
