// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nvgx/fpsviolin/sample"
)

// DefaultPoints is the number of points at which a violin's density
// is sampled.
const DefaultPoints = 100

// markerFrac is the width of the median, mean and extrema bars
// relative to the violin's full width.
const markerFrac = 0.5

var (
	violinBlue = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	violinFill = color.NRGBA{0x1f, 0x77, 0xb4, 0x4c}
	meanRed    = color.NRGBA{0xd6, 0x27, 0x28, 0xff}
)

// A Violin draws the estimated distribution of one sample set as a
// density curve mirrored about a vertical axis.
type Violin struct {
	// Location is the x coordinate of the violin's axis.
	Location float64

	// Width is the x-axis span of the violin at its widest point.
	Width float64

	// Stats are the order statistics of the set.
	Stats sample.Stats

	// At and PDF sample the density estimate: PDF[i] is the
	// estimated density at value At[i]. Both are empty if the set
	// has no spread, in which case the violin is drawn as a bar.
	At, PDF []float64

	// FillColor fills the body. If nil, the body is not filled.
	FillColor color.Color

	// BodyStyle strokes the body outline.
	BodyStyle draw.LineStyle

	// MedianStyle, MeanStyle and ExtremaStyle draw the markers.
	// A marker whose Show flag is false is not drawn.
	MedianStyle, MeanStyle, ExtremaStyle draw.LineStyle

	ShowMedian, ShowMean, ShowExtrema bool

	maxPDF float64
}

// NewViolin returns a Violin for values at x location loc, with its
// density sampled at points points.
func NewViolin(loc, width float64, values []float64, points int) *Violin {
	if points <= 0 {
		points = DefaultPoints
	}
	set := sample.Set{Values: values}
	at, pdf := density(values, points)
	v := &Violin{
		Location:     loc,
		Width:        width,
		Stats:        set.Stats(),
		At:           at,
		PDF:          pdf,
		FillColor:    violinFill,
		BodyStyle:    draw.LineStyle{Color: violinBlue, Width: vg.Points(0.75)},
		MedianStyle:  draw.LineStyle{Color: violinBlue, Width: vg.Points(1.5)},
		MeanStyle:    draw.LineStyle{Color: meanRed, Width: vg.Points(1.5)},
		ExtremaStyle: draw.LineStyle{Color: violinBlue, Width: vg.Points(1.5)},
		ShowMedian:   true,
		ShowExtrema:  true,
	}
	for _, d := range pdf {
		if d > v.maxPDF {
			v.maxPDF = d
		}
	}
	return v
}

// Plot implements the plot.Plotter interface.
func (v *Violin) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := trX(v.Location)
	if !c.ContainsX(x) {
		return
	}
	half := trX(v.Location+v.Width/2) - x

	if len(v.At) > 0 && v.maxPDF > 0 {
		pts := make([]vg.Point, 0, 2*len(v.At)+1)
		for i, y := range v.At {
			w := half * vg.Length(v.PDF[i]/v.maxPDF)
			pts = append(pts, vg.Point{X: x - w, Y: trY(y)})
		}
		for i := len(v.At) - 1; i >= 0; i-- {
			w := half * vg.Length(v.PDF[i]/v.maxPDF)
			pts = append(pts, vg.Point{X: x + w, Y: trY(v.At[i])})
		}
		pts = append(pts, pts[0])

		if v.FillColor != nil {
			c.FillPolygon(v.FillColor, c.ClipPolygonXY(pts))
		}
		c.StrokeLines(v.BodyStyle, c.ClipLinesXY(pts)...)
	} else {
		// A point mass: all the probability sits at one value.
		y := trY(v.Stats.Median)
		c.StrokeLines(v.BodyStyle, c.ClipLinesXY([]vg.Point{{X: x - half, Y: y}, {X: x + half, Y: y}})...)
	}

	bar := func(sty draw.LineStyle, value float64) {
		y := trY(value)
		w := half * markerFrac
		c.StrokeLines(sty, c.ClipLinesXY([]vg.Point{{X: x - w, Y: y}, {X: x + w, Y: y}})...)
	}
	if v.ShowExtrema {
		bar(v.ExtremaStyle, v.Stats.Min)
		bar(v.ExtremaStyle, v.Stats.Max)
		c.StrokeLines(v.ExtremaStyle, c.ClipLinesXY([]vg.Point{
			{X: x, Y: trY(v.Stats.Min)},
			{X: x, Y: trY(v.Stats.Max)},
		})...)
	}
	if v.ShowMedian {
		bar(v.MedianStyle, v.Stats.Median)
	}
	if v.ShowMean {
		bar(v.MeanStyle, v.Stats.Mean)
	}
}

// DataRange implements the plot.DataRanger interface.
func (v *Violin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return v.Location - v.Width/2, v.Location + v.Width/2, v.Stats.Min, v.Stats.Max
}

// Thumbnail implements the plot.Thumbnailer interface.
func (v *Violin) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	if v.FillColor != nil {
		c.FillPolygon(v.FillColor, c.ClipPolygonY(pts))
	}
	pts = append(pts, pts[0])
	c.StrokeLines(v.BodyStyle, c.ClipLinesY(pts)...)
}
