// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

func (fig *Figure) size() (w, h vg.Length, dpi int) {
	w, h, dpi = fig.Width, fig.Height, fig.DPI
	if w <= 0 {
		w = 9 * vg.Inch
	}
	if h <= 0 {
		h = 4 * vg.Inch
	}
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}
	return w, h, dpi
}

func (fig *Figure) raster() *vgimg.Canvas {
	w, h, dpi := fig.size()
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
}

// Image draws p onto a white raster the size of fig.
func Image(p *plot.Plot, fig *Figure) image.Image {
	c := fig.raster()
	p.Draw(draw.New(c))
	return c.Image()
}

// Encode draws p at the size of fig and writes it to w in format,
// which is one of "png", "svg" or "pdf".
func Encode(w io.Writer, p *plot.Plot, fig *Figure, format string) error {
	var can vg.CanvasWriterTo
	switch format {
	case "png":
		can = vgimg.PngCanvas{Canvas: fig.raster()}
	case "svg":
		width, height, _ := fig.size()
		can = vgsvg.New(width, height)
	case "pdf":
		width, height, _ := fig.size()
		can = vgpdf.New(width, height)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	p.Draw(draw.New(can))
	_, err := can.WriteTo(w)
	return err
}
