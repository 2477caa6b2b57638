// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display presents a rendered chart in an interactive window.
package display

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// AppID identifies the viewer to the windowing system.
const AppID = "dev.nvgx.fpsviolin"

// Show opens a window titled title that shows img, and blocks until
// the viewer closes it.
func Show(title string, img image.Image) {
	a := app.NewWithID(AppID)
	w := NewWindow(a, title, img)
	w.ShowAndRun()
}

// NewWindow creates, but does not show, a window of a that displays
// img. The window opens at the image's pixel size and scales the
// image to fit when resized. Pressing Q or Escape closes it.
func NewWindow(a fyne.App, title string, img image.Image) fyne.Window {
	w := a.NewWindow(title)

	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	size := fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	chart.SetMinSize(fyne.NewSize(size.Width/4, size.Height/4))

	w.SetContent(chart)
	w.Resize(size)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyQ, fyne.KeyEscape:
			w.Close()
		}
	})
	return w
}
