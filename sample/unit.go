// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"errors"
	"fmt"
	"strings"
)

// A Unit specifies how values in a sample file are measured.
type Unit int

const (
	// FPS indicates values are frames per second.
	FPS Unit = iota
	// SecPerFrame indicates values are frame times in seconds.
	SecPerFrame
	// MsPerFrame indicates values are frame times in milliseconds.
	MsPerFrame
)

// ErrUnit is returned for unknown units and for values that cannot be
// converted to frames per second.
var ErrUnit = errors.New("bad unit")

func (u Unit) String() string {
	switch u {
	case FPS:
		return "fps"
	case SecPerFrame:
		return "s"
	case MsPerFrame:
		return "ms"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit parses a unit name. It accepts "fps", "s" and "ms" in any
// case, along with the spelled-out "sec/frame" and "ms/frame".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fps", "frames/s":
		return FPS, nil
	case "s", "sec", "sec/frame", "s/frame":
		return SecPerFrame, nil
	case "ms", "ms/frame":
		return MsPerFrame, nil
	}
	return 0, fmt.Errorf("%w %q: want fps, s or ms", ErrUnit, s)
}

// ToFPS converts v, measured in u, to frames per second.
func (u Unit) ToFPS(v float64) (float64, error) {
	switch u {
	case FPS:
		return v, nil
	case SecPerFrame, MsPerFrame:
		if v == 0 {
			return 0, fmt.Errorf("%w: zero frame time", ErrUnit)
		}
		if u == MsPerFrame {
			return 1000 / v, nil
		}
		return 1 / v, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnit, u)
}
