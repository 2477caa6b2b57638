// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nvgx/fpsviolin/fpsfmt"
)

func TestSyntheticReference(t *testing.T) {
	g := NewSynthetic(DefaultSeed)
	sets, err := g.Sets()
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 4 {
		t.Fatalf("got %d sets, want 4", len(sets))
	}
	wantNames := []string{"σ=6", "σ=7", "σ=8", "σ=9"}
	if diff := cmp.Diff(wantNames, Names(sets)); diff != "" {
		t.Errorf("names differ (-want +got):\n%s", diff)
	}
	for i, s := range sets {
		if len(s.Values) != 100 {
			t.Errorf("set %d: got %d values, want 100", i, len(s.Values))
		}
	}

	// The same seed reproduces every bit.
	again, err := NewSynthetic(DefaultSeed).Sets()
	if err != nil {
		t.Fatal(err)
	}
	for i := range sets {
		for j, v := range sets[i].Values {
			if math.Float64bits(v) != math.Float64bits(again[i].Values[j]) {
				t.Fatalf("set %d value %d: %v != %v across runs", i, j, v, again[i].Values[j])
			}
		}
	}

	// A different seed does not.
	other, err := NewSynthetic(DefaultSeed + 1).Sets()
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(Values(sets), Values(other)) {
		t.Errorf("seeds %d and %d produced identical sets", DefaultSeed, DefaultSeed+1)
	}
}

func TestSyntheticSpread(t *testing.T) {
	// A wider distribution should produce a wider interquartile
	// range when drawn with enough values.
	g := &Synthetic{Seed: 1, Mean: 60, StdDevs: []float64{1, 20}, N: 5000}
	sets, err := g.Sets()
	if err != nil {
		t.Fatal(err)
	}
	narrow, wide := sets[0].Stats(), sets[1].Stats()
	if !(wide.Q3-wide.Q1 > 5*(narrow.Q3-narrow.Q1)) {
		t.Errorf("IQR of σ=20 (%v) not much wider than σ=1 (%v)", wide.Q3-wide.Q1, narrow.Q3-narrow.Q1)
	}
	if math.Abs(narrow.Mean-60) > 0.5 {
		t.Errorf("mean of σ=1 set is %v, want about 60", narrow.Mean)
	}
}

func TestSyntheticErrors(t *testing.T) {
	for _, g := range []*Synthetic{
		{N: 0, StdDevs: []float64{1}},
		{N: 10},
		{N: 10, StdDevs: []float64{1, -2}},
		{N: 10, StdDevs: []float64{math.NaN()}},
	} {
		if sets, err := g.Sets(); err == nil {
			t.Errorf("%+v: got %d sets, want error", g, len(sets))
		}
	}
}

func TestStats(t *testing.T) {
	s := &Set{Values: []float64{5, 1, 4, 2, 3}}
	got := s.Stats()
	if got.N != 5 || got.Min != 1 || got.Max != 5 || got.Median != 3 || got.Mean != 3 {
		t.Errorf("got %+v, want N=5 Min=1 Max=5 Median=3 Mean=3", got)
	}
	// Quartile interpolation is up to the estimator; only check
	// that the quartiles bracket the median within the data.
	if !(got.Min <= got.Q1 && got.Q1 < got.Median && got.Median < got.Q3 && got.Q3 <= got.Max) {
		t.Errorf("quartiles out of order: %+v", got)
	}
	// Stats must not reorder the set.
	if diff := cmp.Diff([]float64{5, 1, 4, 2, 3}, s.Values); diff != "" {
		t.Errorf("Stats modified Values (-want +got):\n%s", diff)
	}

	if got := (&Set{}).Stats(); got != (Stats{}) {
		t.Errorf("empty set: got %+v, want zero Stats", got)
	}
}

func TestUnit(t *testing.T) {
	check := func(name string, v, want float64) {
		t.Helper()
		u, err := ParseUnit(name)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %s", name, err)
		}
		got, err := u.ToFPS(v)
		if err != nil {
			t.Fatalf("%v.ToFPS(%v): %s", u, v, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%v.ToFPS(%v) = %v, want %v", u, v, got, want)
		}
	}
	check("fps", 60, 60)
	check("", 144, 144)
	check("s", 0.016, 62.5)
	check("SEC/frame", 0.5, 2)
	check("ms", 8, 125)

	if _, err := ParseUnit("furlongs"); !errors.Is(err, ErrUnit) {
		t.Errorf("ParseUnit(furlongs): got %v, want ErrUnit", err)
	}
	if _, err := SecPerFrame.ToFPS(0); !errors.Is(err, ErrUnit) {
		t.Errorf("ToFPS(0): got %v, want ErrUnit", err)
	}
	if got := MsPerFrame.String(); got != "ms" {
		t.Errorf("MsPerFrame.String() = %q", got)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1.0 2.0 3.0\n")
	b := writeFile(t, dir, "b.txt", "10\n20\n")

	f := &Files{Inputs: fpsfmt.ParseInputs([]string{"OpenGL=" + a, b})}
	sets, err := f.Sets()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"OpenGL", "b"}, Names(sets)); diff != "" {
		t.Errorf("names differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]float64{{1, 2, 3}, {10, 20}}, Values(sets)); diff != "" {
		t.Errorf("values differ (-want +got):\n%s", diff)
	}
}

func TestFilesFrameTime(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "frames.csv", "0.016\n0.008\n0.02\n")
	f := &Files{Inputs: fpsfmt.ParseInputs([]string{a}), Unit: SecPerFrame}
	sets, err := f.Sets()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{62.5, 125, 50}
	opt := cmp.Comparer(func(x, y float64) bool { return math.Abs(x-y) < 1e-9 })
	if diff := cmp.Diff(want, sets[0].Values, opt); diff != "" {
		t.Errorf("values differ (-want +got):\n%s", diff)
	}

	z := writeFile(t, dir, "zero.csv", "0.016\n0\n")
	f = &Files{Inputs: fpsfmt.ParseInputs([]string{z}), Unit: SecPerFrame}
	if _, err := f.Sets(); !errors.Is(err, ErrUnit) {
		t.Errorf("zero frame time: got %v, want ErrUnit", err)
	}
}

func TestFilesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "1 2 3")
	bad := writeFile(t, dir, "bad.txt", "1 x 3")
	missing := filepath.Join(dir, "missing.txt")

	f := &Files{Inputs: fpsfmt.ParseInputs([]string{good, missing})}
	sets, err := f.Sets()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got error %v, want fs.ErrNotExist", err)
	}
	if sets != nil {
		t.Errorf("missing file: got %d sets, want none", len(sets))
	}

	f = &Files{Inputs: fpsfmt.ParseInputs([]string{good, bad})}
	_, err = f.Sets()
	var se *fpsfmt.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("malformed file: got error %v, want *fpsfmt.SyntaxError", err)
	}
	if name, line := se.Pos(); name != bad || line != 1 {
		t.Errorf("error at %s:%d, want %s:1", name, line, bad)
	}

	if _, err := (&Files{}).Sets(); err == nil {
		t.Errorf("no inputs: got success, want error")
	}
}
