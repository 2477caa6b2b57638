// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample acquires sets of frame-rate measurements.
//
// A Source produces an ordered list of Sets, one per rendering
// backend. Sets come either from sample files on disk (Files) or from
// a seeded pseudo-random generator (Synthetic), which is useful for
// previewing a chart before measurements exist.
package sample

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Set is one backend's frame-rate observations.
type Set struct {
	// Name identifies where the set came from, such as a file
	// label or the parameters of a synthetic distribution.
	Name string

	// Values are the observations in the order they were read or
	// generated. Callers must not modify Values.
	Values []float64
}

// A Source produces sample sets.
type Source interface {
	// Sets returns every sample set of the source in display
	// order. It either returns all sets or an error.
	Sets() ([]*Set, error)
}

// Stats are order statistics of a Set, used to draw its markers.
type Stats struct {
	N        int
	Min, Max float64
	Q1, Q3   float64
	Median   float64
	Mean     float64
}

// Stats computes the order statistics of s. The zero Stats is
// returned for an empty set.
func (s *Set) Stats() Stats {
	if len(s.Values) == 0 {
		return Stats{}
	}

	// Sort a copy for fast order statistics; Values keeps its
	// acquisition order.
	xs := append([]float64(nil), s.Values...)
	sort.Float64s(xs)
	sample := stats.Sample{Xs: xs, Sorted: true}

	var st Stats
	st.N = len(xs)
	st.Min, st.Max = stats.Bounds(xs)
	st.Q1 = sample.Quantile(0.25)
	st.Median = sample.Quantile(0.5)
	st.Q3 = sample.Quantile(0.75)
	st.Mean = stats.Mean(xs)
	return st
}

// Values returns the values of each set, in order.
func Values(sets []*Set) [][]float64 {
	out := make([][]float64, len(sets))
	for i, s := range sets {
		out[i] = s.Values
	}
	return out
}

// Names returns the name of each set, in order.
func Names(sets []*Set) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = s.Name
	}
	return out
}
