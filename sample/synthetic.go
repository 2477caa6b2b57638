// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/aclements/go-moremath/stats"
)

// DefaultSeed is the seed of the reference synthetic chart.
const DefaultSeed = 19680801

// A Synthetic is a Source of normally distributed pseudo-random sets.
//
// Each call to Sets draws from a fresh generator seeded with Seed, so
// the result depends only on the fields of the Synthetic.
type Synthetic struct {
	// Seed seeds the pseudo-random generator.
	Seed int64

	// Mean is the mean of every distribution.
	Mean float64

	// StdDevs lists one standard deviation per set.
	StdDevs []float64

	// N is the number of values drawn per set.
	N int
}

// NewSynthetic returns the reference synthetic source: 100 values
// per set from zero-mean normals with standard deviations 6 to 9.
func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{
		Seed:    seed,
		StdDevs: []float64{6, 7, 8, 9},
		N:       100,
	}
}

func (g *Synthetic) Sets() ([]*Set, error) {
	if g.N <= 0 {
		return nil, fmt.Errorf("synthetic source: %d values per set, want at least 1", g.N)
	}
	if len(g.StdDevs) == 0 {
		return nil, fmt.Errorf("synthetic source: no standard deviations")
	}

	r := rand.New(rand.NewSource(g.Seed))
	sets := make([]*Set, 0, len(g.StdDevs))
	for _, sd := range g.StdDevs {
		if !(sd >= 0) {
			return nil, fmt.Errorf("synthetic source: invalid standard deviation %v", sd)
		}
		dist := stats.NormalDist{Mu: g.Mean, Sigma: sd}
		values := make([]float64, g.N)
		for i := range values {
			values[i] = dist.Rand(r)
		}
		name := "σ=" + strconv.FormatFloat(sd, 'g', -1, 64)
		sets = append(sets, &Set{Name: name, Values: values})
	}
	return sets, nil
}
