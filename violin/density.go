// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

const (
	valueCol   = "value"
	densityCol = "probability density"
)

// density estimates the probability density of values with a
// Gaussian kernel and samples it at n evenly spaced points spanning
// exactly [min, max] of values.
//
// If values has no spread, density returns nil slices: there is no
// curve to draw, only a point mass.
func density(values []float64, n int) (at, pdf []float64) {
	if len(values) < 2 {
		return nil, nil
	}
	if n < 2 {
		n = 2
	}

	// Scott's factor: the kernel's standard deviation is the
	// sample's scaled by n^(-1/5).
	sd := stats.StdDev(values)
	if !(sd > 0) {
		return nil, nil
	}
	bw := sd * math.Pow(float64(len(values)), -1.0/5)

	tab := new(table.Builder).Add(valueCol, values).Done()
	g := ggstat.Density{
		X:         valueCol,
		N:         n,
		Domain:    ggstat.DomainData{Widen: 1},
		Kernel:    stats.GaussianKernel,
		Bandwidth: bw,
	}.F(tab)

	gids := g.Tables()
	if len(gids) == 0 {
		return nil, nil
	}
	t := g.Table(gids[0])
	at = t.MustColumn(valueCol).([]float64)
	pdf = t.MustColumn(densityCol).([]float64)
	return at, pdf
}
