// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import (
	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
)

// DistributedLoad holds a line load along a member with linearly varying
// intensity: Qstart at StartFrac of the length, Qend at EndFrac. Uniform
// and triangular shapes are special cases of this one representation.
type DistributedLoad struct {
	Id        int         // unique identifier
	Member    *frm.Member // target member
	Case      *LoadCase   // owning load case
	Qstart    float64     // intensity at StartFrac
	Qend      float64     // intensity at EndFrac
	Direction []float64   // global direction (3 components, unit-free)
	StartFrac float64     // start of loaded interval as fraction of length
	EndFrac   float64     // end of loaded interval as fraction of length
}

// newDistributedLoad validates and builds a distributed load; called by
// the LoadCase factories only
func newDistributedLoad(reg *ids.Registry, member *frm.Member, lc *LoadCase, qstart, qend float64, direction []float64, startFrac, endFrac float64) (*DistributedLoad, error) {
	if startFrac < 0 || endFrac > 1 || startFrac > endFrac {
		return nil, chk.Err("distributed load fractions must satisfy 0 <= start <= end <= 1; got start=%g end=%g", startFrac, endFrac)
	}
	return &DistributedLoad{
		Id:        reg.Next(ids.KindDistributedLoad),
		Member:    member,
		Case:      lc,
		Qstart:    qstart,
		Qend:      qend,
		Direction: direction,
		StartFrac: startFrac,
		EndFrac:   endFrac,
	}, nil
}

// IsUniform tells whether the intensity is constant over the interval
func (o *DistributedLoad) IsUniform() bool {
	return o.Qstart == o.Qend
}

// IntensityAt returns the intensity at fraction t of the member length;
// zero outside the loaded interval
func (o *DistributedLoad) IntensityAt(t float64) float64 {
	if t < o.StartFrac || t > o.EndFrac {
		return 0
	}
	if o.EndFrac == o.StartFrac {
		return o.Qstart
	}
	s := (t - o.StartFrac) / (o.EndFrac - o.StartFrac)
	return o.Qstart + s*(o.Qend-o.Qstart)
}
