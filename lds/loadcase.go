// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lds implements the load model: load cases and their loads,
// load combinations and imperfection cases
package lds

import (
	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/io"
)

// LoadCase owns a group of loads applied together. Loads are created
// through the Add* factory methods so that every load belongs to exactly
// one case; the case is append-only.
type LoadCase struct {
	Id               int                // unique identifier
	Name             string             // name; defaults to "Loadcase {id}"
	NodalLoads       []*NodalLoad       // forces at nodes
	NodalMoments     []*NodalMoment     // moments at nodes
	DistributedLoads []*DistributedLoad // line loads along members
}

// NewLoadCase creates a load case. id == 0 requests an auto-assigned
// identifier; an empty name defaults to "Loadcase {id}".
func NewLoadCase(reg *ids.Registry, id int, name string) *LoadCase {
	o := &LoadCase{Id: reg.Resolve(ids.KindLoadCase, id), Name: name}
	if o.Name == "" {
		o.Name = io.Sf("Loadcase %d", o.Id)
	}
	return o
}

// AddNodalLoad creates a force at a node and appends it to this case
func (o *LoadCase) AddNodalLoad(reg *ids.Registry, node *frm.Node, magnitude float64, direction []float64) *NodalLoad {
	l := &NodalLoad{
		Id:        reg.Next(ids.KindNodalLoad),
		Node:      node,
		Case:      o,
		Magnitude: magnitude,
		Direction: direction,
		LoadKind:  KindForce,
	}
	o.NodalLoads = append(o.NodalLoads, l)
	return l
}

// AddNodalMoment creates a moment at a node and appends it to this case
func (o *LoadCase) AddNodalMoment(reg *ids.Registry, node *frm.Node, magnitude float64, direction []float64) *NodalMoment {
	l := &NodalMoment{
		Id:        reg.Next(ids.KindNodalMoment),
		Node:      node,
		Case:      o,
		Magnitude: magnitude,
		Direction: direction,
		LoadKind:  KindMoment,
	}
	o.NodalMoments = append(o.NodalMoments, l)
	return l
}

// AddDistributedLoad creates a linearly varying line load along a member
// and appends it to this case. Intensity runs from qstart at startFrac to
// qend at endFrac of the member length.
func (o *LoadCase) AddDistributedLoad(reg *ids.Registry, member *frm.Member, qstart, qend float64, direction []float64, startFrac, endFrac float64) (*DistributedLoad, error) {
	l, err := newDistributedLoad(reg, member, o, qstart, qend, direction, startFrac, endFrac)
	if err != nil {
		return nil, err
	}
	o.DistributedLoads = append(o.DistributedLoads, l)
	return l, nil
}

// AddUniformLoad creates a uniform line load over the whole member
func (o *LoadCase) AddUniformLoad(reg *ids.Registry, member *frm.Member, q float64, direction []float64) (*DistributedLoad, error) {
	return o.AddDistributedLoad(reg, member, q, q, direction, 0, 1)
}

// AddTriangularLoad creates a line load rising from zero at the start to
// q at the end of the member
func (o *LoadCase) AddTriangularLoad(reg *ids.Registry, member *frm.Member, q float64, direction []float64) (*DistributedLoad, error) {
	return o.AddDistributedLoad(reg, member, 0, q, direction, 0, 1)
}

// AddInverseTriangularLoad creates a line load falling from q at the
// start to zero at the end of the member
func (o *LoadCase) AddInverseTriangularLoad(reg *ids.Registry, member *frm.Member, q float64, direction []float64) (*DistributedLoad, error) {
	return o.AddDistributedLoad(reg, member, q, 0, direction, 0, 1)
}

// ApplyDeadLoad generates self-weight line loads for all members that
// have a section (weight = -g * density * area per unit length, applied
// in the given global direction)
func (o *LoadCase) ApplyDeadLoad(reg *ids.Registry, members []*frm.Member, direction []float64) error {
	const g = 9.81
	for _, m := range members {
		w := m.WeightPerLength()
		if w == 0 {
			continue
		}
		if _, err := o.AddUniformLoad(reg, m, -g*w, direction); err != nil {
			return err
		}
	}
	return nil
}

// ApplyLoadToClassified creates a uniform line load on every member whose
// classification matches
func (o *LoadCase) ApplyLoadToClassified(reg *ids.Registry, members []*frm.Member, classification string, q float64, direction []float64, startFrac, endFrac float64) error {
	for _, m := range members {
		if m.Classification != classification {
			continue
		}
		if _, err := o.AddDistributedLoad(reg, m, q, q, direction, startFrac, endFrac); err != nil {
			return err
		}
	}
	return nil
}
