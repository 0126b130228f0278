// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements the structural model aggregate: member sets,
// load cases and combinations, imperfections, settings and results,
// together with the JSON exchange document read by the solver.
package mdl

import (
	"regexp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/Jeroen124/FERS-core/lds"
	"github.com/Jeroen124/FERS-core/res"
)

// Model holds a complete structural model
type Model struct {
	MemberSets        []*frm.MemberSet        // member sets
	LoadCases         []*lds.LoadCase         // load cases
	LoadCombinations  []*lds.LoadCombination  // load combinations
	ImperfectionCases []*lds.ImperfectionCase // imperfection cases
	Settings          *Settings               // settings
	Results           *res.Bundle             // analysis results; nil before solving
}

// NewModel creates a model with default settings
func NewModel(reg *ids.Registry) *Model {
	return &Model{Settings: NewSettings(reg, 0)}
}

// AddMemberSet appends member sets to the model
func (o *Model) AddMemberSet(sets ...*frm.MemberSet) {
	o.MemberSets = append(o.MemberSets, sets...)
}

// AddLoadCase appends load cases to the model
func (o *Model) AddLoadCase(cases ...*lds.LoadCase) {
	o.LoadCases = append(o.LoadCases, cases...)
}

// AddLoadCombination appends load combinations to the model
func (o *Model) AddLoadCombination(combos ...*lds.LoadCombination) {
	o.LoadCombinations = append(o.LoadCombinations, combos...)
}

// AddImperfectionCase appends imperfection cases to the model
func (o *Model) AddImperfectionCase(cases ...*lds.ImperfectionCase) {
	o.ImperfectionCases = append(o.ImperfectionCases, cases...)
}

// CreateLoadCase creates a load case, registers it and returns it
func (o *Model) CreateLoadCase(reg *ids.Registry, name string) *lds.LoadCase {
	lc := lds.NewLoadCase(reg, 0, name)
	o.AddLoadCase(lc)
	return lc
}

// CreateLoadCombination creates a load combination, registers it and returns it
func (o *Model) CreateLoadCombination(reg *ids.Registry, name, situation, limitState string) *lds.LoadCombination {
	combo := lds.NewLoadCombination(reg, 0, name, situation, "", limitState)
	o.AddLoadCombination(combo)
	return combo
}

// CreateImperfectionCase creates an imperfection case for the given
// combinations, registers it and returns it
func (o *Model) CreateImperfectionCase(reg *ids.Registry, combinations []*lds.LoadCombination) *lds.ImperfectionCase {
	ic := lds.NewImperfectionCase(reg, 0, combinations)
	o.AddImperfectionCase(ic)
	return ic
}

// Nodes returns all distinct nodes, in first-seen order across member sets
func (o *Model) Nodes() (nodes []*frm.Node) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, m := range ms.Members {
			for _, n := range []*frm.Node{m.Start, m.End} {
				if n != nil && !seen[n.Id] {
					seen[n.Id] = true
					nodes = append(nodes, n)
				}
			}
		}
	}
	return
}

// Members returns all distinct members, in first-seen order across member sets
func (o *Model) Members() (members []*frm.Member) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, m := range ms.Members {
			if !seen[m.Id] {
				seen[m.Id] = true
				members = append(members, m)
			}
		}
	}
	return
}

// NodeByID returns the node with the given id, or nil if absent
func (o *Model) NodeByID(id int) *frm.Node {
	for _, n := range o.Nodes() {
		if n.Id == id {
			return n
		}
	}
	return nil
}

// MemberByID returns the member with the given id, or nil if absent
func (o *Model) MemberByID(id int) *frm.Member {
	for _, m := range o.Members() {
		if m.Id == id {
			return m
		}
	}
	return nil
}

// LoadCaseByName returns the load case with the given name, or nil if absent
func (o *Model) LoadCaseByName(name string) *lds.LoadCase {
	for _, lc := range o.LoadCases {
		if lc.Name == name {
			return lc
		}
	}
	return nil
}

// CombinationByName returns the load combination with the given name, or nil if absent
func (o *Model) CombinationByName(name string) *lds.LoadCombination {
	for _, combo := range o.LoadCombinations {
		if combo.Name == name {
			return combo
		}
	}
	return nil
}

// CombinationByID returns the load combination with the given id, or nil if absent
func (o *Model) CombinationByID(id int) *lds.LoadCombination {
	for _, combo := range o.LoadCombinations {
		if combo.Id == id {
			return combo
		}
	}
	return nil
}

// MemberSetsByClassification returns member sets whose classification
// matches the given regular expression
func (o *Model) MemberSetsByClassification(pattern string) (sets []*frm.MemberSet, err error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, chk.Err("cannot compile classification pattern %q: %v", pattern, err)
	}
	for _, ms := range o.MemberSets {
		if re.MatchString(ms.Classification) {
			sets = append(sets, ms)
		}
	}
	return
}

// UniqueMaterials returns distinct materials across all member sets, in
// first-seen order
func (o *Model) UniqueMaterials() (mats []*frm.Material) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, mat := range ms.UniqueMaterials() {
			if !seen[mat.Id] {
				seen[mat.Id] = true
				mats = append(mats, mat)
			}
		}
	}
	return
}

// UniqueSections returns distinct sections across all member sets
func (o *Model) UniqueSections() (secs []*frm.Section) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, sec := range ms.UniqueSections() {
			if !seen[sec.Id] {
				seen[sec.Id] = true
				secs = append(secs, sec)
			}
		}
	}
	return
}

// UniqueShapePaths returns distinct shape paths across all member sets
func (o *Model) UniqueShapePaths() (paths []*frm.ShapePath) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, sp := range ms.UniqueShapePaths() {
			if !seen[sp.Id] {
				seen[sp.Id] = true
				paths = append(paths, sp)
			}
		}
	}
	return
}

// UniqueMemberHinges returns distinct member hinges across all member sets
func (o *Model) UniqueMemberHinges() (hinges []*frm.MemberHinge) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, h := range ms.UniqueMemberHinges() {
			if !seen[h.Id] {
				seen[h.Id] = true
				hinges = append(hinges, h)
			}
		}
	}
	return
}

// UniqueNodalSupports returns distinct nodal supports across all member sets
func (o *Model) UniqueNodalSupports() (sups []*frm.NodalSupport) {
	seen := make(map[int]bool)
	for _, ms := range o.MemberSets {
		for _, s := range ms.UniqueNodalSupports() {
			if !seen[s.Id] {
				seen[s.Id] = true
				sups = append(sups, s)
			}
		}
	}
	return
}

// Bounds returns the axis-aligned bounding box of all nodes. ok is false
// for a model without nodes.
func (o *Model) Bounds() (min, max []float64, ok bool) {
	nodes := o.Nodes()
	if len(nodes) == 0 {
		return nil, nil, false
	}
	min = []float64{nodes[0].X, nodes[0].Y, nodes[0].Z}
	max = []float64{nodes[0].X, nodes[0].Y, nodes[0].Z}
	for _, n := range nodes[1:] {
		min[0] = utl.Min(min[0], n.X)
		min[1] = utl.Min(min[1], n.Y)
		min[2] = utl.Min(min[2], n.Z)
		max[0] = utl.Max(max[0], n.X)
		max[1] = utl.Max(max[1], n.Y)
		max[2] = utl.Max(max[2], n.Z)
	}
	return min, max, true
}

// NumNodes returns the number of distinct nodes
func (o *Model) NumNodes() int { return len(o.Nodes()) }

// NumMembers returns the number of distinct members
func (o *Model) NumMembers() int { return len(o.Members()) }
