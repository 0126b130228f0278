// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"github.com/Jeroen124/FERS-core/ids"
)

// MemberSet holds an ordered grouping of members with a classification
// tag. Order is preserved: some solvers index results by position.
type MemberSet struct {
	Id             int       // unique identifier
	Members        []*Member // ordered members
	Classification string    // free-form tag; e.g. "columns"
	Ly             float64   // buckling length about y; 0 means unspecified
	Lz             float64   // buckling length about z; 0 means unspecified
}

// NewMemberSet creates a member set. id == 0 requests an auto-assigned
// identifier.
func NewMemberSet(reg *ids.Registry, id int, members []*Member, classification string) *MemberSet {
	return &MemberSet{
		Id:             reg.Resolve(ids.KindMemberSet, id),
		Members:        members,
		Classification: classification,
	}
}

// Add appends members preserving order
func (o *MemberSet) Add(members ...*Member) {
	o.Members = append(o.Members, members...)
}

// CombineMemberSets flattens member sets into one new set, preserving
// member identity (no copies) and order across the inputs
func CombineMemberSets(reg *ids.Registry, classification string, sets ...*MemberSet) *MemberSet {
	var members []*Member
	for _, s := range sets {
		members = append(members, s.Members...)
	}
	return NewMemberSet(reg, 0, members, classification)
}

// UniqueSections returns the distinct sections of this set, deduplicated
// by identity, in first-seen order. Members without a section are skipped.
func (o *MemberSet) UniqueSections() (res []*Section) {
	seen := make(map[int]bool)
	for _, m := range o.Members {
		if m.Sec == nil || seen[m.Sec.Id] {
			continue
		}
		seen[m.Sec.Id] = true
		res = append(res, m.Sec)
	}
	return
}

// UniqueMaterials returns the distinct materials of this set, deduplicated
// by identity, in first-seen order
func (o *MemberSet) UniqueMaterials() (res []*Material) {
	seen := make(map[int]bool)
	for _, m := range o.Members {
		if m.Sec == nil || m.Sec.Material == nil || seen[m.Sec.Material.Id] {
			continue
		}
		seen[m.Sec.Material.Id] = true
		res = append(res, m.Sec.Material)
	}
	return
}

// UniqueShapePaths returns the distinct shape paths of this set,
// deduplicated by identity, in first-seen order
func (o *MemberSet) UniqueShapePaths() (res []*ShapePath) {
	seen := make(map[int]bool)
	for _, m := range o.Members {
		if m.Sec == nil || m.Sec.Shape == nil || seen[m.Sec.Shape.Id] {
			continue
		}
		seen[m.Sec.Shape.Id] = true
		res = append(res, m.Sec.Shape)
	}
	return
}

// UniqueMemberHinges returns the distinct hinges of this set, deduplicated
// by identity, in first-seen order (start hinge before end hinge)
func (o *MemberSet) UniqueMemberHinges() (res []*MemberHinge) {
	seen := make(map[int]bool)
	for _, m := range o.Members {
		for _, h := range []*MemberHinge{m.StartHinge, m.EndHinge} {
			if h == nil || seen[h.Id] {
				continue
			}
			seen[h.Id] = true
			res = append(res, h)
		}
	}
	return
}

// UniqueNodalSupports returns the distinct nodal supports referenced by
// the nodes of this set, deduplicated by identity, in first-seen order
func (o *MemberSet) UniqueNodalSupports() (res []*NodalSupport) {
	seen := make(map[int]bool)
	for _, m := range o.Members {
		for _, n := range []*Node{m.Start, m.End} {
			if n.Support == nil || seen[n.Support.Id] {
				continue
			}
			seen[n.Support.Id] = true
			res = append(res, n.Support)
		}
	}
	return
}
