// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
)

// copyNode creates a translated copy of a node. The nodal support is
// shared with the source, not copied.
func copyNode(reg *ids.Registry, n *frm.Node, vector []float64) *frm.Node {
	c := frm.NewNode(reg, 0, n.X+vector[0], n.Y+vector[1], n.Z+vector[2])
	c.Classification = n.Classification
	c.Support = n.Support
	return c
}

// copyMember creates a copy of a member between the given new endpoint
// nodes. Catalog references (section, hinges) are shared; the weight is
// re-derived from the section. Reference member/node are carried over
// unchanged; callers rebind them when the referents were copied too.
func copyMember(reg *ids.Registry, m *frm.Member, start, end *frm.Node) (*frm.Member, error) {
	return frm.NewMember(reg, start, end, m.Sec, &frm.MemberArgs{
		StartHinge:     m.StartHinge,
		EndHinge:       m.EndHinge,
		Classification: m.Classification,
		RotationAngle:  m.RotationAngle,
		Chi:            m.Chi,
		RefMember:      m.RefMember,
		RefNode:        m.RefNode,
		Type:           m.Type,
	})
}

// TranslateMemberSet creates a copy of one member set with all nodes
// translated by vector. Sections, hinges and supports are shared with
// the source; nodes and members are fresh.
func TranslateMemberSet(reg *ids.Registry, set *frm.MemberSet, vector []float64) (*frm.MemberSet, error) {

	// pass 1: nodes
	nodes := make(map[int]*frm.Node)
	for _, m := range set.Members {
		for _, n := range []*frm.Node{m.Start, m.End} {
			if _, ok := nodes[n.Id]; !ok {
				nodes[n.Id] = copyNode(reg, n, vector)
			}
		}
	}

	// pass 2: members
	var members []*frm.Member
	for _, m := range set.Members {
		c, err := copyMember(reg, m, nodes[m.Start.Id], nodes[m.End.Id])
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	return frm.NewMemberSet(reg, 0, members, set.Classification), nil
}

// Translate creates a copy of the model with all nodes translated by
// vector. Member sets keep their ids; catalog entities are shared.
// Reference member/node pointers keep pointing at the source model.
// Load cases and combinations are not carried over.
func Translate(reg *ids.Registry, model *Model, vector []float64) (*Model, error) {
	out := NewModel(reg)

	// pass 1: nodes, shared across sets
	nodes := make(map[int]*frm.Node)
	for _, n := range model.Nodes() {
		nodes[n.Id] = copyNode(reg, n, vector)
	}

	// pass 2: members per set
	for _, ms := range model.MemberSets {
		var members []*frm.Member
		for _, m := range ms.Members {
			c, err := copyMember(reg, m, nodes[m.Start.Id], nodes[m.End.Id])
			if err != nil {
				return nil, err
			}
			members = append(members, c)
		}
		nset := frm.NewMemberSet(reg, ms.Id, members, ms.Classification)
		nset.Ly = ms.Ly
		nset.Lz = ms.Lz
		out.AddMemberSet(nset)
	}
	return out, nil
}

// ReplicateAsPattern creates a model holding the original member sets
// plus count-1 replicas, replica i offset by i times spacing. Replicas
// are self-contained: reference nodes and reference members inside a
// replica point at that replica's own copies, never at the original or
// at another replica.
func ReplicateAsPattern(reg *ids.Registry, model *Model, count int, spacing []float64) (*Model, error) {
	if count < 1 {
		return nil, chk.Err("replication count must be at least 1; got %d", count)
	}
	out := NewModel(reg)
	out.AddMemberSet(model.MemberSets...)

	type nodeKey struct {
		id  int // original node id
		rep int // replica index
	}
	type memberKey struct {
		id  int
		rep int
	}

	// pass 1: all nodes of all replicas
	nodes := make(map[nodeKey]*frm.Node)
	for i := 1; i < count; i++ {
		offset := []float64{spacing[0] * float64(i), spacing[1] * float64(i), spacing[2] * float64(i)}
		for _, n := range model.Nodes() {
			nodes[nodeKey{n.Id, i}] = copyNode(reg, n, offset)
		}
	}

	// pass 2: members and sets; reference nodes rebound here since the
	// node map is complete
	members := make(map[memberKey]*frm.Member)
	for i := 1; i < count; i++ {
		for _, ms := range model.MemberSets {
			var list []*frm.Member
			for _, m := range ms.Members {
				c, err := copyMember(reg, m, nodes[nodeKey{m.Start.Id, i}], nodes[nodeKey{m.End.Id, i}])
				if err != nil {
					return nil, err
				}
				if m.RefNode != nil {
					rn, ok := nodes[nodeKey{m.RefNode.Id, i}]
					if !ok {
						return nil, chk.Err("replica %d: reference node %d of member %d is not part of the model", i, m.RefNode.Id, m.Id)
					}
					c.RefNode = rn
				}
				members[memberKey{m.Id, i}] = c
				list = append(list, c)
			}
			nset := frm.NewMemberSet(reg, 0, list, ms.Classification)
			nset.Ly = ms.Ly
			nset.Lz = ms.Lz
			out.AddMemberSet(nset)
		}
	}

	// pass 3: rebind reference members to the copy in the same replica
	for key, c := range members {
		if c.RefMember == nil {
			continue
		}
		ref, ok := members[memberKey{c.RefMember.Id, key.rep}]
		if !ok {
			return nil, chk.Err("replica %d: reference member %d of member %d is not part of the model", key.rep, c.RefMember.Id, key.id)
		}
		c.RefMember = ref
	}
	return out, nil
}
