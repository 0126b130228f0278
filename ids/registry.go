// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ids implements the identity registry: one monotonic counter per
// entity kind, owned by a session/build context rather than by globals.
package ids

import (
	"github.com/cpmech/gosl/chk"
)

// Kind labels one entity kind with its own id counter
type Kind int

// entity kinds
const (
	KindNode Kind = iota
	KindMaterial
	KindSection
	KindShapePath
	KindMemberHinge
	KindNodalSupport
	KindMember
	KindMemberSet
	KindLoadCase
	KindLoadCombination
	KindImperfectionCase
	KindNodalLoad
	KindNodalMoment
	KindDistributedLoad
	KindTranslationImperfection
	KindSettings
	nkinds
)

// kindnames maps kinds to names for messages
var kindnames = []string{
	"node", "material", "section", "shapepath", "memberhinge", "nodalsupport",
	"member", "memberset", "loadcase", "loadcombination", "imperfectioncase",
	"nodalload", "nodalmoment", "distributedload", "translationimperfection",
	"settings",
}

// String returns the name of this kind
func (o Kind) String() string {
	if o < 0 || o >= nkinds {
		return "unknown"
	}
	return kindnames[o]
}

// Registry holds the id counters of every entity kind. One registry serves
// one model-building session; concurrent sessions use separate registries.
type Registry struct {
	next [nkinds]int
}

// New returns a registry with all counters at their initial value (1)
func New() (o *Registry) {
	o = new(Registry)
	o.ResetAll()
	return
}

// Next returns the current counter of kind and increments it
func (o *Registry) Next(kind Kind) (id int) {
	o.checkKind(kind)
	id = o.next[kind]
	o.next[kind]++
	return
}

// Observe advances the counter of kind past id so that auto-assigned ids
// never collide with ids supplied by callers or reconstructed from JSON
func (o *Registry) Observe(kind Kind, id int) {
	o.checkKind(kind)
	if id+1 > o.next[kind] {
		o.next[kind] = id + 1
	}
}

// Resolve implements the allocation contract shared by all entity
// constructors: a positive explicit id wins (and is observed); id == 0
// requests auto-assignment
func (o *Registry) Resolve(kind Kind, id int) int {
	if id > 0 {
		o.Observe(kind, id)
		return id
	}
	return o.Next(kind)
}

// Current returns the counter of kind without advancing it
func (o *Registry) Current(kind Kind) int {
	o.checkKind(kind)
	return o.next[kind]
}

// ResetAll resets every counter to its initial value in one operation.
// Intended for isolation between independent sessions, not for use while
// a model graph is alive.
func (o *Registry) ResetAll() {
	for i := 0; i < int(nkinds); i++ {
		o.next[i] = 1
	}
}

func (o *Registry) checkKind(kind Kind) {
	if kind < 0 || kind >= nkinds {
		chk.Panic("ids: invalid entity kind %d", kind)
	}
}
