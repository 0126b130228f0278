// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import (
	"github.com/Jeroen124/FERS-core/frm"
)

// load kinds
const (
	KindForce  = "force"
	KindMoment = "moment"
)

// NodalLoad holds a force applied at a node. The direction vector need
// not be normalized; the magnitude carries the sign.
type NodalLoad struct {
	Id        int       // unique identifier
	Node      *frm.Node // target node
	Case      *LoadCase // owning load case
	Magnitude float64   // signed magnitude
	Direction []float64 // global direction (3 components, unit-free)
	LoadKind  string    // "force"
}

// NodalMoment holds a moment applied at a node; direction components are
// the moment axes about global X, Y, Z
type NodalMoment struct {
	Id        int       // unique identifier
	Node      *frm.Node // target node
	Case      *LoadCase // owning load case
	Magnitude float64   // signed magnitude
	Direction []float64 // global moment axis (3 components, unit-free)
	LoadKind  string    // "moment"
}
