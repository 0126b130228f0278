// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frm implements the structural frame entities: nodes, materials,
// sections, supports, hinges, members and member sets
package frm

import (
	"math"

	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/io"
)

// Node holds one point of the structure
type Node struct {
	Id             int           // unique identifier
	X, Y, Z        float64       // global coordinates
	Classification string        // free-form tag; e.g. "column", "rafter"
	Support        *NodalSupport // nodal support; may be shared by many nodes; nil means unsupported
}

// NewNode creates a node. id == 0 requests an auto-assigned identifier.
func NewNode(reg *ids.Registry, id int, x, y, z float64) *Node {
	return &Node{Id: reg.Resolve(ids.KindNode, id), X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance between two nodes
func Distance(a, b *Node) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FindAtLocation returns all nodes within tol of the given location
func FindAtLocation(nodes []*Node, x, y, z, tol float64) (res []*Node) {
	for _, n := range nodes {
		if math.Abs(n.X-x) <= tol && math.Abs(n.Y-y) <= tol && math.Abs(n.Z-z) <= tol {
			res = append(res, n)
		}
	}
	return
}

// FindClosest returns the node closest to the given location.
//  Note: returns nil if nodes is empty
func FindClosest(nodes []*Node, x, y, z float64) (closest *Node) {
	dmin := math.MaxFloat64
	for _, n := range nodes {
		dx := n.X - x
		dy := n.Y - y
		dz := n.Z - z
		if d := dx*dx + dy*dy + dz*dz; d < dmin {
			dmin = d
			closest = n
		}
	}
	return
}

// String returns a short description of this node
func (o *Node) String() string {
	return io.Sf("Node{%d: (%g, %g, %g)}", o.Id, o.X, o.Y, o.Z)
}
