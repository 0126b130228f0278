// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
)

// path command names
const (
	CmdMoveTo    = "moveTo"
	CmdLineTo    = "lineTo"
	CmdCubicTo   = "cubicTo"
	CmdClosePath = "closePath"
)

// ShapeCommand holds one command of a section outline path
type ShapeCommand struct {
	Command string  `json:"command"`      // "moveTo", "lineTo", "cubicTo" or "closePath"
	X       float64 `json:"x,omitempty"`  // target x
	Y       float64 `json:"y,omitempty"`  // target y
	C1x     float64 `json:"c1x,omitempty"` // cubicTo: first control point x
	C1y     float64 `json:"c1y,omitempty"` // cubicTo: first control point y
	C2x     float64 `json:"c2x,omitempty"` // cubicTo: second control point x
	C2y     float64 `json:"c2y,omitempty"` // cubicTo: second control point y
}

// ShapePath holds a section outline as an ordered sequence of path
// commands forming one or more closed polygons. Used for geometry export
// only; never for analysis.
type ShapePath struct {
	Id       int            // unique identifier
	Name     string         // name of shape; e.g. "IPE100", "RHS 100x50x4"
	Commands []ShapeCommand // ordered path commands
}

// NewShapePath creates a shape path. id == 0 requests an auto-assigned
// identifier.
func NewShapePath(reg *ids.Registry, id int, name string, commands []ShapeCommand) (*ShapePath, error) {
	for i, c := range commands {
		switch c.Command {
		case CmdMoveTo, CmdLineTo, CmdCubicTo, CmdClosePath:
		default:
			return nil, chk.Err("shape path %q: unknown command %q at position %d", name, c.Command, i)
		}
	}
	return &ShapePath{
		Id:       reg.Resolve(ids.KindShapePath, id),
		Name:     name,
		Commands: commands,
	}, nil
}

// IPEProfile generates the outline commands of an IPE profile with total
// height h, flange width b, flange thickness tf and web thickness tw.
// The fillet radius r is accepted for completeness but not drawn.
func IPEProfile(h, b, tf, tw, r float64) (commands []ShapeCommand) {
	commands = []ShapeCommand{

		// top flange, starting at the top-left corner
		{Command: CmdMoveTo, X: -b / 2, Y: h / 2},
		{Command: CmdLineTo, X: b / 2, Y: h / 2},
		{Command: CmdLineTo, X: b / 2, Y: h/2 - tf},
		{Command: CmdLineTo, X: tw / 2, Y: h/2 - tf},

		// web
		{Command: CmdLineTo, X: tw / 2, Y: -h/2 + tf},

		// bottom flange
		{Command: CmdLineTo, X: b / 2, Y: -h/2 + tf},
		{Command: CmdLineTo, X: b / 2, Y: -h / 2},
		{Command: CmdLineTo, X: -b / 2, Y: -h / 2},
		{Command: CmdLineTo, X: -b / 2, Y: -h/2 + tf},
		{Command: CmdLineTo, X: -tw / 2, Y: -h/2 + tf},

		// web, back up
		{Command: CmdLineTo, X: -tw / 2, Y: h/2 - tf},
		{Command: CmdLineTo, X: -b / 2, Y: h/2 - tf},

		{Command: CmdClosePath},
	}
	return
}

// RHSProfile generates the outline commands of a rectangular hollow
// section with outer height h, outer width b and wall thickness t:
// an outer rectangle and an inner one.
func RHSProfile(h, b, t float64) (commands []ShapeCommand) {
	commands = []ShapeCommand{

		// outer rectangle
		{Command: CmdMoveTo, X: -b / 2, Y: h / 2},
		{Command: CmdLineTo, X: b / 2, Y: h / 2},
		{Command: CmdLineTo, X: b / 2, Y: -h / 2},
		{Command: CmdLineTo, X: -b / 2, Y: -h / 2},
		{Command: CmdClosePath},

		// inner rectangle
		{Command: CmdMoveTo, X: -b/2 + t, Y: h/2 - t},
		{Command: CmdLineTo, X: b/2 - t, Y: h/2 - t},
		{Command: CmdLineTo, X: b/2 - t, Y: -h/2 + t},
		{Command: CmdLineTo, X: -b/2 + t, Y: -h/2 + t},
		{Command: CmdClosePath},
	}
	return
}
