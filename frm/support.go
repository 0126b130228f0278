// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// support condition kinds
const (
	CondFixed        = "Fixed"         // exact constraint; eliminated by the solver
	CondFree         = "Free"          // no resistance
	CondSpring       = "Spring"        // linear spring; requires stiffness > 0
	CondPositiveOnly = "Positive-only" // unilateral; resists the positive sense only
	CondNegativeOnly = "Negative-only" // unilateral; resists the negative sense only
)

// SupportCondition holds the condition of one support axis (one degree of
// freedom). Stiffness carries force/displacement for translations and
// moment/rotation for rotations; 0 means no stiffness given.
type SupportCondition struct {
	Kind      string  // "Fixed", "Free", "Spring", "Positive-only" or "Negative-only"
	Stiffness float64 // spring stiffness; mandatory for Spring, optional for unilateral kinds
}

// NewSupportCondition creates and validates a support condition
func NewSupportCondition(kind string, stiffness float64) (SupportCondition, error) {
	o := SupportCondition{Kind: kind, Stiffness: stiffness}
	switch kind {
	case CondSpring:
		if stiffness <= 0 {
			return o, chk.Err("Spring condition requires a positive stiffness; got %g", stiffness)
		}
	case CondPositiveOnly, CondNegativeOnly:
		if stiffness < 0 {
			return o, chk.Err("%s stiffness, if given, must be positive; got %g", kind, stiffness)
		}
	case CondFixed, CondFree:
		if stiffness != 0 {
			return o, chk.Err("%s condition must not specify stiffness; got %g", kind, stiffness)
		}
	default:
		return o, chk.Err("unknown support condition kind %q", kind)
	}
	return o, nil
}

// Fixed returns a fixed condition
func Fixed() SupportCondition { return SupportCondition{Kind: CondFixed} }

// Free returns a free condition
func Free() SupportCondition { return SupportCondition{Kind: CondFree} }

// Spring returns a linear spring condition
func Spring(stiffness float64) (SupportCondition, error) {
	return NewSupportCondition(CondSpring, stiffness)
}

// PositiveOnly returns a unilateral condition resisting the positive sense.
// stiffness == 0 means an ideal unilateral constraint.
func PositiveOnly(stiffness float64) (SupportCondition, error) {
	return NewSupportCondition(CondPositiveOnly, stiffness)
}

// NegativeOnly returns a unilateral condition resisting the negative sense
func NegativeOnly(stiffness float64) (SupportCondition, error) {
	return NewSupportCondition(CondNegativeOnly, stiffness)
}

// String returns a short description of this condition
func (o SupportCondition) String() string {
	if o.Kind == CondSpring {
		return io.Sf("Spring(%g)", o.Stiffness)
	}
	return o.Kind
}

// NodalSupport holds the six support conditions of one node: three
// displacement axes and three rotation axes, ordered X, Y, Z. Nodal
// supports are catalog entities shared by any number of nodes.
type NodalSupport struct {
	Id             int                 // unique identifier
	Classification string              // free-form tag
	Displacement   [3]SupportCondition // conditions along global X, Y, Z
	Rotation       [3]SupportCondition // conditions about global X, Y, Z
}

// NewNodalSupport creates a nodal support with all six axes fixed.
// id == 0 requests an auto-assigned identifier. Axes are relaxed by
// assigning Displacement/Rotation entries afterwards.
func NewNodalSupport(reg *ids.Registry, id int) *NodalSupport {
	o := &NodalSupport{Id: reg.Resolve(ids.KindNodalSupport, id)}
	for i := 0; i < 3; i++ {
		o.Displacement[i] = Fixed()
		o.Rotation[i] = Fixed()
	}
	return o
}
