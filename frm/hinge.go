// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
)

// MemberHinge holds the end-release conditions of a member end: one
// condition per local axis, three translational and three rotational.
// Only Fixed, Free and Spring kinds are meaningful for hinges; Spring
// requires a stiffness. Hinges are catalog entities shared by members.
type MemberHinge struct {
	Id          int                 // unique identifier
	Translation [3]SupportCondition // release along local x, y, z
	Rotation    [3]SupportCondition // release about local x, y, z
}

// NewMemberHinge creates a hinge with all six conditions fixed (a rigid
// connection); individual axes are released afterwards via SetTranslation
// and SetRotation. id == 0 requests an auto-assigned identifier.
func NewMemberHinge(reg *ids.Registry, id int) *MemberHinge {
	o := &MemberHinge{Id: reg.Resolve(ids.KindMemberHinge, id)}
	for i := 0; i < 3; i++ {
		o.Translation[i] = Fixed()
		o.Rotation[i] = Fixed()
	}
	return o
}

// SetTranslation sets the translational condition along local axis
// (0=x, 1=y, 2=z)
func (o *MemberHinge) SetTranslation(axis int, cond SupportCondition) error {
	if err := o.checkCond(axis, cond); err != nil {
		return err
	}
	o.Translation[axis] = cond
	return nil
}

// SetRotation sets the rotational condition about local axis (0=x, 1=y, 2=z)
func (o *MemberHinge) SetRotation(axis int, cond SupportCondition) error {
	if err := o.checkCond(axis, cond); err != nil {
		return err
	}
	o.Rotation[axis] = cond
	return nil
}

func (o *MemberHinge) checkCond(axis int, cond SupportCondition) error {
	if axis < 0 || axis > 2 {
		return chk.Err("member hinge %d: axis must be 0, 1 or 2; got %d", o.Id, axis)
	}
	switch cond.Kind {
	case CondFixed, CondFree:
	case CondSpring:
		if cond.Stiffness <= 0 {
			return chk.Err("member hinge %d: spring condition requires a positive stiffness", o.Id)
		}
	default:
		return chk.Err("member hinge %d: condition kind %q is not valid for hinges", o.Id, cond.Kind)
	}
	return nil
}
