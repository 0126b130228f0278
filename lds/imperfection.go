// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import (
	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
)

// RotationImperfection holds a rotational geometric imperfection applied
// to member sets: a rotation of magnitude [rad] about axis through point
type RotationImperfection struct {
	MemberSets []*frm.MemberSet // affected sets
	Magnitude  float64          // rotation magnitude [rad]
	Axis       []float64        // rotation axis (3 components)
	AxisOnly   bool             // rotate about the axis only, without sway amplification
	Point      []float64        // point the axis passes through (3 components)
}

// TranslationImperfection holds a translational geometric imperfection
// applied to member sets
type TranslationImperfection struct {
	Id         int              // unique identifier
	MemberSets []*frm.MemberSet // affected sets
	Magnitude  float64          // translation magnitude
	Axis       []float64        // translation direction (3 components)
}

// ImperfectionCase ties geometric imperfections to the load combinations
// they apply to
type ImperfectionCase struct {
	Id           int                        // unique identifier
	Combinations []*LoadCombination         // combinations this case applies to
	Rotations    []*RotationImperfection    // rotation imperfections
	Translations []*TranslationImperfection // translation imperfections
}

// NewImperfectionCase creates an imperfection case for the given
// combinations. id == 0 requests an auto-assigned identifier.
func NewImperfectionCase(reg *ids.Registry, id int, combinations []*LoadCombination) *ImperfectionCase {
	return &ImperfectionCase{
		Id:           reg.Resolve(ids.KindImperfectionCase, id),
		Combinations: combinations,
	}
}

// AddRotation appends a rotation imperfection
func (o *ImperfectionCase) AddRotation(sets []*frm.MemberSet, magnitude float64, axis []float64, axisOnly bool, point []float64) *RotationImperfection {
	r := &RotationImperfection{MemberSets: sets, Magnitude: magnitude, Axis: axis, AxisOnly: axisOnly, Point: point}
	o.Rotations = append(o.Rotations, r)
	return r
}

// AddTranslation appends a translation imperfection
func (o *ImperfectionCase) AddTranslation(reg *ids.Registry, sets []*frm.MemberSet, magnitude float64, axis []float64) *TranslationImperfection {
	t := &TranslationImperfection{
		Id:         reg.Next(ids.KindTranslationImperfection),
		MemberSets: sets,
		Magnitude:  magnitude,
		Axis:       axis,
	}
	o.Translations = append(o.Translations, t)
	return t
}
