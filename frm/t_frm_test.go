// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"math"
	"testing"

	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_member01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("member01. geometry and derived quantities")

	reg := ids.New()
	n1 := NewNode(reg, 0, 0, 0, 0)
	n2 := NewNode(reg, 0, 3, 4, 0)
	steel := NewMaterial(reg, 0, "Steel S235", 210e9, 81e9, 7850, 235e6)
	sec, err := NewSection(reg, 0, "IPE 180", steel, 1.317e-5, 1.009e-6, 4.79e-8, 2.395e-3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	m, err := NewMember(reg, n1, n2, sec, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("L=%g Lx=%g W=%g\n", m.Length(), m.LengthX(), m.Weight)
	chk.Float64(tst, "length", 1e-15, m.Length(), 5)
	chk.Float64(tst, "length_x", 1e-15, m.LengthX(), 3)
	chk.Float64(tst, "weight", 1e-10, m.Weight, 7850*2.395e-3*5)
	chk.Float64(tst, "EA", 1e-6, m.EA(), 210e9*2.395e-3)
	chk.StrAssert(m.Type, "NORMAL")
}

func Test_member02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("member02. section requirement and rigid members")

	reg := ids.New()
	n1 := NewNode(reg, 0, 0, 0, 0)
	n2 := NewNode(reg, 0, 1, 0, 0)

	// NORMAL without section must fail
	_, err := NewMember(reg, n1, n2, nil, nil)
	if err == nil {
		tst.Errorf("NORMAL member without section must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// RIGID without section is fine and weightless
	m, err := NewMember(reg, n1, n2, nil, &MemberArgs{Type: TypeRigid})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "rigid weight", 1e-17, m.Weight, 0)
	chk.Float64(tst, "rigid EA", 1e-17, m.EA(), 0)

	// zero-length geometry must fail
	n3 := NewNode(reg, 0, 1, 0, 0)
	_, err = NewMember(reg, n2, n3, nil, &MemberArgs{Type: TypeRigid})
	if err == nil {
		tst.Errorf("zero-length member must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_member03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("member03. local coordinate system")

	reg := ids.New()
	steel := NewMaterial(reg, 0, "S235", 210e9, 81e9, 7850, 235e6)
	sec, _ := NewSection(reg, 0, "sec", steel, 1, 1, 1, 1)

	// member along global X: local frame matches global
	a := NewNode(reg, 0, 0, 0, 0)
	b := NewNode(reg, 0, 2, 0, 0)
	m, _ := NewMember(reg, a, b, sec, nil)
	ex, ey, ez, err := m.LocalAxes()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "ex", 1e-15, ex, []float64{1, 0, 0})
	chk.Array(tst, "ey", 1e-15, ey, []float64{0, 1, 0})
	chk.Array(tst, "ez", 1e-15, ez, []float64{0, 0, 1})

	// vertical member: reference direction falls back to global X
	c := NewNode(reg, 0, 0, 0, 3)
	mv, _ := NewMember(reg, a, c, sec, nil)
	ex, ey, ez, err = mv.LocalAxes()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "vertical ex", 1e-15, ex, []float64{0, 0, 1})
	chk.Float64(tst, "|ey|", 1e-15, ey[0]*ey[0]+ey[1]*ey[1]+ey[2]*ey[2], 1)
	chk.Float64(tst, "ex.ez", 1e-15, ex[0]*ez[0]+ex[1]*ez[1]+ex[2]*ez[2], 0)

	// roll of 90deg about the axis swaps ey and ez
	m.RotationAngle = math.Pi / 2
	_, ey, ez, _ = m.LocalAxes()
	chk.Array(tst, "rolled ey", 1e-15, ey, []float64{0, 0, 1})
	chk.Array(tst, "rolled ez", 1e-15, ez, []float64{0, -1, 0})
}

func Test_support01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("support01. support condition validation")

	// spring without positive stiffness fails
	_, err := Spring(-1)
	if err == nil {
		tst.Errorf("negative spring stiffness must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	_, err = Spring(0)
	if err == nil {
		tst.Errorf("zero spring stiffness must fail\n")
		return
	}

	// fixed with stiffness fails
	_, err = NewSupportCondition(CondFixed, 100)
	if err == nil {
		tst.Errorf("fixed condition with stiffness must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// unilateral stiffness is optional but must be positive when given
	c, err := PositiveOnly(0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.StrAssert(c.Kind, CondPositiveOnly)
	_, err = NewSupportCondition(CondNegativeOnly, -5)
	if err == nil {
		tst.Errorf("negative unilateral stiffness must fail\n")
		return
	}

	// defaults: all six axes fixed
	reg := ids.New()
	sup := NewNodalSupport(reg, 0)
	for i := 0; i < 3; i++ {
		chk.StrAssert(sup.Displacement[i].Kind, CondFixed)
		chk.StrAssert(sup.Rotation[i].Kind, CondFixed)
	}
}

func Test_memberset01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("memberset01. unique extraction and combine")

	reg := ids.New()
	steel := NewMaterial(reg, 0, "S235", 210e9, 81e9, 7850, 235e6)
	sec, _ := NewSection(reg, 0, "shared", steel, 1, 1, 1, 0.01)
	n1 := NewNode(reg, 0, 0, 0, 0)
	n2 := NewNode(reg, 0, 5, 0, 0)
	n3 := NewNode(reg, 0, 10, 0, 0)
	m1, _ := NewMember(reg, n1, n2, sec, nil)
	m2, _ := NewMember(reg, n2, n3, sec, nil)

	set := NewMemberSet(reg, 0, []*Member{m1, m2}, "beams")

	// both members share one section and one material
	secs := set.UniqueSections()
	mats := set.UniqueMaterials()
	chk.IntAssert(len(secs), 1)
	chk.IntAssert(len(mats), 1)
	if secs[0] != sec {
		tst.Errorf("extracted section is not the shared instance\n")
		return
	}

	// extraction is idempotent and order-stable
	again := set.UniqueSections()
	chk.IntAssert(len(again), 1)
	if again[0] != secs[0] {
		tst.Errorf("second extraction differs from first\n")
		return
	}

	// combine preserves identity
	other := NewMemberSet(reg, 0, []*Member{m2}, "tail")
	comb := CombineMemberSets(reg, "all", set, other)
	chk.IntAssert(len(comb.Members), 3)
	if comb.Members[0] != m1 || comb.Members[2] != m2 {
		tst.Errorf("combine must not copy members\n")
		return
	}
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. profile outlines")

	cmds := IPEProfile(0.1, 0.055, 0.0057, 0.0041, 0.007)
	io.Pforan("ncommands = %d\n", len(cmds))
	chk.StrAssert(cmds[0].Command, CmdMoveTo)
	chk.StrAssert(cmds[len(cmds)-1].Command, CmdClosePath)
	chk.Float64(tst, "first x", 1e-15, cmds[0].X, -0.0275)
	chk.Float64(tst, "first y", 1e-15, cmds[0].Y, 0.05)

	reg := ids.New()
	sp, err := NewShapePath(reg, 0, "IPE100", cmds)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(sp.Id, 1)

	// invalid command is rejected
	_, err = NewShapePath(reg, 0, "bad", []ShapeCommand{{Command: "arcTo"}})
	if err == nil {
		tst.Errorf("unknown command must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
