// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import (
	"testing"

	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func buildBeam(reg *ids.Registry) *frm.Member {
	n1 := frm.NewNode(reg, 0, 0, 0, 0)
	n2 := frm.NewNode(reg, 0, 5, 0, 0)
	steel := frm.NewMaterial(reg, 0, "S235", 210e9, 81e9, 7850, 235e6)
	sec, _ := frm.NewSection(reg, 0, "sec", steel, 1e-6, 1e-6, 1e-8, 0.01)
	m, _ := frm.NewMember(reg, n1, n2, sec, nil)
	return m
}

func Test_loadcase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadcase01. factories register loads with their case")

	reg := ids.New()
	m := buildBeam(reg)
	lc := NewLoadCase(reg, 0, "")
	chk.StrAssert(lc.Name, "Loadcase 1")

	l := lc.AddNodalLoad(reg, m.End, -1000, []float64{0, 1, 0})
	mo := lc.AddNodalMoment(reg, m.Start, 500, []float64{0, 0, 1})
	dl, err := lc.AddUniformLoad(reg, m, -200, []float64{0, -1, 0})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(lc.NodalLoads), 1)
	chk.IntAssert(len(lc.NodalMoments), 1)
	chk.IntAssert(len(lc.DistributedLoads), 1)
	if l.Case != lc || mo.Case != lc || dl.Case != lc {
		tst.Errorf("loads must belong to the case that created them\n")
		return
	}
	chk.StrAssert(l.LoadKind, KindForce)
	chk.StrAssert(mo.LoadKind, KindMoment)
	chk.Float64(tst, "uniform qstart", 1e-17, dl.Qstart, -200)
	chk.Float64(tst, "uniform qend", 1e-17, dl.Qend, -200)
}

func Test_distload01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("distload01. fraction validation and intensity")

	reg := ids.New()
	m := buildBeam(reg)
	lc := NewLoadCase(reg, 0, "lc")

	// reversed interval fails at construction
	_, err := lc.AddDistributedLoad(reg, m, -100, -100, []float64{0, -1, 0}, 0.7, 0.3)
	if err == nil {
		tst.Errorf("reversed fractions must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	chk.IntAssert(len(lc.DistributedLoads), 0)

	// out of range fails
	_, err = lc.AddDistributedLoad(reg, m, -100, -100, []float64{0, -1, 0}, -0.1, 0.5)
	if err == nil {
		tst.Errorf("negative start fraction must fail\n")
		return
	}

	// triangular shape via the canonical representation
	dl, err := lc.AddTriangularLoad(reg, m, -300, []float64{0, -1, 0})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "q(0)", 1e-17, dl.IntensityAt(0), 0)
	chk.Float64(tst, "q(0.5)", 1e-13, dl.IntensityAt(0.5), -150)
	chk.Float64(tst, "q(1)", 1e-17, dl.IntensityAt(1), -300)
	if dl.IsUniform() {
		tst.Errorf("triangular load must not be uniform\n")
		return
	}

	// degenerate zero-span interval is allowed
	_, err = lc.AddDistributedLoad(reg, m, -50, -50, []float64{0, -1, 0}, 0.5, 0.5)
	if err != nil {
		tst.Errorf("zero-span interval must be allowed:\n%v", err)
		return
	}
}

func Test_combination01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combination01. factors and reference resolution")

	reg := ids.New()
	dead := NewLoadCase(reg, 0, "dead")
	live := NewLoadCase(reg, 0, "live")

	comb := NewLoadCombination(reg, 0, "ULS", "permanent", "", LimitStateULS)
	chk.StrAssert(comb.Check, "ALL")
	comb.AddLoadCase(dead, 1.35)
	comb.AddLoadCase(live, 1.5)
	comb.AddLoadCase(dead, 1.2) // replaces, does not append
	chk.IntAssert(len(comb.Factors), 2)
	chk.Float64(tst, "dead factor", 1e-17, comb.FactorOf(dead), 1.2)
	chk.Float64(tst, "live factor", 1e-17, comb.FactorOf(live), 1.5)

	// resolution: id first, name fallback
	cases := []*LoadCase{dead, live}
	if FindCase(cases, "2") != live {
		tst.Errorf("numeric key must resolve by id\n")
		return
	}
	if FindCase(cases, "dead") != dead {
		tst.Errorf("key must fall back to name resolution\n")
		return
	}
	if FindCase(cases, "wind") != nil {
		tst.Errorf("unknown key must resolve to nil\n")
		return
	}
}

func Test_imperfection01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("imperfection01. imperfection case wiring")

	reg := ids.New()
	m := buildBeam(reg)
	set := frm.NewMemberSet(reg, 0, []*frm.Member{m}, "frame")
	lc := NewLoadCase(reg, 0, "dead")
	comb := NewLoadCombination(reg, 0, "comb", "", "", "")
	comb.AddLoadCase(lc, 1.35)

	ic := NewImperfectionCase(reg, 0, []*LoadCombination{comb})
	ic.AddRotation([]*frm.MemberSet{set}, 0.004, []float64{0, 0, 1}, false, []float64{0, 0, 0})
	ic.AddTranslation(reg, []*frm.MemberSet{set}, 0.02, []float64{1, 0, 0})

	chk.IntAssert(len(ic.Rotations), 1)
	chk.IntAssert(len(ic.Translations), 1)
	chk.IntAssert(ic.Translations[0].Id, 1)
	if ic.Combinations[0] != comb {
		tst.Errorf("imperfection case must reference the combination instance\n")
		return
	}
}
