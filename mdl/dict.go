// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"
	"encoding/json"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/Jeroen124/FERS-core/lds"
	"github.com/Jeroen124/FERS-core/res"
)

// Document is the JSON exchange form of a model: flat catalogs of shared
// entities plus relational records referencing them by id. This is the
// format the external solver consumes.
type Document struct {
	MemberSets        []msetRecord    `json:"member_sets"`
	LoadCases         []lcaseRecord   `json:"load_cases"`
	LoadCombinations  []combRecord    `json:"load_combinations"`
	ImperfectionCases []impcaseRecord `json:"imperfection_cases"`
	Settings          *Settings       `json:"settings"`
	Results           *res.Bundle     `json:"results"`
	MemberHinges      []hingeRecord   `json:"memberhinges"`
	Materials         []matRecord     `json:"materials"`
	Sections          []secRecord     `json:"sections"`
	NodalSupports     []supRecord     `json:"nodal_supports"`
	ShapePaths        []shapeRecord   `json:"shape_paths"`
}

// condRecord serializes one support condition; stiffness is null for
// Fixed and Free
type condRecord struct {
	ConditionType string   `json:"condition_type"`
	Stiffness     *float64 `json:"stiffness"`
}

type matRecord struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Emod        float64 `json:"e_mod"`
	Gmod        float64 `json:"g_mod"`
	Density     float64 `json:"density"`
	YieldStress float64 `json:"yield_stress"`
}

type secRecord struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Material  int     `json:"material"`
	H         float64 `json:"h"`
	B         float64 `json:"b"`
	Iy        float64 `json:"i_y"`
	Iz        float64 `json:"i_z"`
	J         float64 `json:"j"`
	Area      float64 `json:"area"`
	ShapePath *int    `json:"shape_path"`
}

type shapeRecord struct {
	Id       int                `json:"id"`
	Name     string             `json:"name"`
	Commands []frm.ShapeCommand `json:"shapeCommands"`
}

type supRecord struct {
	Id             int                   `json:"id"`
	Classification string                `json:"classification"`
	Displacement   map[string]condRecord `json:"displacement_conditions"`
	Rotation       map[string]condRecord `json:"rotation_conditions"`
}

type hingeRecord struct {
	Id          int                   `json:"id"`
	Translation map[string]condRecord `json:"translation_conditions"`
	Rotation    map[string]condRecord `json:"rotation_conditions"`
}

type nodeRecord struct {
	Id             int     `json:"id"`
	Classification string  `json:"classification"`
	X              float64 `json:"X"`
	Y              float64 `json:"Y"`
	Z              float64 `json:"Z"`
	NodalSupport   *int    `json:"nodal_support"`
}

type memberRecord struct {
	Id              int        `json:"id"`
	StartNode       nodeRecord `json:"start_node"`
	EndNode         nodeRecord `json:"end_node"`
	Section         *int       `json:"section"`
	RotationAngle   float64    `json:"rotation_angle"`
	StartHinge      *int       `json:"start_hinge"`
	EndHinge        *int       `json:"end_hinge"`
	Classification  string     `json:"classification"`
	Weight          float64    `json:"weight"`
	Chi             float64    `json:"chi"`
	ReferenceMember *int       `json:"reference_member"`
	ReferenceNode   *int       `json:"reference_node"`
	MemberType      string     `json:"member_type"`
}

type msetRecord struct {
	Id             int            `json:"id"`
	Classification string         `json:"classification"`
	Ly             float64        `json:"l_y"`
	Lz             float64        `json:"l_z"`
	Members        []memberRecord `json:"members"`
}

type nloadRecord struct {
	Id        int       `json:"id"`
	Node      int       `json:"node"`
	LoadCase  int       `json:"load_case"`
	Magnitude float64   `json:"magnitude"`
	Direction []float64 `json:"direction"`
	LoadType  string    `json:"load_type"`
}

type dloadRecord struct {
	Id           int       `json:"id"`
	Member       int       `json:"member"`
	LoadCase     int       `json:"load_case"`
	Magnitude    float64   `json:"magnitude"`
	EndMagnitude float64   `json:"end_magnitude"`
	Direction    []float64 `json:"direction"`
	StartFrac    float64   `json:"start_frac"`
	EndFrac      float64   `json:"end_frac"`
}

type lcaseRecord struct {
	Id               int           `json:"id"`
	Name             string        `json:"name"`
	NodalLoads       []nloadRecord `json:"nodal_loads"`
	NodalMoments     []nloadRecord `json:"nodal_moments"`
	DistributedLoads []dloadRecord `json:"distributed_loads"`
}

type combRecord struct {
	Id               int                `json:"id"`
	Name             string             `json:"name"`
	LoadCasesFactors map[string]float64 `json:"load_cases_factors"`
	Situation        string             `json:"situation"`
	Check            string             `json:"check"`
	LimitState       string             `json:"limit_state"`
}

type rotimpRecord struct {
	MemberSets []int     `json:"memberset"`
	Magnitude  float64   `json:"magnitude"`
	Axis       []float64 `json:"axis"`
	AxisOnly   bool      `json:"axis_only"`
	Point      []float64 `json:"point"`
}

type trnimpRecord struct {
	Id         int       `json:"id"`
	MemberSets []int     `json:"memberset"`
	Magnitude  float64   `json:"magnitude"`
	Axis       []float64 `json:"axis"`
}

type impcaseRecord struct {
	Id           int            `json:"imperfection_case_id"`
	Combinations []int          `json:"load_combinations"`
	Rotations    []rotimpRecord `json:"rotation_imperfections"`
	Translations []trnimpRecord `json:"translation_imperfections"`
}

// directions of the condition maps
var dirkeys = [3]string{"X", "Y", "Z"}

func intptr(id int) *int {
	return &id
}

func encodeCond(c frm.SupportCondition) condRecord {
	rec := condRecord{ConditionType: c.Kind}
	if c.Kind != frm.CondFixed && c.Kind != frm.CondFree {
		k := c.Stiffness
		rec.Stiffness = &k
	}
	return rec
}

func encodeConds(conds [3]frm.SupportCondition) map[string]condRecord {
	out := make(map[string]condRecord, 3)
	for i, dir := range dirkeys {
		out[dir] = encodeCond(conds[i])
	}
	return out
}

func decodeCond(rec condRecord) (frm.SupportCondition, error) {
	stiffness := 0.0
	if rec.Stiffness != nil {
		stiffness = *rec.Stiffness
	}
	return frm.NewSupportCondition(rec.ConditionType, stiffness)
}

func decodeConds(what string, in map[string]condRecord) (out [3]frm.SupportCondition, err error) {
	for i, dir := range dirkeys {
		rec, ok := in[dir]
		if !ok {
			return out, chk.Err("%s: missing condition for direction %q", what, dir)
		}
		out[i], err = decodeCond(rec)
		if err != nil {
			return out, err
		}
	}
	return
}

func encodeNode(n *frm.Node) nodeRecord {
	rec := nodeRecord{Id: n.Id, Classification: n.Classification, X: n.X, Y: n.Y, Z: n.Z}
	if n.Support != nil {
		rec.NodalSupport = intptr(n.Support.Id)
	}
	return rec
}

func encodeMember(m *frm.Member) memberRecord {
	rec := memberRecord{
		Id:             m.Id,
		StartNode:      encodeNode(m.Start),
		EndNode:        encodeNode(m.End),
		RotationAngle:  m.RotationAngle,
		Classification: m.Classification,
		Weight:         m.Weight,
		Chi:            m.Chi,
		MemberType:     m.Type,
	}
	if m.Sec != nil {
		rec.Section = intptr(m.Sec.Id)
	}
	if m.StartHinge != nil {
		rec.StartHinge = intptr(m.StartHinge.Id)
	}
	if m.EndHinge != nil {
		rec.EndHinge = intptr(m.EndHinge.Id)
	}
	if m.RefMember != nil {
		rec.ReferenceMember = intptr(m.RefMember.Id)
	}
	if m.RefNode != nil {
		rec.ReferenceNode = intptr(m.RefNode.Id)
	}
	return rec
}

// Encode converts the model into its exchange document. Catalog sections
// are identity-deduplicated across all member sets; relational records
// reference them by id only.
func (o *Model) Encode() *Document {
	doc := &Document{
		MemberSets:        []msetRecord{},
		LoadCases:         []lcaseRecord{},
		LoadCombinations:  []combRecord{},
		ImperfectionCases: []impcaseRecord{},
		Settings:          o.Settings,
		Results:           o.Results,
		MemberHinges:      []hingeRecord{},
		Materials:         []matRecord{},
		Sections:          []secRecord{},
		NodalSupports:     []supRecord{},
		ShapePaths:        []shapeRecord{},
	}

	// catalogs
	for _, h := range o.UniqueMemberHinges() {
		doc.MemberHinges = append(doc.MemberHinges, hingeRecord{
			Id:          h.Id,
			Translation: encodeConds(h.Translation),
			Rotation:    encodeConds(h.Rotation),
		})
	}
	for _, mat := range o.UniqueMaterials() {
		doc.Materials = append(doc.Materials, matRecord{
			Id:          mat.Id,
			Name:        mat.Name,
			Emod:        mat.Emod,
			Gmod:        mat.Gmod,
			Density:     mat.Density,
			YieldStress: mat.YieldStress,
		})
	}
	for _, sec := range o.UniqueSections() {
		rec := secRecord{
			Id:       sec.Id,
			Name:     sec.Name,
			Material: sec.Material.Id,
			H:        sec.H,
			B:        sec.B,
			Iy:       sec.Iy,
			Iz:       sec.Iz,
			J:        sec.J,
			Area:     sec.Area,
		}
		if sec.Shape != nil {
			rec.ShapePath = intptr(sec.Shape.Id)
		}
		doc.Sections = append(doc.Sections, rec)
	}
	for _, sup := range o.UniqueNodalSupports() {
		doc.NodalSupports = append(doc.NodalSupports, supRecord{
			Id:             sup.Id,
			Classification: sup.Classification,
			Displacement:   encodeConds(sup.Displacement),
			Rotation:       encodeConds(sup.Rotation),
		})
	}
	for _, sp := range o.UniqueShapePaths() {
		doc.ShapePaths = append(doc.ShapePaths, shapeRecord{Id: sp.Id, Name: sp.Name, Commands: sp.Commands})
	}

	// member sets with embedded node records
	for _, ms := range o.MemberSets {
		rec := msetRecord{
			Id:             ms.Id,
			Classification: ms.Classification,
			Ly:             ms.Ly,
			Lz:             ms.Lz,
			Members:        []memberRecord{},
		}
		for _, m := range ms.Members {
			rec.Members = append(rec.Members, encodeMember(m))
		}
		doc.MemberSets = append(doc.MemberSets, rec)
	}

	// load cases
	for _, lc := range o.LoadCases {
		rec := lcaseRecord{
			Id:               lc.Id,
			Name:             lc.Name,
			NodalLoads:       []nloadRecord{},
			NodalMoments:     []nloadRecord{},
			DistributedLoads: []dloadRecord{},
		}
		for _, l := range lc.NodalLoads {
			rec.NodalLoads = append(rec.NodalLoads, nloadRecord{
				Id:        l.Id,
				Node:      l.Node.Id,
				LoadCase:  lc.Id,
				Magnitude: l.Magnitude,
				Direction: l.Direction,
				LoadType:  l.LoadKind,
			})
		}
		for _, l := range lc.NodalMoments {
			rec.NodalMoments = append(rec.NodalMoments, nloadRecord{
				Id:        l.Id,
				Node:      l.Node.Id,
				LoadCase:  lc.Id,
				Magnitude: l.Magnitude,
				Direction: l.Direction,
				LoadType:  l.LoadKind,
			})
		}
		for _, l := range lc.DistributedLoads {
			rec.DistributedLoads = append(rec.DistributedLoads, dloadRecord{
				Id:           l.Id,
				Member:       l.Member.Id,
				LoadCase:     lc.Id,
				Magnitude:    l.Qstart,
				EndMagnitude: l.Qend,
				Direction:    l.Direction,
				StartFrac:    l.StartFrac,
				EndFrac:      l.EndFrac,
			})
		}
		doc.LoadCases = append(doc.LoadCases, rec)
	}

	// load combinations; factor keys are load-case ids
	for _, combo := range o.LoadCombinations {
		rec := combRecord{
			Id:               combo.Id,
			Name:             combo.Name,
			LoadCasesFactors: make(map[string]float64, len(combo.Factors)),
			Situation:        combo.Situation,
			Check:            combo.Check,
			LimitState:       combo.LimitState,
		}
		for _, cf := range combo.Factors {
			rec.LoadCasesFactors[strconv.Itoa(cf.Case.Id)] = cf.Factor
		}
		doc.LoadCombinations = append(doc.LoadCombinations, rec)
	}

	// imperfection cases
	for _, ic := range o.ImperfectionCases {
		rec := impcaseRecord{
			Id:           ic.Id,
			Combinations: []int{},
			Rotations:    []rotimpRecord{},
			Translations: []trnimpRecord{},
		}
		for _, combo := range ic.Combinations {
			rec.Combinations = append(rec.Combinations, combo.Id)
		}
		for _, r := range ic.Rotations {
			rec.Rotations = append(rec.Rotations, rotimpRecord{
				MemberSets: msetIds(r.MemberSets),
				Magnitude:  r.Magnitude,
				Axis:       r.Axis,
				AxisOnly:   r.AxisOnly,
				Point:      r.Point,
			})
		}
		for _, t := range ic.Translations {
			rec.Translations = append(rec.Translations, trnimpRecord{
				Id:         t.Id,
				MemberSets: msetIds(t.MemberSets),
				Magnitude:  t.Magnitude,
				Axis:       t.Axis,
			})
		}
		doc.ImperfectionCases = append(doc.ImperfectionCases, rec)
	}
	return doc
}

func msetIds(sets []*frm.MemberSet) (out []int) {
	out = []int{}
	for _, ms := range sets {
		out = append(out, ms.Id)
	}
	return
}

// Decode rebuilds a model from its exchange document. Catalog entities
// are built first; relational records then resolve references by id.
// Every contained id is observed into the registry so later allocations
// never collide.
func Decode(reg *ids.Registry, doc *Document) (model *Model, err error) {
	model = &Model{Settings: doc.Settings, Results: doc.Results}
	if model.Settings != nil {
		reg.Observe(ids.KindSettings, model.Settings.Id)
	}

	// catalogs: materials, shape paths, sections, hinges, supports
	materials := make(map[int]*frm.Material)
	for _, rec := range doc.Materials {
		materials[rec.Id] = frm.NewMaterial(reg, rec.Id, rec.Name, rec.Emod, rec.Gmod, rec.Density, rec.YieldStress)
	}
	shapes := make(map[int]*frm.ShapePath)
	for _, rec := range doc.ShapePaths {
		sp, e := frm.NewShapePath(reg, rec.Id, rec.Name, rec.Commands)
		if e != nil {
			return nil, e
		}
		shapes[rec.Id] = sp
	}
	sections := make(map[int]*frm.Section)
	for _, rec := range doc.Sections {
		mat, ok := materials[rec.Material]
		if !ok {
			return nil, chk.Err("section %d references missing material %d", rec.Id, rec.Material)
		}
		sec, e := frm.NewSection(reg, rec.Id, rec.Name, mat, rec.Iy, rec.Iz, rec.J, rec.Area)
		if e != nil {
			return nil, e
		}
		sec.H = rec.H
		sec.B = rec.B
		if rec.ShapePath != nil {
			sp, ok := shapes[*rec.ShapePath]
			if !ok {
				return nil, chk.Err("section %d references missing shape path %d", rec.Id, *rec.ShapePath)
			}
			sec.Shape = sp
		}
		sections[rec.Id] = sec
	}
	hinges := make(map[int]*frm.MemberHinge)
	for _, rec := range doc.MemberHinges {
		h := frm.NewMemberHinge(reg, rec.Id)
		what := io.Sf("member hinge %d", rec.Id)
		h.Translation, err = decodeConds(what, rec.Translation)
		if err != nil {
			return nil, err
		}
		h.Rotation, err = decodeConds(what, rec.Rotation)
		if err != nil {
			return nil, err
		}
		hinges[rec.Id] = h
	}
	supports := make(map[int]*frm.NodalSupport)
	for _, rec := range doc.NodalSupports {
		sup := frm.NewNodalSupport(reg, rec.Id)
		sup.Classification = rec.Classification
		what := io.Sf("nodal support %d", rec.Id)
		sup.Displacement, err = decodeConds(what, rec.Displacement)
		if err != nil {
			return nil, err
		}
		sup.Rotation, err = decodeConds(what, rec.Rotation)
		if err != nil {
			return nil, err
		}
		supports[rec.Id] = sup
	}

	// member sets: nodes get-or-create, members in pass one,
	// reference rebinding in pass two
	nodes := make(map[int]*frm.Node)
	members := make(map[int]*frm.Member)
	getNode := func(rec nodeRecord) (*frm.Node, error) {
		if n, ok := nodes[rec.Id]; ok {
			return n, nil
		}
		n := frm.NewNode(reg, rec.Id, rec.X, rec.Y, rec.Z)
		n.Classification = rec.Classification
		if rec.NodalSupport != nil {
			sup, ok := supports[*rec.NodalSupport]
			if !ok {
				return nil, chk.Err("node %d references missing nodal support %d", rec.Id, *rec.NodalSupport)
			}
			n.Support = sup
		}
		nodes[rec.Id] = n
		return n, nil
	}
	type pendingRef struct {
		member *frm.Member
		rec    *memberRecord
	}
	var pending []pendingRef
	for i := range doc.MemberSets {
		srec := &doc.MemberSets[i]
		var list []*frm.Member
		for j := range srec.Members {
			mrec := &srec.Members[j]
			if m, ok := members[mrec.Id]; ok {
				list = append(list, m)
				continue
			}
			start, e := getNode(mrec.StartNode)
			if e != nil {
				return nil, e
			}
			end, e := getNode(mrec.EndNode)
			if e != nil {
				return nil, e
			}
			var sec *frm.Section
			if mrec.Section != nil {
				s, ok := sections[*mrec.Section]
				if !ok {
					return nil, chk.Err("member %d references missing section %d", mrec.Id, *mrec.Section)
				}
				sec = s
			}
			args := &frm.MemberArgs{
				Id:             mrec.Id,
				Classification: mrec.Classification,
				RotationAngle:  mrec.RotationAngle,
				Weight:         mrec.Weight,
				Chi:            mrec.Chi,
				Type:           mrec.MemberType,
			}
			if mrec.StartHinge != nil {
				h, ok := hinges[*mrec.StartHinge]
				if !ok {
					return nil, chk.Err("member %d references missing start hinge %d", mrec.Id, *mrec.StartHinge)
				}
				args.StartHinge = h
			}
			if mrec.EndHinge != nil {
				h, ok := hinges[*mrec.EndHinge]
				if !ok {
					return nil, chk.Err("member %d references missing end hinge %d", mrec.Id, *mrec.EndHinge)
				}
				args.EndHinge = h
			}
			m, e := frm.NewMember(reg, start, end, sec, args)
			if e != nil {
				return nil, e
			}
			members[mrec.Id] = m
			list = append(list, m)
			if mrec.ReferenceMember != nil || mrec.ReferenceNode != nil {
				pending = append(pending, pendingRef{member: m, rec: mrec})
			}
		}
		ms := frm.NewMemberSet(reg, srec.Id, list, srec.Classification)
		ms.Ly = srec.Ly
		ms.Lz = srec.Lz
		model.AddMemberSet(ms)
	}
	for _, p := range pending {
		if p.rec.ReferenceMember != nil {
			ref, ok := members[*p.rec.ReferenceMember]
			if !ok {
				return nil, chk.Err("member %d references missing member %d", p.member.Id, *p.rec.ReferenceMember)
			}
			p.member.RefMember = ref
		}
		if p.rec.ReferenceNode != nil {
			ref, ok := nodes[*p.rec.ReferenceNode]
			if !ok {
				return nil, chk.Err("member %d references missing node %d", p.member.Id, *p.rec.ReferenceNode)
			}
			p.member.RefNode = ref
		}
	}

	// load cases
	for _, rec := range doc.LoadCases {
		lc := lds.NewLoadCase(reg, rec.Id, rec.Name)
		for _, lrec := range rec.NodalLoads {
			node, ok := nodes[lrec.Node]
			if !ok {
				return nil, chk.Err("nodal load %d references missing node %d", lrec.Id, lrec.Node)
			}
			reg.Observe(ids.KindNodalLoad, lrec.Id)
			lc.NodalLoads = append(lc.NodalLoads, &lds.NodalLoad{
				Id:        lrec.Id,
				Node:      node,
				Case:      lc,
				Magnitude: lrec.Magnitude,
				Direction: lrec.Direction,
				LoadKind:  lds.KindForce,
			})
		}
		for _, lrec := range rec.NodalMoments {
			node, ok := nodes[lrec.Node]
			if !ok {
				return nil, chk.Err("nodal moment %d references missing node %d", lrec.Id, lrec.Node)
			}
			reg.Observe(ids.KindNodalMoment, lrec.Id)
			lc.NodalMoments = append(lc.NodalMoments, &lds.NodalMoment{
				Id:        lrec.Id,
				Node:      node,
				Case:      lc,
				Magnitude: lrec.Magnitude,
				Direction: lrec.Direction,
				LoadKind:  lds.KindMoment,
			})
		}
		for _, lrec := range rec.DistributedLoads {
			member, ok := members[lrec.Member]
			if !ok {
				return nil, chk.Err("distributed load %d references missing member %d", lrec.Id, lrec.Member)
			}
			if lrec.StartFrac < 0 || lrec.EndFrac > 1 || lrec.StartFrac > lrec.EndFrac {
				return nil, chk.Err("distributed load %d has invalid fractions start=%g end=%g", lrec.Id, lrec.StartFrac, lrec.EndFrac)
			}
			reg.Observe(ids.KindDistributedLoad, lrec.Id)
			lc.DistributedLoads = append(lc.DistributedLoads, &lds.DistributedLoad{
				Id:        lrec.Id,
				Member:    member,
				Case:      lc,
				Qstart:    lrec.Magnitude,
				Qend:      lrec.EndMagnitude,
				Direction: lrec.Direction,
				StartFrac: lrec.StartFrac,
				EndFrac:   lrec.EndFrac,
			})
		}
		model.AddLoadCase(lc)
	}

	// load combinations; factor keys match cases by id first, then name
	for _, rec := range doc.LoadCombinations {
		combo := lds.NewLoadCombination(reg, rec.Id, rec.Name, rec.Situation, rec.Check, rec.LimitState)
		for key, factor := range rec.LoadCasesFactors {
			lc := lds.FindCase(model.LoadCases, key)
			if lc == nil {
				return nil, chk.Err("load combination %d references missing load case %q", rec.Id, key)
			}
			combo.AddLoadCase(lc, factor)
		}
		model.AddLoadCombination(combo)
	}

	// imperfection cases
	msets := make(map[int]*frm.MemberSet)
	for _, ms := range model.MemberSets {
		msets[ms.Id] = ms
	}
	resolveSets := func(what string, list []int) (out []*frm.MemberSet, err error) {
		for _, id := range list {
			ms, ok := msets[id]
			if !ok {
				return nil, chk.Err("%s references missing member set %d", what, id)
			}
			out = append(out, ms)
		}
		return
	}
	for _, rec := range doc.ImperfectionCases {
		var combos []*lds.LoadCombination
		for _, id := range rec.Combinations {
			combo := model.CombinationByID(id)
			if combo == nil {
				return nil, chk.Err("imperfection case %d references missing load combination %d", rec.Id, id)
			}
			combos = append(combos, combo)
		}
		ic := lds.NewImperfectionCase(reg, rec.Id, combos)
		for _, rrec := range rec.Rotations {
			sets, e := resolveSets(io.Sf("rotation imperfection of case %d", rec.Id), rrec.MemberSets)
			if e != nil {
				return nil, e
			}
			ic.AddRotation(sets, rrec.Magnitude, rrec.Axis, rrec.AxisOnly, rrec.Point)
		}
		for _, trec := range rec.Translations {
			sets, e := resolveSets(io.Sf("translation imperfection %d", trec.Id), trec.MemberSets)
			if e != nil {
				return nil, e
			}
			reg.Observe(ids.KindTranslationImperfection, trec.Id)
			ic.Translations = append(ic.Translations, &lds.TranslationImperfection{
				Id:         trec.Id,
				MemberSets: sets,
				Magnitude:  trec.Magnitude,
				Axis:       trec.Axis,
			})
		}
		model.AddImperfectionCase(ic)
	}
	return model, nil
}

// MarshalJSON of the model goes through the exchange document
func (o *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Encode())
}

// SaveJSON writes the model document to dirout/fnkey.json, creating the
// directory if needed
func (o *Model) SaveJSON(dirout, fnkey string) {
	data, err := json.MarshalIndent(o.Encode(), "", "  ")
	if err != nil {
		chk.Panic("cannot marshal model: %v", err)
	}
	io.WriteFileD(dirout, fnkey+".json", bytes.NewBuffer(data))
}

// ReadModel reads and decodes a model document from a JSON file
func ReadModel(reg *ids.Registry, filename string) (model *Model, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("cannot read model file %q: %v", filename, err)
	}
	return DecodeData(reg, data)
}

// DecodeData parses a JSON document and decodes it into a model
func DecodeData(reg *ids.Registry, data []byte) (model *Model, err error) {
	var doc Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, chk.Err("cannot parse model document: %v", err)
	}
	return Decode(reg, &doc)
}
