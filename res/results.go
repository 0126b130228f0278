// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package res implements the typed solver results bundle. The solver
// emits node and member ids as JSON strings; this package parses them
// into integer-keyed maps at the boundary.
package res

import (
	"encoding/json"
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// NodeDisplacement holds the six displacement components of one node
type NodeDisplacement struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
	Dz float64 `json:"dz"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
}

// NodeForces holds the six force components at one node
type NodeForces struct {
	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`
	Fz float64 `json:"fz"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`
	Mz float64 `json:"mz"`
}

// NodeLocation holds the coordinates of one node
type NodeLocation struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// ReactionNodeResult holds the reaction forces at one supported node
type ReactionNodeResult struct {
	Location    NodeLocation `json:"location"`
	NodalForces NodeForces   `json:"nodal_forces"`
	SupportId   int          `json:"support_id"`
}

// MemberResult holds end forces and force envelopes of one member
type MemberResult struct {
	StartNodeForces NodeForces `json:"start_node_forces"`
	EndNodeForces   NodeForces `json:"end_node_forces"`
	Minimums        NodeForces `json:"minimums"`
	Maximums        NodeForces `json:"maximums"`
}

// Summary holds result totals
type Summary struct {
	TotalDisplacements  int `json:"total_displacements"`
	TotalMemberForces   int `json:"total_member_forces"`
	TotalReactionForces int `json:"total_reaction_forces"`
}

// CaseResults holds the results of one load case or load combination,
// keyed by node/member id
type CaseResults struct {
	DisplacementNodes map[int]*NodeDisplacement
	ReactionNodes     map[int]*ReactionNodeResult
	MemberResults     map[int]*MemberResult
	Summary           Summary
}

// Bundle holds all solver results, keyed by case/combination name
type Bundle struct {
	LoadCases        map[string]*CaseResults
	LoadCombinations map[string]*CaseResults
}

// wire records with string-keyed ids, as emitted by the solver
type caseRecord struct {
	DisplacementNodes map[string]*NodeDisplacement   `json:"displacement_nodes"`
	ReactionNodes     map[string]*ReactionNodeResult `json:"reaction_nodes"`
	MemberResults     map[string]*MemberResult       `json:"member_results"`
	Summary           Summary                        `json:"summary"`
}

type bundleRecord struct {
	LoadCases        map[string]*caseRecord `json:"loadcases"`
	LoadCombinations map[string]*caseRecord `json:"loadcombinations"`
}

// parseKeys converts a string-keyed map into an integer-keyed one,
// failing on any non-numeric key
func parseKeys[T any](section string, in map[string]*T) (out map[int]*T, err error) {
	out = make(map[int]*T, len(in))
	for key, val := range in {
		id, e := strconv.Atoi(key)
		if e != nil {
			return nil, chk.Err("results: %s has non-numeric id %q", section, key)
		}
		out[id] = val
	}
	return
}

func decodeCase(name string, rec *caseRecord) (cr *CaseResults, err error) {
	if rec == nil {
		return nil, chk.Err("results: case %q is null", name)
	}
	if rec.DisplacementNodes == nil {
		return nil, chk.Err("results: case %q has no displacement_nodes section", name)
	}
	cr = &CaseResults{Summary: rec.Summary}
	cr.DisplacementNodes, err = parseKeys("displacement_nodes", rec.DisplacementNodes)
	if err != nil {
		return nil, err
	}
	cr.ReactionNodes, err = parseKeys("reaction_nodes", rec.ReactionNodes)
	if err != nil {
		return nil, err
	}
	cr.MemberResults, err = parseKeys("member_results", rec.MemberResults)
	if err != nil {
		return nil, err
	}
	return
}

// DecodeBundle parses a solver results document. It fails with a
// descriptive error on missing sections or malformed ids; it never
// returns partial results.
func DecodeBundle(data []byte) (bundle *Bundle, err error) {
	var rec bundleRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		return nil, chk.Err("results: cannot parse document: %v", err)
	}
	if rec.LoadCases == nil && rec.LoadCombinations == nil {
		return nil, chk.Err("results: document has neither loadcases nor loadcombinations")
	}
	bundle = &Bundle{
		LoadCases:        make(map[string]*CaseResults),
		LoadCombinations: make(map[string]*CaseResults),
	}
	for name, crec := range rec.LoadCases {
		cr, e := decodeCase(name, crec)
		if e != nil {
			return nil, e
		}
		bundle.LoadCases[name] = cr
	}
	for name, crec := range rec.LoadCombinations {
		cr, e := decodeCase(name, crec)
		if e != nil {
			return nil, e
		}
		bundle.LoadCombinations[name] = cr
	}
	return
}

// stringKeys converts an integer-keyed map back to the solver's
// string-keyed wire form
func stringKeys[T any](in map[int]*T) map[string]*T {
	out := make(map[string]*T, len(in))
	for id, val := range in {
		out[strconv.Itoa(id)] = val
	}
	return out
}

func encodeCase(cr *CaseResults) *caseRecord {
	return &caseRecord{
		DisplacementNodes: stringKeys(cr.DisplacementNodes),
		ReactionNodes:     stringKeys(cr.ReactionNodes),
		MemberResults:     stringKeys(cr.MemberResults),
		Summary:           cr.Summary,
	}
}

// MarshalJSON emits the solver wire form, with ids as strings
func (o *Bundle) MarshalJSON() ([]byte, error) {
	rec := bundleRecord{
		LoadCases:        make(map[string]*caseRecord, len(o.LoadCases)),
		LoadCombinations: make(map[string]*caseRecord, len(o.LoadCombinations)),
	}
	for name, cr := range o.LoadCases {
		rec.LoadCases[name] = encodeCase(cr)
	}
	for name, cr := range o.LoadCombinations {
		rec.LoadCombinations[name] = encodeCase(cr)
	}
	return json.Marshal(rec)
}

// UnmarshalJSON parses the solver wire form via DecodeBundle
func (o *Bundle) UnmarshalJSON(data []byte) error {
	bundle, err := DecodeBundle(data)
	if err != nil {
		return err
	}
	*o = *bundle
	return nil
}

// caseByName looks the case up among load cases first, then combinations
func (o *Bundle) caseByName(name string) *CaseResults {
	if cr, ok := o.LoadCases[name]; ok {
		return cr
	}
	if cr, ok := o.LoadCombinations[name]; ok {
		return cr
	}
	return nil
}

// DisplacementAt returns the displacement of one node in the named case
func (o *Bundle) DisplacementAt(caseName string, nodeId int) (*NodeDisplacement, error) {
	cr := o.caseByName(caseName)
	if cr == nil {
		return nil, chk.Err("results: no case %q", caseName)
	}
	d, ok := cr.DisplacementNodes[nodeId]
	if !ok {
		return nil, chk.Err("results: case %q has no displacement for node %d", caseName, nodeId)
	}
	return d, nil
}

// ReactionAt returns the reaction at one supported node in the named case
func (o *Bundle) ReactionAt(caseName string, nodeId int) (*ReactionNodeResult, error) {
	cr := o.caseByName(caseName)
	if cr == nil {
		return nil, chk.Err("results: no case %q", caseName)
	}
	r, ok := cr.ReactionNodes[nodeId]
	if !ok {
		return nil, chk.Err("results: case %q has no reaction for node %d", caseName, nodeId)
	}
	return r, nil
}

// MemberForces returns the force record of one member in the named case
func (o *Bundle) MemberForces(caseName string, memberId int) (*MemberResult, error) {
	cr := o.caseByName(caseName)
	if cr == nil {
		return nil, chk.Err("results: no case %q", caseName)
	}
	m, ok := cr.MemberResults[memberId]
	if !ok {
		return nil, chk.Err("results: case %q has no forces for member %d", caseName, memberId)
	}
	return m, nil
}
