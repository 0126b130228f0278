// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
)

var doc01 = []byte(`{
  "loadcases": {
    "tip load": {
      "displacement_nodes": {
        "1": {"dx": 0, "dy": 0, "dz": 0, "rx": 0, "ry": 0, "rz": 0},
        "2": {"dx": 0.001, "dy": -0.024, "dz": 0, "rx": 0, "ry": 0, "rz": -0.0071}
      },
      "reaction_nodes": {
        "1": {
          "location": {"X": 0, "Y": 0, "Z": 0},
          "nodal_forces": {"fx": 0, "fy": 1000, "fz": 0, "mx": 0, "my": 0, "mz": 5000},
          "support_id": 1
        }
      },
      "member_results": {
        "1": {
          "start_node_forces": {"fx": 0, "fy": 1000, "fz": 0, "mx": 0, "my": 0, "mz": 5000},
          "end_node_forces": {"fx": 0, "fy": -1000, "fz": 0, "mx": 0, "my": 0, "mz": 0},
          "minimums": {"fx": 0, "fy": -1000, "fz": 0, "mx": 0, "my": 0, "mz": 0},
          "maximums": {"fx": 0, "fy": 1000, "fz": 0, "mx": 0, "my": 0, "mz": 5000}
        }
      },
      "summary": {"total_displacements": 2, "total_member_forces": 1, "total_reaction_forces": 1}
    }
  },
  "loadcombinations": {}
}`)

func Test_results01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results01. decoding parses string ids into typed maps")

	bundle, err := DecodeBundle(doc01)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(bundle.LoadCases), 1)
	chk.IntAssert(len(bundle.LoadCombinations), 0)

	cr := bundle.LoadCases["tip load"]
	chk.IntAssert(len(cr.DisplacementNodes), 2)
	chk.IntAssert(cr.Summary.TotalDisplacements, 2)

	d, err := bundle.DisplacementAt("tip load", 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dy", 1e-17, d.Dy, -0.024)
	chk.Float64(tst, "rz", 1e-17, d.Rz, -0.0071)

	r, err := bundle.ReactionAt("tip load", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "fy", 1e-17, r.NodalForces.Fy, 1000)
	chk.IntAssert(r.SupportId, 1)

	m, err := bundle.MemberForces("tip load", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mz", 1e-17, m.StartNodeForces.Mz, 5000)
	chk.Float64(tst, "max mz", 1e-17, m.Maximums.Mz, 5000)

	// lookups that must fail
	if _, err := bundle.DisplacementAt("wind", 2); err == nil {
		tst.Errorf("test failed: unknown case should fail\n")
		return
	}
	if _, err := bundle.DisplacementAt("tip load", 99); err == nil {
		tst.Errorf("test failed: unknown node should fail\n")
		return
	}
	if _, err := bundle.MemberForces("tip load", 99); err == nil {
		tst.Errorf("test failed: unknown member should fail\n")
		return
	}
}

func Test_results02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results02. malformed documents fail fast")

	// non-numeric node id
	_, err := DecodeBundle([]byte(`{"loadcases": {"a": {
		"displacement_nodes": {"n1": {"dx": 0}},
		"reaction_nodes": {}, "member_results": {},
		"summary": {}}}}`))
	if err == nil {
		tst.Errorf("test failed: non-numeric id should fail\n")
		return
	}

	// missing displacement section
	_, err = DecodeBundle([]byte(`{"loadcases": {"a": {
		"reaction_nodes": {}, "member_results": {}, "summary": {}}}}`))
	if err == nil {
		tst.Errorf("test failed: missing displacement_nodes should fail\n")
		return
	}

	// neither cases nor combinations
	_, err = DecodeBundle([]byte(`{}`))
	if err == nil {
		tst.Errorf("test failed: empty document should fail\n")
		return
	}

	// not JSON at all
	_, err = DecodeBundle([]byte(`solver exploded`))
	if err == nil {
		tst.Errorf("test failed: non-JSON output should fail\n")
		return
	}
}

func Test_results03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results03. wire round trip")

	bundle, err := DecodeBundle(doc01)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	again := new(Bundle)
	if err := json.Unmarshal(data, again); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	d, err := again.DisplacementAt("tip load", 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dy", 1e-17, d.Dy, -0.024)
	chk.IntAssert(again.LoadCases["tip load"].Summary.TotalMemberForces, 1)
}
