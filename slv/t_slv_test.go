// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"errors"
	"runtime"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Jeroen124/FERS-core/frm"
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/Jeroen124/FERS-core/mdl"
)

func buildModel(reg *ids.Registry) *mdl.Model {
	steel := frm.NewMaterial(reg, 0, "S235", 210e9, 81e9, 7850, 235e6)
	sec, _ := frm.NewSection(reg, 0, "sec", steel, 1e-6, 1e-6, 1e-8, 0.01)
	n1 := frm.NewNode(reg, 0, 0, 0, 0)
	n1.Support = frm.NewNodalSupport(reg, 0)
	n2 := frm.NewNode(reg, 0, 5, 0, 0)
	m, _ := frm.NewMember(reg, n1, n2, sec, nil)
	model := mdl.NewModel(reg)
	model.AddMemberSet(frm.NewMemberSet(reg, 0, []*frm.Member{m}, "beam"))
	lc := model.CreateLoadCase(reg, "tip load")
	lc.AddNodalLoad(reg, n2, -1000, []float64{0, 1, 0})
	return model
}

func Test_gateway01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gateway01. missing executable yields ExecError")

	reg := ids.New()
	model := buildModel(reg)
	gw := &Gateway{Cmd: "/nonexistent/fers-solver"}
	_, err := gw.Run(model)
	if err == nil {
		tst.Errorf("test failed: missing solver binary should fail\n")
		return
	}
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		tst.Errorf("test failed: expected ExecError; got %T: %v\n", err, err)
		return
	}
	if model.Results != nil {
		tst.Errorf("test failed: failed run must not attach results\n")
		return
	}
}

func Test_gateway02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gateway02. invalid solver output yields ResponseError")

	if runtime.GOOS == "windows" {
		tst.Skip("needs /bin/cat")
	}

	reg := ids.New()
	model := buildModel(reg)

	// cat echoes the model document back; it is not a results document
	gw := &Gateway{Cmd: "/bin/cat"}
	_, err := gw.Run(model)
	if err == nil {
		tst.Errorf("test failed: echoed model should fail validation\n")
		return
	}
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		tst.Errorf("test failed: expected ResponseError; got %T: %v\n", err, err)
		return
	}
	if model.Results != nil {
		tst.Errorf("test failed: failed run must not attach results\n")
		return
	}
}

func Test_gateway03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gateway03. RunFile on a missing path fails")

	gw := &Gateway{Cmd: "/bin/cat"}
	if _, err := gw.RunFile("/nonexistent/model.json"); err == nil {
		tst.Errorf("test failed: missing model file should fail\n")
		return
	}
}
