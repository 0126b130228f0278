// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
)

// Section holds cross-section data. Sections are catalog entities shared
// by members; the material reference is itself a shared catalog entity.
type Section struct {
	Id       int        // unique identifier
	Name     string     // name of section; e.g. "IPE 180"
	Material *Material  // material (shared)
	Iy       float64    // second moment of area about local y
	Iz       float64    // second moment of area about local z
	J        float64    // torsional constant
	Area     float64    // cross-sectional area
	H        float64    // height; 0 means unspecified
	B        float64    // width; 0 means unspecified
	Shape    *ShapePath // outline for geometry export (shared); nil means none
}

// NewSection creates a section. id == 0 requests an auto-assigned identifier.
// The material is required; H, B and the shape path are set on the returned
// struct when needed.
func NewSection(reg *ids.Registry, id int, name string, material *Material, iy, iz, j, area float64) (*Section, error) {
	if material == nil {
		return nil, chk.Err("section %q requires a material", name)
	}
	return &Section{
		Id:       reg.Resolve(ids.KindSection, id),
		Name:     name,
		Material: material,
		Iy:       iy,
		Iz:       iz,
		J:        j,
		Area:     area,
	}, nil
}
