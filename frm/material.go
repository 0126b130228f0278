// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"github.com/Jeroen124/FERS-core/ids"
)

// Material holds material data. Materials are catalog entities: one
// instance may be shared by any number of sections.
type Material struct {
	Id          int     // unique identifier
	Name        string  // name of material; e.g. "Steel S235"
	Emod        float64 // elastic (Young's) modulus
	Gmod        float64 // shear modulus
	Density     float64 // mass density
	YieldStress float64 // yield stress
}

// NewMaterial creates a material. id == 0 requests an auto-assigned identifier.
func NewMaterial(reg *ids.Registry, id int, name string, emod, gmod, density, yield float64) *Material {
	return &Material{
		Id:          reg.Resolve(ids.KindMaterial, id),
		Name:        name,
		Emod:        emod,
		Gmod:        gmod,
		Density:     density,
		YieldStress: yield,
	}
}
