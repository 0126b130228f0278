// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/Jeroen124/FERS-core/ids"
)

// analysis order
const (
	OrderLinear    = "LINEAR"
	OrderNonlinear = "NONLINEAR"
)

// dimensionality
const (
	Dim2D = "2D"
	Dim3D = "3D"
)

// rigid-link strategies
const (
	RigidMember = "RIGID_MEMBER" // model rigid members as very stiff members
	RigidLink   = "RIGID_LINK"   // eliminate rigid members as kinematic constraints
)

// AnalysisOptions holds solver instructions; passed through to the
// external engine unchanged
type AnalysisOptions struct {
	Id             int     `json:"id"`              // unique identifier
	SolveLoadcases bool    `json:"solve_loadcases"` // also solve plain load cases, not only combinations
	Solver         string  `json:"solver"`          // solver name; e.g. "newton_raphson"
	Tolerance      float64 `json:"tolerance"`       // convergence tolerance
	MaxIterations  int     `json:"max_iterations"`  // iteration cap
	Dimensionality string  `json:"dimensionality"`  // "2D" or "3D"
	Order          string  `json:"order"`           // "LINEAR" or "NONLINEAR"
	RigidStrategy  string  `json:"rigid_strategy"`  // rigid member handling
	AxialSlack     float64 `json:"axial_slack"`     // slack stiffness for tension-only members
}

// SetDefault sets default values
func (o *AnalysisOptions) SetDefault() {
	o.SolveLoadcases = true
	o.Solver = "newton_raphson"
	o.Tolerance = 0.01
	o.MaxIterations = 30
	o.Dimensionality = Dim3D
	o.Order = OrderNonlinear
	o.RigidStrategy = RigidMember
	o.AxialSlack = 500
}

// UnitSettings holds display/formatting units; carried through the
// exchange unchanged, never interpreted by this layer
type UnitSettings struct {
	System          string `json:"system"`          // "metric" or "imperial"
	LengthUnit      string `json:"lengthUnit"`      // e.g. "m"
	ForceUnit       string `json:"forceUnit"`       // e.g. "N"
	DensityUnit     string `json:"densityUnit"`     // e.g. "kg/m3"
	WeightUnit      string `json:"weightUnit"`      // e.g. "kg"
	PressureUnit    string `json:"pressureUnit"`    // e.g. "Pa"
	TemperatureUnit string `json:"temperatureUnit"` // e.g. "celsius"
}

// SetDefault sets default values
func (o *UnitSettings) SetDefault() {
	o.System = "metric"
	o.LengthUnit = "m"
	o.ForceUnit = "N"
	o.DensityUnit = "kg/m3"
	o.WeightUnit = "kg"
	o.PressureUnit = "Pa"
	o.TemperatureUnit = "celsius"
}

// GeneralInfo holds project metadata
type GeneralInfo struct {
	ProjectName string `json:"project_name"` // project name
	Author      string `json:"author"`       // author name
	Version     string `json:"version"`      // model version
}

// SetDefault sets default values
func (o *GeneralInfo) SetDefault() {
	o.ProjectName = "Unnamed Project"
	o.Author = "Unknown"
	o.Version = "1.0"
}

// Settings holds all model settings
type Settings struct {
	Id              int             `json:"id"`               // unique identifier
	AnalysisOptions AnalysisOptions `json:"analysis_options"` // solver instructions
	UnitSettings    UnitSettings    `json:"unit_settings"`    // display units
	GeneralInfo     GeneralInfo     `json:"general_info"`     // project metadata
}

// NewSettings creates settings with default values. id == 0 requests an
// auto-assigned identifier.
func NewSettings(reg *ids.Registry, id int) *Settings {
	o := &Settings{Id: reg.Resolve(ids.KindSettings, id)}
	o.AnalysisOptions.SetDefault()
	o.UnitSettings.SetDefault()
	o.GeneralInfo.SetDefault()
	return o
}
