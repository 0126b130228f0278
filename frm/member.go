// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frm

import (
	"math"

	"github.com/Jeroen124/FERS-core/ids"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// member types
const (
	TypeNormal  = "NORMAL"  // elastic member; requires a section
	TypeRigid   = "RIGID"   // kinematic link; no section, no elastic deformation
	TypeTension = "TENSION" // as NORMAL, but the solver clamps compressive axial force to zero
)

// Member holds one frame member between two nodes. Topology is immutable
// after construction except for the section and hinge references, which
// may be (re-)assigned while building a model.
type Member struct {
	Id             int          // unique identifier
	Start          *Node        // start node
	End            *Node        // end node
	Sec            *Section     // cross section (shared); nil allowed only for RIGID members
	StartHinge     *MemberHinge // end release at start; nil means rigid connection
	EndHinge       *MemberHinge // end release at end; nil means rigid connection
	Classification string       // free-form tag
	RotationAngle  float64      // roll about the member axis [rad]
	Weight         float64      // total weight; derived from the section unless overridden
	Chi            float64      // buckling reduction factor; 0 means not set
	RefMember      *Member      // orientation/coupling reference; nil means none
	RefNode        *Node        // orientation reference node; nil means none
	Type           string       // "NORMAL", "RIGID" or "TENSION"
}

// MemberArgs holds the optional arguments of NewMember
type MemberArgs struct {
	Id             int          // explicit identifier; 0 means auto-assign
	StartHinge     *MemberHinge // end release at start
	EndHinge       *MemberHinge // end release at end
	Classification string       // free-form tag
	RotationAngle  float64      // roll about the member axis [rad]
	Weight         float64      // weight override; 0 means derive from section
	Chi            float64      // buckling reduction factor
	RefMember      *Member      // orientation/coupling reference
	RefNode        *Node        // orientation reference node
	Type           string       // member type; "" means NORMAL
}

// NewMember creates a member between two nodes. A section is required
// unless the member type is RIGID. Zero-length geometry is rejected.
// args may be nil for a plain NORMAL member.
func NewMember(reg *ids.Registry, start, end *Node, sec *Section, args *MemberArgs) (*Member, error) {
	if args == nil {
		args = &MemberArgs{}
	}
	mtype := args.Type
	if mtype == "" {
		mtype = TypeNormal
	}
	switch mtype {
	case TypeNormal, TypeTension:
		if sec == nil {
			return nil, chk.Err("%s member between nodes %d and %d requires a section", mtype, start.Id, end.Id)
		}
	case TypeRigid:
		// no section needed; section-derived quantities are zero
	default:
		return nil, chk.Err("unknown member type %q", args.Type)
	}
	if Distance(start, end) < 1e-12 {
		return nil, chk.Err("member between nodes %d and %d has zero length", start.Id, end.Id)
	}
	o := &Member{
		Id:             reg.Resolve(ids.KindMember, args.Id),
		Start:          start,
		End:            end,
		Sec:            sec,
		StartHinge:     args.StartHinge,
		EndHinge:       args.EndHinge,
		Classification: args.Classification,
		RotationAngle:  args.RotationAngle,
		Chi:            args.Chi,
		RefMember:      args.RefMember,
		RefNode:        args.RefNode,
		Type:           mtype,
	}
	o.Weight = args.Weight
	if o.Weight == 0 {
		o.Weight = o.deriveWeight()
	}
	return o, nil
}

// Length returns the Euclidean distance between the endpoint nodes
func (o *Member) Length() float64 {
	return Distance(o.Start, o.End)
}

// LengthX returns the projected length along the global X axis
func (o *Member) LengthX() float64 {
	return math.Abs(o.End.X - o.Start.X)
}

// EA returns the axial stiffness E*A; 0 without a section
func (o *Member) EA() float64 {
	if o.Sec == nil {
		return 0
	}
	return o.Sec.Material.Emod * o.Sec.Area
}

// EIy returns the bending stiffness E*Iy; 0 without a section
func (o *Member) EIy() float64 {
	if o.Sec == nil {
		return 0
	}
	return o.Sec.Material.Emod * o.Sec.Iy
}

// EIz returns the bending stiffness E*Iz; 0 without a section
func (o *Member) EIz() float64 {
	if o.Sec == nil {
		return 0
	}
	return o.Sec.Material.Emod * o.Sec.Iz
}

// WeightPerLength returns density*area; 0 without a section
func (o *Member) WeightPerLength() float64 {
	if o.Sec == nil {
		return 0
	}
	return o.Sec.Material.Density * o.Sec.Area
}

// deriveWeight computes density*area*length; 0 without a section
func (o *Member) deriveWeight() float64 {
	if o.Sec == nil {
		return 0
	}
	return o.Sec.Material.Density * o.Sec.Area * o.Length()
}

// norm3 returns the Euclidean norm of a 3-component vector
func norm3(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// LocalAxes computes the orthonormal local frame of this member:
// ex along the axis from start to end; ez derived from the global Z
// direction, or from global X when the member is near-parallel to Z;
// ey completing the right-handed set. The roll (RotationAngle) is
// applied about ex afterwards.
func (o *Member) LocalAxes() (ex, ey, ez []float64, err error) {

	// ex along the member axis
	ex = []float64{o.End.X - o.Start.X, o.End.Y - o.Start.Y, o.End.Z - o.Start.Z}
	l := norm3(ex)
	if l < 1e-12 {
		err = chk.Err("member %d has zero length; cannot build local axes", o.Id)
		return
	}
	for i := 0; i < 3; i++ {
		ex[i] /= l
	}

	// reference direction: global Z unless degenerate, then global X
	gref := []float64{0, 0, 1}
	if math.Abs(ex[2]) > 1.0-1e-8 {
		gref = []float64{1, 0, 0}
	}

	// ey := gref cross ex;  ez := ex cross ey
	ey = make([]float64, 3)
	ez = make([]float64, 3)
	utl.Cross3d(ey, gref, ex)
	n := norm3(ey)
	for i := 0; i < 3; i++ {
		ey[i] /= n
	}
	utl.Cross3d(ez, ex, ey)

	// roll about ex
	if o.RotationAngle != 0 {
		c := math.Cos(o.RotationAngle)
		s := math.Sin(o.RotationAngle)
		for i := 0; i < 3; i++ {
			yi := c*ey[i] + s*ez[i]
			zi := -s*ey[i] + c*ez[i]
			ey[i], ez[i] = yi, zi
		}
	}
	return
}

// String returns a short description of this member
func (o *Member) String() string {
	return io.Sf("Member{%d: %d->%d %s}", o.Id, o.Start.Id, o.End.Id, o.Type)
}
