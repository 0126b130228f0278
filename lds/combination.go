// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import (
	"strconv"

	"github.com/Jeroen124/FERS-core/ids"
)

// limit states
const (
	LimitStateULS = "ULS" // ultimate
	LimitStateSLS = "SLS" // serviceability
)

// CaseFactor weights one load case within a combination
type CaseFactor struct {
	Case   *LoadCase // the weighted case
	Factor float64   // scalar factor
}

// LoadCombination holds a linear weighting over load cases. It performs
// no numeric combination itself; that is solver work. Entry order is
// preserved.
type LoadCombination struct {
	Id         int          // unique identifier
	Name       string       // name of combination
	Factors    []CaseFactor // ordered case-factor pairs
	Situation  string       // design situation tag; e.g. "permanent"
	Check      string       // check mode; defaults to "ALL"
	LimitState string       // "ULS", "SLS" or empty
}

// NewLoadCombination creates a load combination. id == 0 requests an
// auto-assigned identifier; an empty check defaults to "ALL".
func NewLoadCombination(reg *ids.Registry, id int, name, situation, check, limitState string) *LoadCombination {
	if check == "" {
		check = "ALL"
	}
	return &LoadCombination{
		Id:         reg.Resolve(ids.KindLoadCombination, id),
		Name:       name,
		Situation:  situation,
		Check:      check,
		LimitState: limitState,
	}
}

// AddLoadCase sets the factor of a load case, replacing an existing entry
// for the same case
func (o *LoadCombination) AddLoadCase(lc *LoadCase, factor float64) {
	for i := range o.Factors {
		if o.Factors[i].Case == lc {
			o.Factors[i].Factor = factor
			return
		}
	}
	o.Factors = append(o.Factors, CaseFactor{Case: lc, Factor: factor})
}

// FactorOf returns the factor of a load case; 0 when absent
func (o *LoadCombination) FactorOf(lc *LoadCase) float64 {
	for _, cf := range o.Factors {
		if cf.Case == lc {
			return cf.Factor
		}
	}
	return 0
}

// FindCase resolves a serialized load-case reference against a list of
// cases: numeric keys match by id first; any key falls back to matching
// by name.
//  Note: returns nil if not found
func FindCase(cases []*LoadCase, key string) *LoadCase {
	if id, err := strconv.Atoi(key); err == nil {
		for _, lc := range cases {
			if lc.Id == id {
				return lc
			}
		}
	}
	for _, lc := range cases {
		if lc.Name == key {
			return lc
		}
	}
	return nil
}
