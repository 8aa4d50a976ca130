// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import "github.com/cpmech/gosl/chk"

// PairRestriction tells which pairs of particles are excluded from direct
// pairwise electrostatics
type PairRestriction int

const (

	// None never excludes a pair
	None PairRestriction = iota

	// InterMolecular excludes all pairs within the same molecule
	InterMolecular
)

// RestrictionInfo holds the decision of a restriction for one pair
type RestrictionInfo struct {
	Excluded bool    // the pair does not interact directly
	Scaling  float64 // energy scaling for non-excluded pairs; always 1 here
}

// Information returns the restriction decision for a pair with the given bond
// graph distance, where a negative distance means different molecules
func (o PairRestriction) Information(bondDistance int) RestrictionInfo {
	switch o {
	case None:
		return RestrictionInfo{Excluded: false, Scaling: 1.0}
	case InterMolecular:
		return RestrictionInfo{Excluded: bondDistance >= 0, Scaling: 1.0}
	}
	chk.Panic("unknown pair restriction %d", o)
	return RestrictionInfo{}
}

// String returns the name of this restriction
func (o PairRestriction) String() string {
	switch o {
	case None:
		return "none"
	case InterMolecular:
		return "intermolecular"
	}
	return "unknown"
}

// RestrictionByName returns the restriction corresponding to name
func RestrictionByName(name string) (PairRestriction, error) {
	switch name {
	case "none", "":
		return None, nil
	case "intermolecular":
		return InterMolecular, nil
	}
	return None, chk.Err("restriction %q is not available", name)
}
