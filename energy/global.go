// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package energy implements global electrostatic solvers for periodic systems
package energy

import (
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// ChargedSystem is the view of a particle system required by global
// electrostatic solvers
type ChargedSystem interface {
	Size() int                       // number of particles
	Charge(i int) float64            // charge of particle i
	Position(i int) []float64        // position of particle i
	Cell() *sys.UnitCell             // unit cell
	Distance(i, j int) float64       // minimum image distance
	NearestImage(i, j int) []float64 // minimum image vector from j to i
	BondDistance(i, j int) int       // bond graph distance; -1 across molecules
}

// GlobalPotential is a potential acting on the whole system at once
type GlobalPotential interface {
	Cutoff() float64                       // real-space cutoff radius
	Energy(s ChargedSystem) float64        // total energy
	Forces(s ChargedSystem) [][]float64    // (natoms,3) forces
	Virial(s ChargedSystem) [][]float64    // (3,3) virial tensor
}

// CoulombicPotential is a global potential for electrostatic interactions
type CoulombicPotential interface {
	GlobalPotential
	SetRestriction(r PairRestriction) // set the pair exclusion policy
}

// GlobalCache is a global potential able to compute the cost of moving a few
// particles without a full re-evaluation. A call to MoveParticlesCost must be
// followed by Update if the move is accepted, before any other mutating call
type GlobalCache interface {
	MoveParticlesCost(s ChargedSystem, idxes []int, newpos [][]float64) float64
	Update()
}

// New returns a new coulombic solver
func New(method string, prms fun.Prms) (CoulombicPotential, error) {
	allocator, ok := allocators[method]
	if !ok {
		return nil, chk.Err("coulombic solver %q is not available", method)
	}
	return allocator(prms)
}

// allocators holds all available coulombic solvers; method name => allocator
var allocators = map[string]func(prms fun.Prms) (CoulombicPotential, error){}
