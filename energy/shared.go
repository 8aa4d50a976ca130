// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"sync"

	"github.com/cpmech/gosl/la"
)

// SharedEwald wraps an Ewald solver behind a read-write lock so that a
// concurrent driver can share it. The evaluation entry points acquire the
// lock in write mode because they refresh the cached arrays (expfactors,
// phases, rho).
//
// A trial-move cycle runs MoveParticlesCost and then, if the move is
// accepted, Update; between the two no other mutating call is permitted.
// This is a cooperation contract with the driver, not enforced here
type SharedEwald struct {
	mutex sync.RWMutex
	ewald *Ewald
}

// NewSharedEwald wraps ewald in a shared-access structure
func NewSharedEwald(ewald *Ewald) (o *SharedEwald) {
	o = new(SharedEwald)
	o.ewald = ewald
	return
}

// Cutoff returns the real-space cutoff radius
func (o *SharedEwald) Cutoff() float64 {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return o.ewald.rc
}

// SetRestriction sets the pair exclusion policy
func (o *SharedEwald) SetRestriction(restriction PairRestriction) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ewald.SetRestriction(restriction)
}

// SetAlpha sets the splitting parameter
func (o *SharedEwald) SetAlpha(alpha float64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ewald.SetAlpha(alpha)
}

// Energy returns the total electrostatic energy of s
func (o *SharedEwald) Energy(s ChargedSystem) float64 {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ewald.precompute(s.Cell())
	real := o.ewald.realSpaceEnergy(s)
	self := o.ewald.selfEnergy(s)
	kspace := o.ewald.kspaceEnergy(s)
	molecular := o.ewald.molcorrectEnergy(s)
	return real + self + kspace + molecular
}

// Forces returns the electrostatic forces (natoms,3) on the particles of s
func (o *SharedEwald) Forces(s ChargedSystem) [][]float64 {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ewald.precompute(s.Cell())
	forces := la.MatAlloc(s.Size(), 3)
	o.ewald.realSpaceForces(s, forces)
	// no self force
	o.ewald.kspaceForces(s, forces)
	o.ewald.molcorrectForces(s, forces)
	return forces
}

// Virial returns the electrostatic virial tensor (3,3) of s
func (o *SharedEwald) Virial(s ChargedSystem) [][]float64 {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ewald.precompute(s.Cell())
	virial := o.ewald.realSpaceVirial(s)
	// no self virial
	kspace := o.ewald.kspaceVirial(s)
	molecular := o.ewald.molcorrectVirial(s)
	for m := 0; m < 3; m++ {
		for n := 0; n < 3; n++ {
			virial[m][n] += kspace[m][n] + molecular[m][n]
		}
	}
	return virial
}

// MoveParticlesCost returns the energy change for moving the particles in
// idxes to newpos. The self term cancels because the total squared charge is
// invariant under a position-only move
func (o *SharedEwald) MoveParticlesCost(s ChargedSystem, idxes []int, newpos [][]float64) float64 {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ewald.precompute(s.Cell())
	real := o.ewald.realSpaceMoveCost(s, idxes, newpos)
	// no self cost
	kspace := o.ewald.kspaceMoveCost(s, idxes, newpos)
	molecular := o.ewald.molcorrectMoveCost(s, idxes, newpos)
	return real + kspace + molecular
}

// Update applies the pending density change of the last MoveParticlesCost
func (o *SharedEwald) Update() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	e := o.ewald
	for ikx := 0; ikx < e.kmax; ikx++ {
		for iky := 0; iky < e.kmax; iky++ {
			for ikz := 0; ikz < e.kmax; ikz++ {
				e.rho[ikx][iky][ikz] += e.deltaRho[ikx][iky][ikz]
			}
		}
	}
}
