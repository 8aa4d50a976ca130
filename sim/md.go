// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/antoinewdg/lumol/energy"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// VelocityVerlet integrates the equations of motion with a fixed timestep
type VelocityVerlet struct {

	// input
	Pot energy.GlobalPotential // potential providing the forces
	Dt  float64                // timestep

	// scratch
	vel    [][]float64 // (natoms,3) velocities
	forces [][]float64 // (natoms,3) forces at the current positions
}

// NewVelocityVerlet returns a velocity-Verlet propagator
func NewVelocityVerlet(pot energy.GlobalPotential, dt float64) (o *VelocityVerlet) {
	if dt <= 0 {
		chk.Panic("velocity-Verlet timestep must be positive. dt=%g is invalid", dt)
	}
	o = new(VelocityVerlet)
	o.Pot = pot
	o.Dt = dt
	return
}

// Setup allocates velocities and computes the initial forces
func (o *VelocityVerlet) Setup(s *sys.System) {
	o.vel = la.MatAlloc(s.Size(), 3)
	o.forces = o.Pot.Forces(s)
}

// Propagate advances the system by one timestep
func (o *VelocityVerlet) Propagate(s *sys.System, step int) {
	for i := 0; i < s.Size(); i++ {
		m := s.Particle(i).Mass
		for d := 0; d < 3; d++ {
			o.vel[i][d] += 0.5 * o.Dt * o.forces[i][d] / m
			s.Particle(i).Pos[d] += o.Dt * o.vel[i][d]
		}
	}
	o.forces = o.Pot.Forces(s)
	for i := 0; i < s.Size(); i++ {
		m := s.Particle(i).Mass
		for d := 0; d < 3; d++ {
			o.vel[i][d] += 0.5 * o.Dt * o.forces[i][d] / m
		}
	}
}

// KineticEnergy returns the kinetic energy of the current velocities
func (o *VelocityVerlet) KineticEnergy(s *sys.System) float64 {
	ke := 0.0
	for i := 0; i < s.Size(); i++ {
		m := s.Particle(i).Mass
		for d := 0; d < 3; d++ {
			ke += 0.5 * m * o.vel[i][d] * o.vel[i][d]
		}
	}
	return ke
}
