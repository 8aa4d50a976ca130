// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements recorders saving simulation results for post-processing
package out

import (
	"bytes"

	"github.com/antoinewdg/lumol/energy"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/io"
)

// Recorder observes a system during a simulation
type Recorder interface {
	Record(s *sys.System, step int) // record a snapshot at the given step
	Save(dirout, fnkey string)      // save all records to dirout/fnkey
}

// EnergyRecorder collects a table with the step number and the total energy
type EnergyRecorder struct {
	Pot energy.GlobalPotential // potential used to compute energies
	buf bytes.Buffer           // collected rows
}

// NewEnergyRecorder returns a new energy recorder
func NewEnergyRecorder(pot energy.GlobalPotential) (o *EnergyRecorder) {
	o = new(EnergyRecorder)
	o.Pot = pot
	io.Ff(&o.buf, "%8s%23s\n", "step", "energy")
	return
}

// Record appends one row with the energy of s
func (o *EnergyRecorder) Record(s *sys.System, step int) {
	io.Ff(&o.buf, "%8d%23.15e\n", step, o.Pot.Energy(s))
}

// Save writes the energy table to dirout/fnkey.res
func (o *EnergyRecorder) Save(dirout, fnkey string) {
	io.WriteFileSD(dirout, fnkey+".res", o.buf.String())
}

// String returns the collected table
func (o *EnergyRecorder) String() string {
	return o.buf.String()
}

// XyzRecorder collects trajectory frames in the XYZ format
type XyzRecorder struct {
	buf bytes.Buffer // collected frames
}

// NewXyzRecorder returns a new trajectory recorder
func NewXyzRecorder() (o *XyzRecorder) {
	return new(XyzRecorder)
}

// Record appends one frame with the positions of s
func (o *XyzRecorder) Record(s *sys.System, step int) {
	lengths := s.Cell().Lengths()
	io.Ff(&o.buf, "%d\n", s.Size())
	io.Ff(&o.buf, "step %d cell: %g %g %g\n", step, lengths[0], lengths[1], lengths[2])
	for i := 0; i < s.Size(); i++ {
		p := s.Particle(i)
		io.Ff(&o.buf, "%s %21.13e %21.13e %21.13e\n", p.Name, p.Pos[0], p.Pos[1], p.Pos[2])
	}
}

// Save writes the trajectory to dirout/fnkey.xyz
func (o *XyzRecorder) Save(dirout, fnkey string) {
	io.WriteFileSD(dirout, fnkey+".xyz", o.buf.String())
}

// String returns the collected frames
func (o *XyzRecorder) String() string {
	return o.buf.String()
}
