// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements propagators and the simulation driver
package sim

import (
	"github.com/antoinewdg/lumol/out"
	"github.com/antoinewdg/lumol/sys"
	"github.com/sirupsen/logrus"
)

// Propagator advances a system by one step
type Propagator interface {
	Setup(s *sys.System)              // prepare internal state before the first step
	Propagate(s *sys.System, step int) // advance the system by one step
}

// recording couples a recorder with its output frequency
type recording struct {
	rec   out.Recorder
	every int
}

// Simulation drives a system with a propagator and a set of recorders
type Simulation struct {
	Sys        *sys.System // simulated system
	Prop       Propagator  // propagator advancing the system
	recordings []recording // recorders with their frequencies
}

// NewSimulation returns a new simulation
func NewSimulation(system *sys.System, prop Propagator) (o *Simulation) {
	o = new(Simulation)
	o.Sys = system
	o.Prop = prop
	return
}

// AddRecorder registers a recorder called every 'every' steps
func (o *Simulation) AddRecorder(rec out.Recorder, every int) {
	if every < 1 {
		every = 1
	}
	o.recordings = append(o.recordings, recording{rec, every})
}

// Run advances the simulation by nsteps
func (o *Simulation) Run(nsteps int) {
	logrus.Infof("Running simulation for %d steps", nsteps)
	o.Prop.Setup(o.Sys)
	for _, r := range o.recordings {
		r.rec.Record(o.Sys, 0)
	}
	for step := 1; step <= nsteps; step++ {
		o.Prop.Propagate(o.Sys, step)
		for _, r := range o.recordings {
			if step%r.every == 0 {
				r.rec.Record(o.Sys, step)
			}
		}
	}
	logrus.Info("Simulation done")
}
