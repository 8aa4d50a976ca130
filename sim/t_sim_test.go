// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"strings"
	"testing"

	"github.com/antoinewdg/lumol/energy"
	"github.com/antoinewdg/lumol/out"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func countLines(text string) int {
	return len(strings.Split(strings.TrimSpace(text), "\n"))
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func naclPair() *sys.System {
	system := sys.SystemFromXyz(`2
	cell: 20.0
	Cl 0.0 0.0 0.0
	Na 1.5 0.0 0.0
	`)
	system.Particle(0).Charge = -1.0
	system.Particle(1).Charge = 1.0
	return system
}

func Test_mc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mc01. Metropolis bookkeeping")

	system := naclPair()
	ewald := energy.NewSharedEwald(energy.NewEwald(8.0, 10))

	mc := NewMetropolis(ewald, 300, 0.3, 1234)
	simulation := NewSimulation(system, mc)
	simulation.Run(100)

	chk.IntAssert(mc.NTried, 100)
	if mc.NAccepted < 0 || mc.NAccepted > mc.NTried {
		tst.Errorf("inconsistent acceptance counters: %d/%d\n", mc.NAccepted, mc.NTried)
		return
	}

	// the incrementally tracked energy must match a full re-evaluation
	check := energy.NewSharedEwald(energy.NewEwald(8.0, 10))
	chk.Scalar(tst, "tracked energy", 1e-10, mc.Etotal, check.Energy(system))
}

func Test_md01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("md01. velocity-Verlet conservation")

	system := naclPair()
	ewald := energy.NewSharedEwald(energy.NewEwald(8.0, 10))

	md := NewVelocityVerlet(ewald, 0.01)
	simulation := NewSimulation(system, md)

	e0 := ewald.Energy(system)
	simulation.Run(10)
	etot := ewald.Energy(system) + md.KineticEnergy(system)
	chk.Scalar(tst, "total energy", 1e-8, etot, e0)

	// momentum stays zero for opposite forces and zero initial velocities
	p := make([]float64, 3)
	for i := 0; i < system.Size(); i++ {
		for d := 0; d < 3; d++ {
			p[d] += system.Particle(i).Mass * md.vel[i][d]
		}
	}
	if la.VecNorm(p) > 1e-12 {
		tst.Errorf("momentum is not conserved. |p|=%g\n", la.VecNorm(p))
		return
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. recorders")

	system := naclPair()
	ewald := energy.NewSharedEwald(energy.NewEwald(8.0, 10))

	erec := out.NewEnergyRecorder(ewald)
	xrec := out.NewXyzRecorder()

	mc := NewMetropolis(ewald, 300, 0.3, 1234)
	simulation := NewSimulation(system, mc)
	simulation.AddRecorder(erec, 5)
	simulation.AddRecorder(xrec, 10)
	simulation.Run(20)

	// header + step 0 + steps 5, 10, 15, 20
	chk.IntAssert(countLines(erec.String()), 6)

	// 3 frames of 4 lines each: steps 0, 10, 20
	chk.IntAssert(countLines(xrec.String()), 12)
}
