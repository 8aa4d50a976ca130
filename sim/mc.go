// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/antoinewdg/lumol/consts"
	"github.com/antoinewdg/lumol/energy"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// Metropolis performs Monte Carlo translation moves of single particles. Each
// step picks one particle, proposes a random displacement, and accepts it
// with probability min(1, exp(-ΔE/(kB·T))). The energy change comes from the
// incremental trial-move support of the potential, so the accepted total is
// tracked without full re-evaluations
type Metropolis struct {

	// input
	Pot     energy.GlobalPotential // potential for the initial full evaluation
	Cache   energy.GlobalCache     // incremental trial-move support of the same potential
	T       float64                // temperature
	MaxDisp float64                // maximum displacement along each axis

	// results
	Etotal    float64 // running total energy
	NTried    int     // number of trial moves
	NAccepted int     // number of accepted moves

	// scratch
	newpos [][]float64
	idxes  []int
}

// NewMetropolis returns a Metropolis propagator using the given potential.
// The potential must provide the incremental trial-move protocol
func NewMetropolis(pot energy.GlobalPotential, T, maxdisp float64, seed int) (o *Metropolis) {
	cache, ok := pot.(energy.GlobalCache)
	if !ok {
		chk.Panic("Metropolis requires a potential with trial-move support")
	}
	if T <= 0 {
		chk.Panic("Metropolis temperature must be positive. T=%g is invalid", T)
	}
	o = new(Metropolis)
	o.Pot = pot
	o.Cache = cache
	o.T = T
	o.MaxDisp = maxdisp
	o.newpos = [][]float64{make([]float64, 3)}
	o.idxes = make([]int, 1)
	rnd.Init(seed)
	return
}

// Setup computes the initial energy
func (o *Metropolis) Setup(s *sys.System) {
	o.Etotal = o.Pot.Energy(s)
}

// Propagate performs one trial move
func (o *Metropolis) Propagate(s *sys.System, step int) {
	i := rnd.Int(0, s.Size()-1)
	for d := 0; d < 3; d++ {
		o.newpos[0][d] = s.Particle(i).Pos[d] + rnd.Float64(-o.MaxDisp, o.MaxDisp)
	}
	o.idxes[0] = i
	cost := o.Cache.MoveParticlesCost(s, o.idxes, o.newpos)
	o.NTried++

	beta := 1.0 / (consts.KBoltzmann * o.T)
	if cost < 0 || rnd.Float64(0, 1) < math.Exp(-beta*cost) {
		o.Cache.Update()
		copy(s.Particle(i).Pos, o.newpos[0])
		o.Etotal += cost
		o.NAccepted++
	}
}
