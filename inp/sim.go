// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input deck read from a (.yml) YAML file
package inp

import (
	"github.com/antoinewdg/lumol/energy"
	"github.com/antoinewdg/lumol/out"
	"github.com/antoinewdg/lumol/sim"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// ParticleData holds the input data for one particle
type ParticleData struct {
	Name   string    `yaml:"name"`   // particle name; e.g. "Na"
	Charge float64   `yaml:"charge"` // electric charge
	Pos    []float64 `yaml:"pos"`    // (3) position
}

// SysData holds the input data for the system
type SysData struct {
	Cell       []float64      `yaml:"cell"`       // one length (cubic) or three (orthorhombic)
	Particles  []ParticleData `yaml:"particles"`  // all particles
	Bonds      [][]int        `yaml:"bonds"`      // explicit bonds
	GuessBonds bool           `yaml:"guessbonds"` // guess bonds from covalent radii
}

// CoulombData holds the input data for the electrostatic solver
type CoulombData struct {
	Method      string  `yaml:"method"`      // solver name; e.g. "ewald"
	Cutoff      float64 `yaml:"cutoff"`      // real-space cutoff radius
	Kmax        int     `yaml:"kmax"`        // number of k-points along each axis
	Alpha       float64 `yaml:"alpha"`       // splitting parameter; 0 means default
	Restriction string  `yaml:"restriction"` // pair exclusion policy name
}

// SimData holds the input data for the simulation driver
type SimData struct {
	Type        string  `yaml:"type"`        // propagator type: "mc" or "md"
	Nsteps      int     `yaml:"nsteps"`      // number of steps
	Temperature float64 `yaml:"temperature"` // temperature for "mc"
	MaxDisp     float64 `yaml:"maxdisp"`     // maximum displacement for "mc"
	Timestep    float64 `yaml:"timestep"`    // timestep for "md"
	Seed        int     `yaml:"seed"`        // random number seed for "mc"
	Output      string  `yaml:"output"`      // file key for recorders; empty means no output
	Every       int     `yaml:"every"`       // recording frequency
}

// Deck holds all data read from an input deck
type Deck struct {
	Desc       string      `yaml:"desc"`       // description of the run
	System     SysData     `yaml:"system"`     // system data
	Coulomb    CoulombData `yaml:"coulomb"`    // electrostatic solver data
	Simulation SimData     `yaml:"simulation"` // simulation data
}

// Read reads an input deck from a YAML file
func Read(path string) (o *Deck, err error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read input deck %q:\n%v", path, err)
	}
	o = new(Deck)
	if err = yaml.Unmarshal(buf, o); err != nil {
		return nil, chk.Err("cannot parse input deck %q:\n%v", path, err)
	}
	if len(o.System.Particles) == 0 {
		return nil, chk.Err("input deck %q has no particles", path)
	}
	if len(o.System.Cell) != 1 && len(o.System.Cell) != 3 {
		return nil, chk.Err("cell in input deck %q must have 1 or 3 lengths", path)
	}
	return
}

// AllocSystem builds the system described by this deck
func (o *Deck) AllocSystem() (*sys.System, error) {
	var cell *sys.UnitCell
	if len(o.System.Cell) == 1 {
		cell = sys.NewCubic(o.System.Cell[0])
	} else {
		cell = sys.NewOrthorhombic(o.System.Cell[0], o.System.Cell[1], o.System.Cell[2])
	}
	system := sys.NewSystem(cell)
	for _, data := range o.System.Particles {
		if len(data.Pos) != 3 {
			return nil, chk.Err("particle %q must have a 3-component position", data.Name)
		}
		p := sys.NewParticle(data.Name)
		p.Charge = data.Charge
		copy(p.Pos, data.Pos)
		system.AddParticle(p)
	}
	for _, bond := range o.System.Bonds {
		if len(bond) != 2 {
			return nil, chk.Err("bonds must have two particle indices, got %v", bond)
		}
		system.AddBond(bond[0], bond[1])
	}
	if o.System.GuessBonds {
		system.GuessBonds()
	}
	return system, nil
}

// AllocPotential builds the electrostatic solver described by this deck
func (o *Deck) AllocPotential() (energy.CoulombicPotential, error) {
	prms := fun.Prms{
		&fun.Prm{N: "cutoff", V: o.Coulomb.Cutoff},
		&fun.Prm{N: "kmax", V: float64(o.Coulomb.Kmax)},
	}
	if o.Coulomb.Alpha != 0 {
		prms = append(prms, &fun.Prm{N: "alpha", V: o.Coulomb.Alpha})
	}
	pot, err := energy.New(o.Coulomb.Method, prms)
	if err != nil {
		return nil, err
	}
	restriction, err := energy.RestrictionByName(o.Coulomb.Restriction)
	if err != nil {
		return nil, err
	}
	pot.SetRestriction(restriction)
	return pot, nil
}

// AllocSimulation builds the simulation driver described by this deck,
// including its recorders
func (o *Deck) AllocSimulation(system *sys.System, pot energy.CoulombicPotential) (*sim.Simulation, []out.Recorder, error) {
	var prop sim.Propagator
	switch o.Simulation.Type {
	case "mc":
		prop = sim.NewMetropolis(pot, o.Simulation.Temperature, o.Simulation.MaxDisp, o.Simulation.Seed)
	case "md":
		prop = sim.NewVelocityVerlet(pot, o.Simulation.Timestep)
	default:
		return nil, nil, chk.Err("simulation type %q is not available", o.Simulation.Type)
	}
	simulation := sim.NewSimulation(system, prop)
	var recorders []out.Recorder
	if o.Simulation.Output != "" {
		erec := out.NewEnergyRecorder(pot)
		xrec := out.NewXyzRecorder()
		simulation.AddRecorder(erec, o.Simulation.Every)
		simulation.AddRecorder(xrec, o.Simulation.Every)
		recorders = []out.Recorder{erec, xrec}
	}
	return simulation, recorders, nil
}
