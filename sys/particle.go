// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

// atomicMasses holds masses for common particle names; unknown names get 1
var atomicMasses = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"S":  32.06,
	"Cl": 35.453,
	"K":  39.098,
	"Ar": 39.948,
}

// Particle is a point particle with a name, an electric charge, a mass and a position
type Particle struct {
	Name   string    // particle name; e.g. "Na"
	Charge float64   // electric charge
	Mass   float64   // mass
	Pos    []float64 // (3) position
}

// NewParticle returns a new particle at the origin, with zero charge and the
// mass tabulated for its name
func NewParticle(name string) (o *Particle) {
	o = new(Particle)
	o.Name = name
	o.Mass = 1.0
	if m, ok := atomicMasses[name]; ok {
		o.Mass = m
	}
	o.Pos = make([]float64, 3)
	return
}
