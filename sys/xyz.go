// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// covalentRadii holds covalent radii for the bond guesser; unknown names get 0.5
var covalentRadii = map[string]float64{
	"H":  0.37,
	"C":  0.77,
	"N":  0.75,
	"O":  0.73,
	"F":  0.71,
	"Na": 1.54,
	"S":  1.02,
	"Cl": 0.99,
	"K":  1.96,
}

// SystemFromXyz builds a system from an extended XYZ snapshot. The first line
// holds the number of particles and the second line holds the cell, either as
//
//	cell: L            (cubic)
//	cell: Lx Ly Lz     (orthorhombic)
//
// optionally prefixed by the word "bonds" to guess bonds from covalent radii.
// Charges are not part of the XYZ format and must be set by the caller
func SystemFromXyz(text string) (o *System) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		chk.Panic("XYZ snapshot must have at least two lines")
	}
	natoms := io.Atoi(strings.TrimSpace(lines[0]))
	if len(lines) != natoms+2 {
		chk.Panic("XYZ snapshot announces %d particles but has %d data lines", natoms, len(lines)-2)
	}

	// comment line: [bonds] cell: L [Ly Lz]
	guess := false
	fields := strings.Fields(lines[1])
	if len(fields) > 0 && fields[0] == "bonds" {
		guess = true
		fields = fields[1:]
	}
	if len(fields) < 2 || fields[0] != "cell:" {
		chk.Panic("cannot parse cell from XYZ comment line %q", lines[1])
	}
	var cell *UnitCell
	switch len(fields) {
	case 2:
		cell = NewCubic(io.Atof(fields[1]))
	case 4:
		cell = NewOrthorhombic(io.Atof(fields[1]), io.Atof(fields[2]), io.Atof(fields[3]))
	default:
		chk.Panic("cell in XYZ comment line must have 1 or 3 lengths, got %q", lines[1])
	}

	o = NewSystem(cell)
	for _, line := range lines[2:] {
		f := strings.Fields(line)
		if len(f) != 4 {
			chk.Panic("cannot parse XYZ particle line %q", line)
		}
		p := NewParticle(f[0])
		p.Pos[0] = io.Atof(f[1])
		p.Pos[1] = io.Atof(f[2])
		p.Pos[2] = io.Atof(f[3])
		o.AddParticle(p)
	}

	if guess {
		o.GuessBonds()
	}
	return
}

// GuessBonds creates bonds between particles closer than 1.2 times the sum of
// their covalent radii
func (o *System) GuessBonds() {
	radius := func(name string) float64 {
		if r, ok := covalentRadii[name]; ok {
			return r
		}
		return 0.5
	}
	for i := 0; i < o.Size(); i++ {
		ri := radius(o.parts[i].Name)
		for j := i + 1; j < o.Size(); j++ {
			rj := radius(o.parts[j].Name)
			if o.Distance(i, j) < 1.2*(ri+rj) {
				o.AddBond(i, j)
			}
		}
	}
}
