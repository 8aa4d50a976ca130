// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package consts holds physical constants expressed in the internal unit system
// (Angstrom, femtosecond, unified atomic mass, Kelvin, elementary charge)
package consts

const (

	// KBoltzmann is the Boltzmann constant
	KBoltzmann = 8.31446284161522e-7

	// BohrRadius is the Bohr radius
	BohrRadius = 0.52917720859

	// Avogadro is the Avogadro number
	Avogadro = 6.02214179e23

	// ELCC is 4·π·ε0, the electric conversion factor for Coulomb energies
	ELCC = 7.197589831304046
)
