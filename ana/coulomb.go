// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form reference solutions for electrostatics tests
package ana

import (
	"math"

	"github.com/antoinewdg/lumol/consts"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// RealPair returns the screened real-space energy of an isolated pair
func RealPair(qi, qj, alpha, r float64) float64 {
	return qi * qj * math.Erfc(alpha*r) / (r * consts.ELCC)
}

// MolcorrectPair returns the molecular correction energy of an isolated pair
func MolcorrectPair(qi, qj, alpha, r float64) float64 {
	return -qi * qj * math.Erf(alpha*r) / (r * consts.ELCC)
}

// SelfEnergy returns the Gaussian self-interaction term for the given charges
func SelfEnergy(charges []float64, alpha float64) float64 {
	q2 := 0.0
	for _, q := range charges {
		q2 += q * q
	}
	return -alpha / math.Sqrt(math.Pi) * q2 / consts.ELCC
}

// DirectSum returns the bare Coulomb energy of a periodic system computed by
// brute force over (2·nshells+1)³ periodic images. The sum is only
// conditionally convergent; for charge-neutral systems a few shells give a
// useful cross-check of an Ewald result
func DirectSum(s *sys.System, nshells int) float64 {
	if s.Cell().Shape() != sys.Orthorhombic {
		chk.Panic("direct summation requires an orthorhombic cell")
	}
	lengths := s.Cell().Lengths()
	natoms := s.Size()
	var contributions []float64
	for nx := -nshells; nx <= nshells; nx++ {
		for ny := -nshells; ny <= nshells; ny++ {
			for nz := -nshells; nz <= nshells; nz++ {
				sx := float64(nx) * lengths[0]
				sy := float64(ny) * lengths[1]
				sz := float64(nz) * lengths[2]
				home := nx == 0 && ny == 0 && nz == 0
				e := 0.0
				for i := 0; i < natoms; i++ {
					for j := 0; j < natoms; j++ {
						if home && i == j {
							continue
						}
						dx := s.Position(j)[0] - s.Position(i)[0] + sx
						dy := s.Position(j)[1] - s.Position(i)[1] + sy
						dz := s.Position(j)[2] - s.Position(i)[2] + sz
						r := math.Sqrt(dx*dx + dy*dy + dz*dz)
						e += s.Charge(i) * s.Charge(j) / r
					}
				}
				contributions = append(contributions, e/2.0)
			}
		}
	}
	return floats.Sum(contributions) / consts.ELCC
}
