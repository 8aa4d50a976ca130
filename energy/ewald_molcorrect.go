// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"math"

	"github.com/antoinewdg/lumol/consts"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// The k-space sum runs over an infinite periodic charge distribution, so it
// includes direct interactions between excluded pairs in the same molecule.
// The molecular correction subtracts them again.

// molcorrectEnergyPair returns the correction energy of one excluded pair at
// distance r. Calling it on a non-excluded pair or at r ≥ rc is fatal
func (o *Ewald) molcorrectEnergyPair(info RestrictionInfo, qi, qj, r float64) float64 {
	if !info.Excluded {
		chk.Panic("cannot compute molecular correction for a non-excluded pair")
	}
	if info.Scaling != 1.0 {
		chk.Panic("scaling restriction schemes are not implemented for Ewald summation")
	}
	if r >= o.rc {
		chk.Panic("particles in the same molecule are separated by more than the Ewald cutoff radius. r=%g rc=%g", r, o.rc)
	}
	return -qi * qj / consts.ELCC * math.Erf(o.alpha*r) / r
}

// molcorrectForcePair returns the correction force on particle i for one
// excluded pair separated by the minimum image vector rij
func (o *Ewald) molcorrectForcePair(info RestrictionInfo, qi, qj float64, rij []float64) []float64 {
	if !info.Excluded {
		chk.Panic("cannot compute molecular correction for a non-excluded pair")
	}
	if info.Scaling != 1.0 {
		chk.Panic("scaling restriction schemes are not implemented for Ewald summation")
	}
	r := la.VecNorm(rij)
	if r >= o.rc {
		chk.Panic("particles in the same molecule are separated by more than the Ewald cutoff radius. r=%g rc=%g", r, o.rc)
	}
	qiqj := qi * qj / (consts.ELCC * r * r)
	factor := qiqj * (2.0*o.alpha/math.Sqrt(math.Pi)*math.Exp(-o.alpha*o.alpha*r*r) - math.Erf(o.alpha*r)/r)
	return []float64{factor * rij[0], factor * rij[1], factor * rij[2]}
}

// molcorrectEnergy returns the molecular correction contribution to the energy
func (o *Ewald) molcorrectEnergy(s ChargedSystem) float64 {
	natoms := s.Size()
	energy := 0.0
	for i := 0; i < natoms; i++ {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := i + 1; j < natoms; j++ {
			// only excluded pairs
			info := o.restriction.Information(s.BondDistance(i, j))
			if !info.Excluded {
				continue
			}
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			energy += o.molcorrectEnergyPair(info, qi, qj, s.Distance(i, j))
		}
	}
	return energy
}

// molcorrectForces adds the molecular correction contribution to forces (natoms,3)
func (o *Ewald) molcorrectForces(s ChargedSystem, forces [][]float64) {
	natoms := s.Size()
	chk.IntAssert(len(forces), natoms)
	for i := 0; i < natoms; i++ {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := i + 1; j < natoms; j++ {
			info := o.restriction.Information(s.BondDistance(i, j))
			if !info.Excluded {
				continue
			}
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			force := o.molcorrectForcePair(info, qi, qj, s.NearestImage(i, j))
			for d := 0; d < 3; d++ {
				forces[i][d] += force[d]
				forces[j][d] -= force[d]
			}
		}
	}
}

// molcorrectVirial returns the molecular correction contribution to the virial
func (o *Ewald) molcorrectVirial(s ChargedSystem) [][]float64 {
	natoms := s.Size()
	virial := la.MatAlloc(3, 3)
	for i := 0; i < natoms; i++ {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := i + 1; j < natoms; j++ {
			info := o.restriction.Information(s.BondDistance(i, j))
			if !info.Excluded {
				continue
			}
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			rij := s.NearestImage(i, j)
			force := o.molcorrectForcePair(info, qi, qj, rij)
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					virial[m][n] -= force[m] * rij[n]
				}
			}
		}
	}
	return virial
}

// molcorrectMoveCost returns the molecular correction energy change for
// moving the particles in idxes to newpos
func (o *Ewald) molcorrectMoveCost(s ChargedSystem, idxes []int, newpos [][]float64) float64 {
	moved := make(map[int]bool)
	for _, i := range idxes {
		moved[i] = true
	}
	eOld, eNew := 0.0, 0.0

	// interactions between a moved particle and a particle not moved
	for idx, i := range idxes {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := 0; j < s.Size(); j++ {
			if moved[j] {
				continue
			}
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			info := o.restriction.Information(s.BondDistance(i, j))
			if !info.Excluded {
				continue
			}
			rOld := s.Distance(i, j)
			rNew := s.Cell().Distance(newpos[idx], s.Position(j))
			eOld += o.molcorrectEnergyPair(info, qi, qj, rOld)
			eNew += o.molcorrectEnergyPair(info, qi, qj, rNew)
		}
	}

	// interactions between two moved particles
	for idx, i := range idxes {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for jdx := idx + 1; jdx < len(idxes); jdx++ {
			j := idxes[jdx]
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			info := o.restriction.Information(s.BondDistance(i, j))
			if !info.Excluded {
				continue
			}
			rOld := s.Distance(i, j)
			rNew := s.Cell().Distance(newpos[idx], newpos[jdx])
			eOld += o.molcorrectEnergyPair(info, qi, qj, rOld)
			eNew += o.molcorrectEnergyPair(info, qi, qj, rNew)
		}
	}

	return eNew - eOld
}
