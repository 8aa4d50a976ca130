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

// realSpaceEnergyPair returns the real-space energy of one pair at distance r
// with charges qi and qj, given the restriction decision for this pair
func (o *Ewald) realSpaceEnergyPair(info RestrictionInfo, qi, qj, r float64) float64 {
	if r > o.rc || info.Excluded {
		return 0.0
	}
	if info.Scaling != 1.0 {
		chk.Panic("scaling restriction schemes are not implemented for Ewald summation")
	}
	return qi * qj * math.Erfc(o.alpha*r) / r / consts.ELCC
}

// realSpaceForcePair returns the real-space force on particle i for one pair
// separated by the minimum image vector rij
func (o *Ewald) realSpaceForcePair(info RestrictionInfo, qi, qj float64, rij []float64) []float64 {
	r := la.VecNorm(rij)
	if r > o.rc || info.Excluded {
		return []float64{0, 0, 0}
	}
	if info.Scaling != 1.0 {
		chk.Panic("scaling restriction schemes are not implemented for Ewald summation")
	}
	factor := math.Erfc(o.alpha*r) / r
	factor += o.alpha * (2.0 / math.SqrtPi) * math.Exp(-o.alpha*o.alpha*r*r)
	factor *= qi * qj / (r * r) / consts.ELCC
	return []float64{factor * rij[0], factor * rij[1], factor * rij[2]}
}

// realSpaceEnergy returns the real-space contribution to the energy
func (o *Ewald) realSpaceEnergy(s ChargedSystem) float64 {
	natoms := s.Size()
	energy := 0.0
	for i := 0; i < natoms; i++ {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := i + 1; j < natoms; j++ {
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			info := o.restriction.Information(s.BondDistance(i, j))
			energy += o.realSpaceEnergyPair(info, qi, qj, s.Distance(i, j))
		}
	}
	return energy
}

// realSpaceForces adds the real-space contribution to forces (natoms,3)
func (o *Ewald) realSpaceForces(s ChargedSystem, forces [][]float64) {
	natoms := s.Size()
	chk.IntAssert(len(forces), natoms)
	for i := 0; i < natoms; i++ {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := i + 1; j < natoms; j++ {
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			info := o.restriction.Information(s.BondDistance(i, j))
			force := o.realSpaceForcePair(info, qi, qj, s.NearestImage(i, j))
			for d := 0; d < 3; d++ {
				forces[i][d] += force[d]
				forces[j][d] -= force[d]
			}
		}
	}
}

// realSpaceVirial returns the real-space contribution to the virial
func (o *Ewald) realSpaceVirial(s ChargedSystem) [][]float64 {
	natoms := s.Size()
	virial := la.MatAlloc(3, 3)
	for i := 0; i < natoms; i++ {
		qi := s.Charge(i)
		if qi == 0.0 {
			continue
		}
		for j := i + 1; j < natoms; j++ {
			qj := s.Charge(j)
			if qj == 0.0 {
				continue
			}
			info := o.restriction.Information(s.BondDistance(i, j))
			rij := s.NearestImage(i, j)
			force := o.realSpaceForcePair(info, qi, qj, rij)
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					virial[m][n] -= force[m] * rij[n]
				}
			}
		}
	}
	return virial
}

// realSpaceMoveCost returns the real-space energy change for moving the
// particles in idxes to newpos
func (o *Ewald) realSpaceMoveCost(s ChargedSystem, idxes []int, newpos [][]float64) float64 {
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
			rOld := s.Distance(i, j)
			rNew := s.Cell().Distance(newpos[idx], s.Position(j))
			info := o.restriction.Information(s.BondDistance(i, j))
			eOld += o.realSpaceEnergyPair(info, qi, qj, rOld)
			eNew += o.realSpaceEnergyPair(info, qi, qj, rNew)
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
			rOld := s.Distance(i, j)
			rNew := s.Cell().Distance(newpos[idx], newpos[jdx])
			info := o.restriction.Information(s.BondDistance(i, j))
			eOld += o.realSpaceEnergyPair(info, qi, qj, rOld)
			eNew += o.realSpaceEnergyPair(info, qi, qj, rNew)
		}
	}

	return eNew - eOld
}
