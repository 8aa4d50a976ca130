// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"math"

	"github.com/antoinewdg/lumol/consts"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
	"github.com/sirupsen/logrus"
)

// macheps is the gap between 1 and the next larger double, 2⁻⁵²
const macheps = 2.220446049250313e-16

// Ewald computes coulombic interactions in a periodic system by splitting the
// conditionally convergent lattice sum into an absolutely convergent sum in
// real space, screened by erfc, and an absolutely convergent sum in k-space,
// weighted by a Gaussian prefactor. See [FS2002] for the algorithm.
//
// Only the (ikx ≥ 0, iky ≥ 0, ikz ≥ 0) octant of k-space is stored; the
// reflection symmetry through the origin is folded into expfactors as a
// factor 2 per non-zero index.
//
//	[FS2002] Frenkel, D. & Smit, B. Understanding molecular simulation
//	         (Academic press, 2002)
type Ewald struct {
	alpha       float64           // splitting parameter between real space and k-space
	rc          float64           // cutoff radius in real space
	kmax        int               // number of points along each k-space axis
	kmax2       float64           // spherical cutoff in k-space
	restriction PairRestriction   // pair exclusion policy
	expfactors  [][][]float64     // (kmax,kmax,kmax) exp(-k²/(4·α²))/k² with symmetry folded in
	phases      [][][]complex128  // (kmax,natoms,3) Fourier phases, cached allocation
	rho         [][][]complex128  // (kmax,kmax,kmax) Fourier transform of the charge density
	deltaRho    [][][]complex128  // (kmax,kmax,kmax) pending change of rho for a trial move
	prevCell    *sys.UnitCell     // cell used at the last precompute
}

// add solver to factory
func init() {
	allocators["ewald"] = func(prms fun.Prms) (CoulombicPotential, error) {
		cutoff, kmax, alpha := 0.0, 0, 0.0
		for _, p := range prms {
			switch p.N {
			case "cutoff":
				cutoff = p.V
			case "kmax":
				kmax = int(p.V)
			case "alpha":
				alpha = p.V
			default:
				return nil, chk.Err("ewald: unknown parameter %q", p.N)
			}
		}
		if cutoff <= 0 || kmax <= 0 {
			return nil, chk.Err("ewald: 'cutoff' and 'kmax' parameters must be positive. cutoff=%g kmax=%d is invalid", cutoff, kmax)
		}
		ewald := NewEwald(cutoff, kmax)
		if alpha != 0 {
			ewald.SetAlpha(alpha)
		}
		return NewSharedEwald(ewald), nil
	}
}

// NewEwald returns an Ewald solver with the given cutoff radius in real space
// and kmax points along each axis of k-space. The splitting parameter alpha
// defaults to 3·π/(4·cutoff)
func NewEwald(cutoff float64, kmax int) (o *Ewald) {
	if cutoff <= 0 {
		chk.Panic("Ewald cutoff must be positive. rc=%g is invalid", cutoff)
	}
	if kmax < 1 {
		chk.Panic("Ewald kmax must be positive. kmax=%d is invalid", kmax)
	}
	o = new(Ewald)
	o.alpha = 3.0 * math.Pi / (4.0 * cutoff)
	o.rc = cutoff
	o.kmax = kmax
	o.restriction = None
	o.expfactors = utl.Deep3alloc(kmax, kmax, kmax)
	o.rho = deep3allocC(kmax, kmax, kmax)
	o.deltaRho = deep3allocC(kmax, kmax, kmax)
	return
}

// SetAlpha sets the splitting parameter
func (o *Ewald) SetAlpha(alpha float64) {
	if alpha <= 0 {
		chk.Panic("Ewald parameter alpha must be positive. alpha=%g is invalid", alpha)
	}
	o.alpha = alpha
}

// SetRestriction sets the pair exclusion policy
func (o *Ewald) SetRestriction(restriction PairRestriction) {
	o.restriction = restriction
}

// precompute rebuilds the k-space cutoff and the expfactors grid if the cell
// changed since the last call. Infinite and triclinic cells are fatal
func (o *Ewald) precompute(cell *sys.UnitCell) {
	if o.prevCell != nil && o.prevCell.Equal(cell) {
		return
	}
	switch cell.Shape() {
	case sys.Infinite:
		chk.Panic("cannot use Ewald sum with an infinite cell")
	case sys.Triclinic:
		chk.Panic("cannot (yet) use Ewald sum with a triclinic cell")
	}
	o.prevCell = cell.GetCopy()

	// spherical truncation 'radius' corresponding to kmax
	lengths := cell.Lengths()
	maxL := math.Max(math.Max(lengths[0], lengths[1]), lengths[2])
	minL := math.Min(math.Min(lengths[0], lengths[1]), lengths[2])
	kRc := float64(o.kmax) * 2.0 * math.Pi / maxL
	o.kmax2 = kRc * kRc

	if o.rc > minL/2.0 {
		logrus.Warn("The Ewald cutoff is too large for this unit cell, energy might be wrong")
	}

	b1, b2, b3 := cell.ReciprocalVectors()
	k := make([]float64, 3)
	for ikx := 0; ikx < o.kmax; ikx++ {
		for iky := 0; iky < o.kmax; iky++ {
			for ikz := 0; ikz < o.kmax; ikz++ {
				k2 := 0.0
				for d := 0; d < 3; d++ {
					k[d] = float64(ikx)*b1[d] + float64(iky)*b2[d] + float64(ikz)*b3[d]
					k2 += k[d] * k[d]
				}
				if k2 > o.kmax2 {
					o.expfactors[ikx][iky][ikz] = 0.0
					continue
				}
				f := math.Exp(-k2/(4.0*o.alpha*o.alpha)) / k2
				if ikx != 0 {
					f *= 2.0
				}
				if iky != 0 {
					f *= 2.0
				}
				if ikz != 0 {
					f *= 2.0
				}
				o.expfactors[ikx][iky][ikz] = f
			}
		}
	}
	o.expfactors[0][0][0] = 0.0
}

// selfEnergy returns the interaction of each charge with its own screening
// cloud. Positions do not enter: this term has no force and no virial
func (o *Ewald) selfEnergy(s ChargedSystem) float64 {
	q2 := 0.0
	for i := 0; i < s.Size(); i++ {
		q2 += s.Charge(i) * s.Charge(i)
	}
	return -o.alpha / math.Sqrt(math.Pi) * q2 / consts.ELCC
}

// deep3allocC allocates a rank-3 array of complex numbers
func deep3allocC(n1, n2, n3 int) (v [][][]complex128) {
	v = make([][][]complex128, n1)
	for i := 0; i < n1; i++ {
		v[i] = make([][]complex128, n2)
		for j := 0; j < n2; j++ {
			v[i][j] = make([]complex128, n3)
		}
	}
	return
}
