// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/antoinewdg/lumol/consts"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// densityFft computes the Fourier transform of the charge density on the
// stored k-space octant, rebuilding the phase arrays first. The phases obey
//
//	phases[k][i][d] = exp(-2·π·i·k·s_i_d)
//
// with s_i the fractional coordinates of particle i, and are built by the
// recursion phases[k] = phases[k-1]·phases[1]
func (o *Ewald) densityFft(s ChargedSystem) {
	natoms := s.Size()
	if o.phases == nil || len(o.phases[0]) != natoms {
		o.phases = deep3allocC(o.kmax, natoms, 3)
	}

	// k = 0, 1 cases first
	for i := 0; i < natoms; i++ {
		si := s.Cell().Fractional(s.Position(i))
		for d := 0; d < 3; d++ {
			o.phases[0][i][d] = 1
			o.phases[1][i][d] = cmplx.Rect(1.0, -2.0*math.Pi*si[d])
		}
	}

	// recursion for the other values of k
	for k := 2; k < o.kmax; k++ {
		for i := 0; i < natoms; i++ {
			for d := 0; d < 3; d++ {
				o.phases[k][i][d] = o.phases[k-1][i][d] * o.phases[1][i][d]
			}
		}
	}

	for ikx := 0; ikx < o.kmax; ikx++ {
		for iky := 0; iky < o.kmax; iky++ {
			for ikz := 0; ikz < o.kmax; ikz++ {
				rho := complex(0, 0)
				for i := 0; i < natoms; i++ {
					phi := o.phases[ikx][i][0] * o.phases[iky][i][1] * o.phases[ikz][i][2]
					rho += complex(s.Charge(i), 0) * phi
				}
				o.rho[ikx][iky][ikz] = rho
			}
		}
	}
}

// kspaceEnergy returns the k-space contribution to the energy
func (o *Ewald) kspaceEnergy(s ChargedSystem) float64 {
	o.densityFft(s)
	energy := 0.0
	for ikx := 0; ikx < o.kmax; ikx++ {
		for iky := 0; iky < o.kmax; iky++ {
			for ikz := 0; ikz < o.kmax; ikz++ {
				// the k = 0 case and the cutoff in k-space are already
				// handled in expfactors
				if math.Abs(o.expfactors[ikx][iky][ikz]) < macheps {
					continue
				}
				density := cmplx.Abs(o.rho[ikx][iky][ikz])
				energy += o.expfactors[ikx][iky][ikz] * density * density
			}
		}
	}
	return energy * 2.0 * math.Pi / (s.Cell().Volume() * consts.ELCC)
}

// kspaceForceFactor returns the scalar factor of the k-space force between
// particles i and j at one k-point, given the imaginary part fourierI of the
// phase product of particle i
func (o *Ewald) kspaceForceFactor(j, ikx, iky, ikz int, qi, qj, fourierI float64) float64 {
	fourierJ := imag(o.phases[ikx][j][0] * o.phases[iky][j][1] * o.phases[ikz][j][2])
	return qi * qj * (fourierI - fourierJ)
}

// kspaceForces adds the k-space contribution to forces (natoms,3)
func (o *Ewald) kspaceForces(s ChargedSystem, forces [][]float64) {
	natoms := s.Size()
	chk.IntAssert(len(forces), natoms)
	o.densityFft(s)

	factor := 4.0 * math.Pi / (s.Cell().Volume() * consts.ELCC)
	b1, b2, b3 := s.Cell().ReciprocalVectors()

	k := make([]float64, 3)
	forceI := make([]float64, 3)
	for ikx := 0; ikx < o.kmax; ikx++ {
		for iky := 0; iky < o.kmax; iky++ {
			for ikz := 0; ikz < o.kmax; ikz++ {
				expfactor := math.Abs(o.expfactors[ikx][iky][ikz])
				if expfactor < macheps {
					continue
				}
				f := expfactor * factor
				for d := 0; d < 3; d++ {
					k[d] = float64(ikx)*b1[d] + float64(iky)*b2[d] + float64(ikz)*b3[d]
				}
				for i := 0; i < natoms; i++ {
					qi := s.Charge(i)
					fourierI := imag(o.phases[ikx][i][0] * o.phases[iky][i][1] * o.phases[ikz][i][2])
					forceI[0], forceI[1], forceI[2] = 0, 0, 0
					for j := i + 1; j < natoms; j++ {
						qj := s.Charge(j)
						fk := f * o.kspaceForceFactor(j, ikx, iky, ikz, qi, qj, fourierI)
						for d := 0; d < 3; d++ {
							forceI[d] -= fk * k[d]
							forces[j][d] += fk * k[d]
						}
					}
					for d := 0; d < 3; d++ {
						forces[i][d] += forceI[d]
					}
				}
			}
		}
	}
}

// kspaceVirial returns the k-space contribution to the virial, computed as a
// parallel map-sum over the k-points of the stored octant. Per-worker partial
// virials are summed in worker order, so the result is reproducible for a
// fixed worker count
func (o *Ewald) kspaceVirial(s ChargedSystem) [][]float64 {
	natoms := s.Size()
	o.densityFft(s)

	factor := 4.0 * math.Pi / (s.Cell().Volume() * consts.ELCC)
	b1, b2, b3 := s.Cell().ReciprocalVectors()

	nw := runtime.GOMAXPROCS(0)
	if nw > o.kmax {
		nw = o.kmax
	}
	partials := make([][][]float64, nw)
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			defer wg.Done()
			virial := la.MatAlloc(3, 3)
			k := make([]float64, 3)
			for ikx := w; ikx < o.kmax; ikx += nw {
				for iky := 0; iky < o.kmax; iky++ {
					for ikz := 0; ikz < o.kmax; ikz++ {
						expfactor := o.expfactors[ikx][iky][ikz]
						if expfactor < macheps {
							continue
						}
						f := expfactor * factor
						for d := 0; d < 3; d++ {
							k[d] = float64(ikx)*b1[d] + float64(iky)*b2[d] + float64(ikz)*b3[d]
						}
						for i := 0; i < natoms; i++ {
							qi := s.Charge(i)
							fourierI := imag(o.phases[ikx][i][0] * o.phases[iky][i][1] * o.phases[ikz][i][2])
							for j := i + 1; j < natoms; j++ {
								qj := s.Charge(j)
								fk := f * o.kspaceForceFactor(j, ikx, iky, ikz, qi, qj, fourierI)
								rij := s.NearestImage(i, j)
								for m := 0; m < 3; m++ {
									for n := 0; n < 3; n++ {
										virial[m][n] += fk * k[m] * rij[n]
									}
								}
							}
						}
					}
				}
			}
			partials[w] = virial
		}(w)
	}
	wg.Wait()

	virial := la.MatAlloc(3, 3)
	for w := 0; w < nw; w++ {
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				virial[m][n] += partials[w][m][n]
			}
		}
	}
	return virial
}

// computeDeltaRhoMoveParticles fills deltaRho with the change of the Fourier
// density induced by moving the particles in idxes to newpos. Only the moved
// particles enter, so the cost is O(len(idxes)·kmax³)
func (o *Ewald) computeDeltaRhoMoveParticles(s ChargedSystem, idxes []int, newpos [][]float64) {
	nmoved := len(idxes)
	oldPhases := deep3allocC(o.kmax, nmoved, 3)
	newPhases := deep3allocC(o.kmax, nmoved, 3)

	// k = 0, 1 cases first
	for idx, i := range idxes {
		oldRi := s.Cell().Fractional(s.Position(i))
		newRi := s.Cell().Fractional(newpos[idx])
		for d := 0; d < 3; d++ {
			oldPhases[0][idx][d] = 1
			oldPhases[1][idx][d] = cmplx.Rect(1.0, -2.0*math.Pi*oldRi[d])
			newPhases[0][idx][d] = 1
			newPhases[1][idx][d] = cmplx.Rect(1.0, -2.0*math.Pi*newRi[d])
		}
	}

	// recursion for the other values of k
	for k := 2; k < o.kmax; k++ {
		for idx := 0; idx < nmoved; idx++ {
			for d := 0; d < 3; d++ {
				oldPhases[k][idx][d] = oldPhases[k-1][idx][d] * oldPhases[1][idx][d]
				newPhases[k][idx][d] = newPhases[k-1][idx][d] * newPhases[1][idx][d]
			}
		}
	}

	for ikx := 0; ikx < o.kmax; ikx++ {
		for iky := 0; iky < o.kmax; iky++ {
			for ikz := 0; ikz < o.kmax; ikz++ {
				delta := complex(0, 0)
				for idx, i := range idxes {
					oldPhi := oldPhases[ikx][idx][0] * oldPhases[iky][idx][1] * oldPhases[ikz][idx][2]
					newPhi := newPhases[ikx][idx][0] * newPhases[iky][idx][1] * newPhases[ikz][idx][2]
					delta += complex(s.Charge(i), 0) * (newPhi - oldPhi)
				}
				o.deltaRho[ikx][iky][ikz] = delta
			}
		}
	}
}

// kspaceMoveCost returns the k-space energy change for moving the particles
// in idxes to newpos. It refreshes rho from the pre-move positions, so a
// subsequent update call folds deltaRho into an up-to-date density
func (o *Ewald) kspaceMoveCost(s ChargedSystem, idxes []int, newpos [][]float64) float64 {
	eOld := o.kspaceEnergy(s)

	o.computeDeltaRhoMoveParticles(s, idxes, newpos)
	eNew := 0.0
	for ikx := 0; ikx < o.kmax; ikx++ {
		for iky := 0; iky < o.kmax; iky++ {
			for ikz := 0; ikz < o.kmax; ikz++ {
				if math.Abs(o.expfactors[ikx][iky][ikz]) < macheps {
					continue
				}
				density := cmplx.Abs(o.rho[ikx][iky][ikz] + o.deltaRho[ikx][iky][ikz])
				eNew += o.expfactors[ikx][iky][ikz] * density * density
			}
		}
	}
	eNew *= 2.0 * math.Pi / (s.Cell().Volume() * consts.ELCC)

	return eNew - eOld
}
