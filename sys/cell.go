// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sys implements particles, unit cells and systems for molecular simulations
package sys

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// CellShape indicates the shape of a unit cell
type CellShape int

const (

	// Infinite == no periodic boundary conditions
	Infinite CellShape = iota

	// Orthorhombic == periodic cell with three perpendicular vectors
	Orthorhombic

	// Triclinic == general periodic cell
	Triclinic
)

// UnitCell holds the matrix of a simulation cell together with its shape.
// Row i of A is the i-th cell vector; positions relate to fractional
// coordinates by r = Aᵀ·s
type UnitCell struct {
	A     [][]float64 // (3,3) cell matrix; row i is the i-th cell vector
	Ai    [][]float64 // (3,3) inverse of Aᵀ, maps positions to fractional coordinates
	shape CellShape   // shape tag set by the constructor
}

// NewCell returns a new infinite (non-periodic) cell
func NewCell() (o *UnitCell) {
	o = new(UnitCell)
	o.A = la.MatAlloc(3, 3)
	o.Ai = la.MatAlloc(3, 3)
	o.shape = Infinite
	return
}

// NewOrthorhombic returns a new orthorhombic cell with lengths lx, ly, lz
func NewOrthorhombic(lx, ly, lz float64) (o *UnitCell) {
	if lx <= 0 || ly <= 0 || lz <= 0 {
		chk.Panic("cell lengths must be positive. lx=%g ly=%g lz=%g is invalid", lx, ly, lz)
	}
	o = new(UnitCell)
	o.A = la.MatAlloc(3, 3)
	o.A[0][0], o.A[1][1], o.A[2][2] = lx, ly, lz
	o.shape = Orthorhombic
	o.calcAi()
	return
}

// NewCubic returns a new cubic cell with length l
func NewCubic(l float64) *UnitCell {
	return NewOrthorhombic(l, l, l)
}

// NewTriclinic returns a new triclinic cell with lengths a, b, c and angles
// alpha, beta, gamma given in degrees
func NewTriclinic(a, b, c, alpha, beta, gamma float64) (o *UnitCell) {
	if a <= 0 || b <= 0 || c <= 0 {
		chk.Panic("cell lengths must be positive. a=%g b=%g c=%g is invalid", a, b, c)
	}
	ca := math.Cos(alpha * math.Pi / 180.0)
	cb := math.Cos(beta * math.Pi / 180.0)
	cg := math.Cos(gamma * math.Pi / 180.0)
	sg := math.Sin(gamma * math.Pi / 180.0)
	o = new(UnitCell)
	o.A = la.MatAlloc(3, 3)
	o.A[0][0] = a
	o.A[1][0] = b * cg
	o.A[1][1] = b * sg
	o.A[2][0] = c * cb
	o.A[2][1] = c * (ca - cb*cg) / sg
	o.A[2][2] = math.Sqrt(c*c - o.A[2][0]*o.A[2][0] - o.A[2][1]*o.A[2][1])
	o.shape = Triclinic
	o.calcAi()
	return
}

// Shape returns the shape of this cell
func (o *UnitCell) Shape() CellShape {
	return o.shape
}

// Lengths returns the lengths of the three cell vectors
func (o *UnitCell) Lengths() []float64 {
	return []float64{la.VecNorm(o.A[0]), la.VecNorm(o.A[1]), la.VecNorm(o.A[2])}
}

// Volume returns the volume of this cell; an infinite cell has zero volume
func (o *UnitCell) Volume() float64 {
	w := make([]float64, 3)
	utl.Cross3d(w, o.A[1], o.A[2])
	return math.Abs(la.VecDot(o.A[0], w))
}

// ReciprocalVectors returns the three reciprocal lattice vectors, with the
// 2·π convention: bi·aj = 2·π·δij
func (o *UnitCell) ReciprocalVectors() (b1, b2, b3 []float64) {
	if o.shape == Infinite {
		chk.Panic("infinite cell does not have reciprocal vectors")
	}
	vol := o.Volume()
	b1 = make([]float64, 3)
	b2 = make([]float64, 3)
	b3 = make([]float64, 3)
	utl.Cross3d(b1, o.A[1], o.A[2])
	utl.Cross3d(b2, o.A[2], o.A[0])
	utl.Cross3d(b3, o.A[0], o.A[1])
	for i := 0; i < 3; i++ {
		b1[i] *= 2.0 * math.Pi / vol
		b2[i] *= 2.0 * math.Pi / vol
		b3[i] *= 2.0 * math.Pi / vol
	}
	return
}

// Fractional maps a position to fractional coordinates wrapped into [0,1)³
func (o *UnitCell) Fractional(p []float64) []float64 {
	if o.shape == Infinite {
		chk.Panic("infinite cell does not have fractional coordinates")
	}
	s := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s[i] += o.Ai[i][j] * p[j]
		}
	}
	for i := 0; i < 3; i++ {
		s[i] -= math.Floor(s[i])
	}
	return s
}

// Cartesian maps fractional coordinates back to a position
func (o *UnitCell) Cartesian(s []float64) []float64 {
	p := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i] += o.A[j][i] * s[j]
		}
	}
	return p
}

// Vector returns the minimum image vector p − q
func (o *UnitCell) Vector(p, q []float64) []float64 {
	d := []float64{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
	if o.shape == Infinite {
		return d
	}
	s := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s[i] += o.Ai[i][j] * d[j]
		}
	}
	for i := 0; i < 3; i++ {
		s[i] -= math.Round(s[i])
	}
	for i := 0; i < 3; i++ {
		d[i] = 0
		for j := 0; j < 3; j++ {
			d[i] += o.A[j][i] * s[j]
		}
	}
	return d
}

// Distance returns the minimum image distance between positions p and q
func (o *UnitCell) Distance(p, q []float64) float64 {
	return la.VecNorm(o.Vector(p, q))
}

// Equal tells whether this cell is identical to b
func (o *UnitCell) Equal(b *UnitCell) bool {
	if o.shape != b.shape {
		return false
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if o.A[i][j] != b.A[i][j] {
				return false
			}
		}
	}
	return true
}

// GetCopy returns a new copy of this cell
func (o *UnitCell) GetCopy() (b *UnitCell) {
	b = new(UnitCell)
	b.A = la.MatAlloc(3, 3)
	b.Ai = la.MatAlloc(3, 3)
	la.MatCopy(b.A, 1, o.A)
	la.MatCopy(b.Ai, 1, o.Ai)
	b.shape = o.shape
	return
}

// calcAi computes the inverse of Aᵀ
func (o *UnitCell) calcAi() {
	a := o.A
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	if math.Abs(det) < 1e-14 {
		chk.Panic("cell matrix is singular. det=%g", det)
	}
	o.Ai = la.MatAlloc(3, 3)
	o.Ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	o.Ai[0][1] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	o.Ai[0][2] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	o.Ai[1][0] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	o.Ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	o.Ai[1][2] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	o.Ai[2][0] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	o.Ai[2][1] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	o.Ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
}
