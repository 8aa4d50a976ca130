// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_cell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cell01. shapes, lengths and volume")

	infinite := NewCell()
	if infinite.Shape() != Infinite {
		tst.Errorf("wrong shape for infinite cell\n")
		return
	}
	chk.Scalar(tst, "infinite volume", 1e-17, infinite.Volume(), 0)

	ortho := NewOrthorhombic(10, 20, 30)
	if ortho.Shape() != Orthorhombic {
		tst.Errorf("wrong shape for orthorhombic cell\n")
		return
	}
	chk.Vector(tst, "lengths", 1e-15, ortho.Lengths(), []float64{10, 20, 30})
	chk.Scalar(tst, "volume", 1e-11, ortho.Volume(), 6000)

	cubic := NewCubic(5)
	chk.Vector(tst, "cubic lengths", 1e-15, cubic.Lengths(), []float64{5, 5, 5})

	tri := NewTriclinic(10, 10, 10, 90, 90, 90)
	if tri.Shape() != Triclinic {
		tst.Errorf("wrong shape for triclinic cell\n")
		return
	}
	chk.Vector(tst, "triclinic lengths", 1e-13, tri.Lengths(), []float64{10, 10, 10})
	chk.Scalar(tst, "triclinic volume", 1e-11, tri.Volume(), 1000)
}

func Test_cell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cell02. reciprocal vectors and fractional coordinates")

	cell := NewOrthorhombic(10, 20, 40)
	b1, b2, b3 := cell.ReciprocalVectors()
	chk.Vector(tst, "b1", 1e-15, b1, []float64{2 * math.Pi / 10, 0, 0})
	chk.Vector(tst, "b2", 1e-15, b2, []float64{0, 2 * math.Pi / 20, 0})
	chk.Vector(tst, "b3", 1e-15, b3, []float64{0, 0, 2 * math.Pi / 40})

	s := cell.Fractional([]float64{5, 5, 5})
	chk.Vector(tst, "fractional", 1e-15, s, []float64{0.5, 0.25, 0.125})

	// wrapped into [0,1)
	s = cell.Fractional([]float64{-1, 21, 80})
	chk.Vector(tst, "fractional wrapped", 1e-15, s, []float64{0.9, 0.05, 0})

	p := cell.Cartesian([]float64{0.5, 0.25, 0.125})
	chk.Vector(tst, "cartesian", 1e-14, p, []float64{5, 5, 5})
}

func Test_cell03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cell03. minimum image convention")

	cell := NewCubic(10)
	chk.Scalar(tst, "inside", 1e-15, cell.Distance([]float64{1, 0, 0}, []float64{3, 0, 0}), 2)

	// the nearest image of 9 as seen from 1 is -1
	chk.Scalar(tst, "across boundary", 1e-15, cell.Distance([]float64{1, 0, 0}, []float64{9, 0, 0}), 2)

	d := cell.Vector([]float64{1, 0, 0}, []float64{9, 0, 0})
	chk.Vector(tst, "image vector", 1e-15, d, []float64{2, 0, 0})

	d = cell.Vector([]float64{9, 9, 9}, []float64{1, 1, 1})
	chk.Vector(tst, "image vector corner", 1e-15, d, []float64{-2, -2, -2})
}

func Test_cell04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cell04. equality and copies")

	a := NewCubic(10)
	b := NewCubic(10)
	c := NewCubic(20)
	if !a.Equal(b) {
		tst.Errorf("equal cells reported different\n")
		return
	}
	if a.Equal(c) {
		tst.Errorf("different cells reported equal\n")
		return
	}
	if a.Equal(NewCell()) {
		tst.Errorf("infinite and cubic cells reported equal\n")
		return
	}

	d := a.GetCopy()
	if !a.Equal(d) {
		tst.Errorf("copy differs from original\n")
		return
	}
	d.A[0][0] = 11
	if a.A[0][0] != 10 {
		tst.Errorf("copy shares storage with original\n")
		return
	}
}
