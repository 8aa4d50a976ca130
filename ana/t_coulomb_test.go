// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/antoinewdg/lumol/consts"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_coulomb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb01. screened pair terms")

	alpha, r := 0.3, 1.5
	qi, qj := 1.0, -1.0

	// erfc + erf == 1: the screened terms recombine into the bare energy
	bare := qi * qj / (r * consts.ELCC)
	chk.Scalar(tst, "splitting", 1e-15, RealPair(qi, qj, alpha, r)-MolcorrectPair(qi, qj, alpha, r), bare)

	// the self term only sees the sum of squared charges
	chk.Scalar(tst, "self", 1e-17, SelfEnergy([]float64{1, -1}, alpha), 2.0*SelfEnergy([]float64{1}, alpha))
	chk.Scalar(tst, "self empty", 1e-17, SelfEnergy([]float64{}, alpha), 0)
}

func Test_coulomb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb02. direct lattice sum")

	system := sys.SystemFromXyz(`2
	cell: 20.0
	Cl 0.0 0.0 0.0
	Na 1.5 0.0 0.0
	`)
	system.Particle(0).Charge = -1.0
	system.Particle(1).Charge = 1.0

	// the image corrections of a single neutral pair in a large box are small
	bare := -1.0 / (1.5 * consts.ELCC)
	chk.Scalar(tst, "direct sum", 1e-3, DirectSum(system, 3), bare)

	// adding shells changes the result only slightly
	chk.Scalar(tst, "convergence", 1e-4, DirectSum(system, 4), DirectSum(system, 3))
}
