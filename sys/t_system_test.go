// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_system01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system01. particles and distances")

	system := SystemFromXyz(`2
	cell: 20.0
	Cl 0.0 0.0 0.0
	Na 1.5 0.0 0.0
	`)
	chk.IntAssert(system.Size(), 2)
	chk.Scalar(tst, "distance", 1e-15, system.Distance(0, 1), 1.5)
	chk.Vector(tst, "nearest image", 1e-15, system.NearestImage(0, 1), []float64{-1.5, 0, 0})

	// no bonds without the bonds keyword, even at bonding distance
	chk.IntAssert(len(system.Molecules()), 2)
	chk.IntAssert(system.BondDistance(0, 1), -1)
	chk.IntAssert(system.BondDistance(0, 0), 0)
}

func Test_system02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system02. bond guessing and graph distances")

	system := SystemFromXyz(`3
	bonds cell: 20.0
	O  0.0  0.0  0.0
	H -0.7 -0.7  0.3
	H  0.3 -0.3 -0.8
	`)
	chk.IntAssert(system.Size(), 3)
	chk.IntAssert(len(system.Molecules()), 1)
	chk.IntAssert(system.BondDistance(0, 1), 1)
	chk.IntAssert(system.BondDistance(0, 2), 1)
	chk.IntAssert(system.BondDistance(1, 2), 2)
}

func Test_system03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system03. two molecules")

	system := SystemFromXyz(`6
	bonds cell: 20.0
	O  0.0  0.0  0.0
	H -0.7 -0.7  0.3
	H  0.3 -0.3 -0.8
	O  2.0  2.0  0.0
	H  1.3  1.3  0.3
	H  2.3  1.7 -0.8
	`)
	mols := system.Molecules()
	chk.IntAssert(len(mols), 2)
	chk.Ints(tst, "first molecule", mols[0], []int{0, 1, 2})
	chk.Ints(tst, "second molecule", mols[1], []int{3, 4, 5})
	chk.IntAssert(system.BondDistance(0, 3), -1)
	chk.IntAssert(system.BondDistance(1, 5), -1)
	chk.IntAssert(system.BondDistance(3, 4), 1)
	chk.IntAssert(system.BondDistance(4, 5), 2)
}

func Test_system04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system04. explicit bonds")

	cell := NewCubic(20)
	system := NewSystem(cell)
	system.AddParticle(NewParticle("Cl"))
	na := NewParticle("Na")
	na.Pos[0] = 1.5
	system.AddParticle(na)
	chk.IntAssert(system.BondDistance(0, 1), -1)

	system.AddBond(0, 1)
	chk.IntAssert(system.BondDistance(0, 1), 1)
	chk.IntAssert(len(system.Molecules()), 1)
}
