// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_restriction01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("restriction01. none")

	for _, distance := range []int{-1, 0, 1, 2, 8} {
		info := None.Information(distance)
		if info.Excluded {
			tst.Errorf("None must never exclude a pair. distance=%d\n", distance)
			return
		}
		chk.Scalar(tst, "scaling", 1e-17, info.Scaling, 1.0)
	}
}

func Test_restriction02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("restriction02. intermolecular")

	for _, distance := range []int{0, 1, 2, 8} {
		info := InterMolecular.Information(distance)
		if !info.Excluded {
			tst.Errorf("InterMolecular must exclude pairs in the same molecule. distance=%d\n", distance)
			return
		}
		chk.Scalar(tst, "scaling", 1e-17, info.Scaling, 1.0)
	}
	info := InterMolecular.Information(-1)
	if info.Excluded {
		tst.Errorf("InterMolecular must not exclude pairs across molecules\n")
		return
	}
}

func Test_restriction03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("restriction03. names")

	r, err := RestrictionByName("intermolecular")
	if err != nil {
		tst.Errorf("cannot get restriction: %v\n", err)
		return
	}
	if r != InterMolecular {
		tst.Errorf("wrong restriction for name 'intermolecular'\n")
		return
	}

	r, err = RestrictionByName("")
	if err != nil || r != None {
		tst.Errorf("empty name must give None\n")
		return
	}

	if _, err = RestrictionByName("scale14"); err == nil {
		tst.Errorf("unknown names must be rejected\n")
		return
	}
}
