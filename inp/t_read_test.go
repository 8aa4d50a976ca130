// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/antoinewdg/lumol/energy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNacl(t *testing.T) {
	deck, err := Read("data/nacl.yml")
	require.NoError(t, err)

	assert.Equal(t, "NaCl pair in a cubic cell", deck.Desc)
	assert.Equal(t, "ewald", deck.Coulomb.Method)
	assert.Equal(t, 10, deck.Coulomb.Kmax)
	assert.Equal(t, "mc", deck.Simulation.Type)

	system, err := deck.AllocSystem()
	require.NoError(t, err)
	assert.Equal(t, 2, system.Size())
	assert.Equal(t, -1.0, system.Charge(0))
	assert.Equal(t, 1.0, system.Charge(1))
	assert.InDelta(t, 1.5, system.Distance(0, 1), 1e-15)

	pot, err := deck.AllocPotential()
	require.NoError(t, err)
	assert.Equal(t, 8.0, pot.Cutoff())

	simulation, recorders, err := deck.AllocSimulation(system, pot)
	require.NoError(t, err)
	require.NotNil(t, simulation)
	assert.Len(t, recorders, 2)
}

func TestReadWater(t *testing.T) {
	deck, err := Read("data/water.yml")
	require.NoError(t, err)

	system, err := deck.AllocSystem()
	require.NoError(t, err)
	assert.Equal(t, 3, system.Size())

	// guessbonds built the molecule
	assert.Len(t, system.Molecules(), 1)
	assert.Equal(t, 1, system.BondDistance(0, 1))
	assert.Equal(t, 2, system.BondDistance(1, 2))

	pot, err := deck.AllocPotential()
	require.NoError(t, err)

	// the restriction is applied: one molecule has no real-space pairs, and
	// the energy matches the reference
	assert.InDelta(t, 0.0002257554843856993, pot.Energy(system), 1e-10)

	simulation, recorders, err := deck.AllocSimulation(system, pot)
	require.NoError(t, err)
	require.NotNil(t, simulation)
	assert.Empty(t, recorders)
}

func TestReadErrors(t *testing.T) {
	_, err := Read("data/does-not-exist.yml")
	assert.Error(t, err)

	deck, err := Read("data/nacl.yml")
	require.NoError(t, err)

	deck.Coulomb.Method = "wolf"
	_, err = deck.AllocPotential()
	assert.Error(t, err)

	deck.Coulomb.Method = "ewald"
	deck.Coulomb.Restriction = "scale14"
	_, err = deck.AllocPotential()
	assert.Error(t, err)

	deck.Coulomb.Restriction = ""
	deck.Simulation.Type = "minimize"
	system, err := deck.AllocSystem()
	require.NoError(t, err)
	pot, err := deck.AllocPotential()
	require.NoError(t, err)
	_, _, err = deck.AllocSimulation(system, pot)
	assert.Error(t, err)
}

func TestRestrictionDefault(t *testing.T) {
	deck, err := Read("data/nacl.yml")
	require.NoError(t, err)

	// no restriction in the deck means no exclusions
	r, err := energy.RestrictionByName(deck.Coulomb.Restriction)
	require.NoError(t, err)
	assert.Equal(t, energy.None, r)
}
