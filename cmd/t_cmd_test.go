// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	deck, system, pot := load("../inp/data/nacl.yml")
	require.NotNil(t, deck)
	assert.Equal(t, 2, system.Size())
	assert.Equal(t, 8.0, pot.Cutoff())
	assert.InDelta(t, -0.09262397663346732, pot.Energy(system), 1e-4)
}

func TestLoadMissing(t *testing.T) {
	assert.Panics(t, func() { load("does-not-exist.yml") })
}
