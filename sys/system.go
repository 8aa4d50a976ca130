// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"
)

// System holds the unit cell, the particles and the bond graph of a simulated
// system. Bond graph queries (molecules, graph distances) are cached and
// rebuilt lazily when particles or bonds are added
type System struct {
	cell  *UnitCell   // unit cell
	parts []*Particle // all particles
	bonds [][]int     // adjacency lists of the bond graph
	dist  [][]int     // (n,n) bond graph distances; -1 across molecules
	mols  [][]int     // particle indices of each molecule
	dirty bool        // graph caches must be rebuilt
}

// NewSystem returns a new system with the given unit cell and no particles
func NewSystem(cell *UnitCell) (o *System) {
	o = new(System)
	o.cell = cell
	return
}

// Cell returns the unit cell of this system
func (o *System) Cell() *UnitCell {
	return o.cell
}

// SetCell sets the unit cell of this system
func (o *System) SetCell(cell *UnitCell) {
	o.cell = cell
}

// Size returns the number of particles in this system
func (o *System) Size() int {
	return len(o.parts)
}

// Particle returns the i-th particle
func (o *System) Particle(i int) *Particle {
	return o.parts[i]
}

// Charge returns the charge of the i-th particle
func (o *System) Charge(i int) float64 {
	return o.parts[i].Charge
}

// Position returns the position of the i-th particle
func (o *System) Position(i int) []float64 {
	return o.parts[i].Pos
}

// AddParticle adds a particle to this system
func (o *System) AddParticle(p *Particle) {
	o.parts = append(o.parts, p)
	o.bonds = append(o.bonds, nil)
	o.dirty = true
}

// AddBond adds a bond between particles i and j
func (o *System) AddBond(i, j int) {
	n := o.Size()
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		chk.Panic("cannot add bond between particles %d and %d in system with %d particles", i, j, n)
	}
	o.bonds[i] = append(o.bonds[i], j)
	o.bonds[j] = append(o.bonds[j], i)
	o.dirty = true
}

// Distance returns the minimum image distance between particles i and j
func (o *System) Distance(i, j int) float64 {
	return o.cell.Distance(o.parts[i].Pos, o.parts[j].Pos)
}

// NearestImage returns the minimum image vector from particle j to particle i
func (o *System) NearestImage(i, j int) []float64 {
	return o.cell.Vector(o.parts[i].Pos, o.parts[j].Pos)
}

// BondDistance returns the number of bonds on the shortest path between
// particles i and j, 0 for i == j, and -1 if the particles belong to
// different molecules
func (o *System) BondDistance(i, j int) int {
	o.rebuild()
	return o.dist[i][j]
}

// Molecules returns the particle indices of each molecule, where a molecule
// is a connected component of the bond graph
func (o *System) Molecules() [][]int {
	o.rebuild()
	return o.mols
}

// rebuild recomputes the graph caches with a breadth-first search from every particle
func (o *System) rebuild() {
	if !o.dirty {
		return
	}
	n := o.Size()
	o.dist = make([][]int, n)
	for i := 0; i < n; i++ {
		o.dist[i] = make([]int, n)
		for j := 0; j < n; j++ {
			o.dist[i][j] = -1
		}
		o.dist[i][i] = 0
		queue := []int{i}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range o.bonds[v] {
				if o.dist[i][w] < 0 {
					o.dist[i][w] = o.dist[i][v] + 1
					queue = append(queue, w)
				}
			}
		}
	}
	o.mols = nil
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}
		var mol []int
		for j := i; j < n; j++ {
			if o.dist[i][j] >= 0 {
				mol = append(mol, j)
				seen[j] = true
			}
		}
		o.mols = append(o.mols, mol)
	}
	o.dirty = false
}
