// sandbrush - brush stroke rasterization for falling-sand editors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sandbox implements a small falling-sand world which accepts
// brush requests. It is used by the terminal sandbox and by tests; it is
// not meant as a physics engine.
package sandbox

import (
	"image/color"

	"seehuhn.de/go/geom/rect"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
)

// Particle is the content of an occupied cell.
type Particle struct {
	Material brush.Material
	Color    color.Color // nil means the material's own colour
}

// Stats counts the requests a World has processed.
type Stats struct {
	Created int // cells created or overwritten
	Skipped int // create requests for occupied cells without overwrite
	Removed int // occupied cells which were cleared
	Bodies  int // bodies spawned
	Outside int // requests outside the grid
}

// World is a bounded grid of cells, stored in row-major order.
// Row 0 is the top of the world; particles fall towards larger Y.
//
// A World is not safe for concurrent use.
type World struct {
	W, H int

	cells  []*Particle
	bodies []brush.Cell
	stats  Stats
}

// New allocates an empty world. Dimensions below 1 are raised to 1.
func New(w, h int) *World {
	w = max(w, 1)
	h = max(h, 1)
	return &World{W: w, H: h, cells: make([]*Particle, w*h)}
}

// Bounds returns the world area as a rectangle in world coordinates.
func (w *World) Bounds() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(w.W), URy: float64(w.H)}
}

// Contains reports whether c lies inside the grid.
func (w *World) Contains(c brush.Cell) bool {
	return c.X >= 0 && c.X < w.W && c.Y >= 0 && c.Y < w.H
}

func (w *World) index(c brush.Cell) int {
	return c.Y*w.W + c.X
}

// At returns the particle at c, or nil if the cell is empty or outside
// the grid.
func (w *World) At(c brush.Cell) *Particle {
	if !w.Contains(c) {
		return nil
	}
	return w.cells[w.index(c)]
}

// CreateCell implements [brush.Sink]. Occupied cells are replaced only if
// overwrite is set.
func (w *World) CreateCell(c brush.Cell, m brush.Material, col color.Color, overwrite bool) {
	if !w.Contains(c) {
		w.stats.Outside++
		return
	}
	i := w.index(c)
	if w.cells[i] != nil && !overwrite {
		w.stats.Skipped++
		return
	}
	w.cells[i] = &Particle{Material: m, Color: col}
	w.stats.Created++
}

// RemoveCell implements [brush.Sink].
func (w *World) RemoveCell(c brush.Cell) {
	if !w.Contains(c) {
		w.stats.Outside++
		return
	}
	i := w.index(c)
	if w.cells[i] != nil {
		w.cells[i] = nil
		w.stats.Removed++
	}
}

// SpawnBody implements [brush.Sink]. Bodies are only recorded; they do
// not take part in the simulation.
func (w *World) SpawnBody(c brush.Cell) {
	if !w.Contains(c) {
		w.stats.Outside++
		return
	}
	w.bodies = append(w.bodies, c)
	w.stats.Bodies++
}

// Bodies returns the positions of all spawned bodies.
func (w *World) Bodies() []brush.Cell {
	return w.bodies
}

// Stats returns the request counters.
func (w *World) Stats() Stats {
	return w.stats
}

// Count returns the number of occupied cells.
func (w *World) Count() int {
	n := 0
	for _, p := range w.cells {
		if p != nil {
			n++
		}
	}
	return n
}

// Clear empties the world and resets the counters.
func (w *World) Clear() {
	clear(w.cells)
	w.bodies = w.bodies[:0]
	w.stats = Stats{}
}

// Step advances the simulation by one tick. Every particle moves one cell
// down if that cell is free, otherwise diagonally down, preferring the
// left side on even ticks and the right side on odd ticks. Rows are
// processed bottom-up so that a particle moves at most once per tick.
func (w *World) Step(tick int) {
	first, second := -1, 1
	if tick%2 == 1 {
		first, second = 1, -1
	}

	for y := w.H - 2; y >= 0; y-- {
		for x := range w.W {
			i := y*w.W + x
			p := w.cells[i]
			if p == nil {
				continue
			}
			for _, dx := range [3]int{0, first, second} {
				dst := brush.Cell{X: x + dx, Y: y + 1}
				if !w.Contains(dst) {
					continue
				}
				j := w.index(dst)
				if w.cells[j] == nil {
					w.cells[j] = p
					w.cells[i] = nil
					break
				}
			}
		}
	}
}
