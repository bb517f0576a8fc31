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

package brush

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Cell is an integer grid coordinate, the unit of the simulation's
// addressable space.
type Cell struct {
	X, Y int
}

// Compare orders cells row by row: first by Y, then by X.
func (c Cell) Compare(other Cell) int {
	if d := cmp.Compare(c.Y, other.Y); d != 0 {
		return d
	}
	return cmp.Compare(c.X, other.X)
}

// Point returns the cell's integer coordinate as a position.
// Shape containment tests are evaluated at this point.
func (c Cell) Point() vec.Vec2 {
	return vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// floorCell returns the cell containing p.
func floorCell(p vec.Vec2) Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// CellSet collects cells without duplicates. Cells are kept in the order
// they were first added, so iterating a set built from the same input
// always gives the same sequence.
//
// The zero value is an empty set ready to use. A CellSet is not safe for
// concurrent use.
type CellSet struct {
	seen  map[Cell]struct{}
	order []Cell
}

// Add inserts c and reports whether it was not already present.
func (s *CellSet) Add(c Cell) bool {
	if s.seen == nil {
		s.seen = make(map[Cell]struct{})
	}
	if _, dup := s.seen[c]; dup {
		return false
	}
	s.seen[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// AddAll inserts all cells and returns the number of new entries.
func (s *CellSet) AddAll(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if s.Add(c) {
			n++
		}
	}
	return n
}

// Has reports whether c is in the set.
func (s *CellSet) Has(c Cell) bool {
	_, ok := s.seen[c]
	return ok
}

// Len returns the number of distinct cells.
func (s *CellSet) Len() int {
	return len(s.order)
}

// Cells returns the distinct cells in first-insertion order.
// The slice is owned by the set and valid until the next Add or Reset.
func (s *CellSet) Cells() []Cell {
	return s.order
}

// Sorted returns a copy of the cells ordered by [Cell.Compare].
func (s *CellSet) Sorted() []Cell {
	out := slices.Clone(s.order)
	slices.SortFunc(out, Cell.Compare)
	return out
}

// Reset empties the set, keeping allocated storage for reuse.
func (s *CellSet) Reset() {
	clear(s.seen)
	s.order = s.order[:0]
}
