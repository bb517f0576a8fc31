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
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Stroker converts the motion recorded in a [Trace] into the set of cells
// covered by the brush during one frame. Create one instance and reuse it
// for every frame. Internal buffers grow as needed but never shrink.
//
// The zero value is ready to use. A Stroker is not safe for concurrent use.
type Stroker struct {
	buf  []Cell  // raw rasterizer output, may contain duplicates
	side []Cell  // output for the older segment in DispatchParallel
	set  CellSet // deduplicated result
	raw  int     // number of raw cells in the last dispatch
}

// Dispatch rasterizes both trailing segments of the trace,
// PrePrevious→Previous and Previous→Current, and returns the union of the
// covered cells without duplicates.
//
// The older segment was already covered in the previous frame. It is
// covered again so that a frame in which the pointer barely moves cannot
// leave a gap behind a fast one; the simulation treats repeated requests
// for the same cell as idempotent.
//
// The returned slice is owned by the Stroker and is valid until the next
// call.
func (s *Stroker) Dispatch(tr Trace, shape Shape, size int) []Cell {
	halfLength := tr.Speed() / 2

	s.buf = s.buf[:0]
	s.buf = segment(s.buf, tr.PrePrevious, tr.Previous, shape, size, halfLength)
	s.buf = segment(s.buf, tr.Previous, tr.Current, shape, size, halfLength)

	s.raw = len(s.buf)
	s.set.Reset()
	s.set.AddAll(s.buf)
	return s.set.Cells()
}

// DispatchParallel is like [Stroker.Dispatch], but rasterizes the two
// segments concurrently. The result contains the same cells as Dispatch,
// possibly in a different order.
func (s *Stroker) DispatchParallel(tr Trace, shape Shape, size int) []Cell {
	halfLength := tr.Speed() / 2

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.side = segment(s.side[:0], tr.PrePrevious, tr.Previous, shape, size, halfLength)
	}()
	s.buf = segment(s.buf[:0], tr.Previous, tr.Current, shape, size, halfLength)
	wg.Wait()

	s.raw = len(s.side) + len(s.buf)
	s.set.Reset()
	s.set.AddAll(s.side)
	s.set.AddAll(s.buf)
	return s.set.Cells()
}

// Raw returns the number of cells produced by the rasterizers in the last
// dispatch, before duplicates were removed.
func (s *Stroker) Raw() int {
	return s.raw
}

// segment appends the cells covered while the brush moves from a to b.
// Movements shorter than one cell stamp the shape at b. Longer movements
// use the swept or interpolated variant of the shape.
func segment(dst []Cell, a, b vec.Vec2, shape Shape, size int, halfLength float64) []Cell {
	if !isFinite(a) || !isFinite(b) {
		Logger().Debug("skipping non-finite segment", "from", a, "to", b)
		return dst
	}

	if b.Sub(a).Length() < SubCellThreshold {
		switch shape {
		case ShapeCircle:
			return Disc(dst, b, size)
		case ShapeLine:
			return Stripe(dst, b, size)
		case ShapeCursor:
			return append(dst, floorCell(b))
		}
		return dst
	}

	switch shape {
	case ShapeCircle:
		return Capsule(dst, a, b, float64(size), halfLength)
	case ShapeLine:
		return InterpolateStripe(dst, a, b, size)
	case ShapeCursor:
		return InterpolatePoint(dst, a, b)
	}
	return dst
}

// SubCellThreshold is the pointer movement, in cells, below which a
// segment is stamped at its end point instead of being swept.
const SubCellThreshold = 1.0
