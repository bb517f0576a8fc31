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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// The rasterizers in this file all work the same way: compute an integer
// bounding box which certainly contains the shape, visit every integer
// point inside it, and keep the points which pass a containment test.
// This is O(area) but brush footprints are small.
//
// Each rasterizer appends to dst and returns the extended slice, so that
// callers can reuse one buffer across frames. Results may contain
// duplicates when several rasterizer calls share a buffer.

// Disc appends all integer points whose Euclidean distance to center is at
// most radius. A negative radius gives no points.
func Disc(dst []Cell, center vec.Vec2, radius int) []Cell {
	if radius < 0 {
		return dst
	}
	return disc(dst, center, float64(radius))
}

func disc(dst []Cell, center vec.Vec2, r float64) []Cell {
	box := rect.Rect{
		LLx: center.X - r,
		LLy: center.Y - r,
		URx: center.X + r,
		URy: center.Y + r,
	}
	xMin, xMax, yMin, yMax := cellBounds(box)
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			c := Cell{X: x, Y: y}
			if c.Point().Sub(center).Length() <= r {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// Capsule appends all integer points within distance radius of a line
// segment. The segment is centred on the midpoint of start and end, points
// along normalize(end-start), and extends halfLength to either side of the
// midpoint. The half-length is passed in rather than derived from start and
// end; the stroker ties it to the most recent pointer motion.
//
// If start and end coincide, the result is a disc of the given radius
// around start.
func Capsule(dst []Cell, start, end vec.Vec2, radius, halfLength float64) []Cell {
	if radius < 0 {
		return dst
	}
	halfLength = max(halfLength, 0)

	d := end.Sub(start)
	length := d.Length()
	if length < zeroLengthThreshold {
		return disc(dst, start, radius)
	}
	dir := d.Mul(1 / length)
	mid := start.Add(end).Mul(0.5)

	// axis endpoints
	a := mid.Sub(dir.Mul(halfLength))
	b := mid.Add(dir.Mul(halfLength))

	box := rect.Rect{
		LLx: min(a.X, b.X) - radius,
		LLy: min(a.Y, b.Y) - radius,
		URx: max(a.X, b.X) + radius,
		URy: max(a.Y, b.Y) + radius,
	}
	xMin, xMax, yMin, yMax := cellBounds(box)
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			c := Cell{X: x, Y: y}
			p := c.Point()
			t := p.Sub(mid).Dot(dir)
			t = max(-halfLength, min(t, halfLength))
			closest := mid.Add(dir.Mul(t))
			if p.Sub(closest).Length() <= radius {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// Stripe appends a single row of cells centred on center: for every integer
// offset x in the stripe range of the given brush size, the cell
// (floor(center.X+x), floor(center.Y)).
func Stripe(dst []Cell, center vec.Vec2, size int) []Cell {
	if size < 0 {
		return dst
	}
	lo, hi := stripeRange(size)
	y := int(math.Floor(center.Y))
	for x := lo; x <= hi; x++ {
		dst = append(dst, Cell{X: int(math.Floor(center.X + float64(x))), Y: y})
	}
	return dst
}

// stripeRange returns the inclusive range of horizontal offsets covered by
// a line brush of the given size.
func stripeRange(size int) (lo, hi int) {
	half := size / 2
	return -half * StripeScale, half * StripeScale
}

// InterpolatePoint appends the cells visited by a point moving from start
// to end, sampled at least once per unit of distance. Both endpoints are
// always included. If start and end coincide, the result is the single
// cell containing start.
func InterpolatePoint(dst []Cell, start, end vec.Vec2) []Cell {
	interpolate(start, end, func(p vec.Vec2) {
		dst = append(dst, floorCell(p))
	})
	return dst
}

// InterpolateStripe is like [InterpolatePoint], but every sample is
// widened to the stripe of a line brush of the given size. Each cell of
// the stripe is floored independently.
func InterpolateStripe(dst []Cell, start, end vec.Vec2, size int) []Cell {
	if size < 0 {
		return dst
	}
	lo, hi := stripeRange(size)
	interpolate(start, end, func(p vec.Vec2) {
		y := int(math.Floor(p.Y))
		for x := lo; x <= hi; x++ {
			dst = append(dst, Cell{X: int(math.Floor(p.X + float64(x))), Y: y})
		}
	})
	return dst
}

// interpolate calls emit for n+1 evenly spaced points from start to end,
// where n = max(1, ceil(|end-start|)). A zero-length segment emits start
// only; its direction is undefined.
func interpolate(start, end vec.Vec2, emit func(vec.Vec2)) {
	d := end.Sub(start)
	length := d.Length()
	if length < zeroLengthThreshold {
		emit(start)
		return
	}
	dir := d.Mul(1 / length)

	n := max(1, int(math.Ceil(length)))
	for i := 0; i <= n; i++ {
		t := length * float64(i) / float64(n)
		emit(start.Add(dir.Mul(t)))
	}
}

// cellBounds converts a bounding box into inclusive integer ranges which
// contain it.
func cellBounds(box rect.Rect) (xMin, xMax, yMin, yMax int) {
	xMin = int(math.Floor(box.LLx))
	xMax = int(math.Ceil(box.URx))
	yMin = int(math.Floor(box.LLy))
	yMax = int(math.Ceil(box.URy))
	return xMin, xMax, yMin, yMax
}

// StripeScale widens the offset range [-size/2, size/2] of a line brush,
// so that its length matches the on-screen outline of the brush.
const StripeScale = 3

// Numerical tolerances for the rasterizers.
const (
	// zeroLengthThreshold is the minimum length for a segment to have a
	// direction. Shorter segments are treated as a single point.
	zeroLengthThreshold = 1e-10
)
