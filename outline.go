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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the footprint of a brush at center as a closed path in
// world coordinates, for drawing a brush preview. It returns nil for an
// unknown shape or a size below 1.
//
// Circles are approximated by four cubic Bézier curves. Line and cursor
// outlines follow the cell boundaries of the cells they paint.
func Outline(shape Shape, center vec.Vec2, size int) *path.Data {
	if size < 1 {
		return nil
	}

	switch shape {
	case ShapeCircle:
		return circlePath(center, float64(size))

	case ShapeLine:
		lo, hi := stripeRange(size)
		x := math.Floor(center.X)
		y := math.Floor(center.Y)
		return boxPath(x+float64(lo), y, x+float64(hi)+1, y+1)

	case ShapeCursor:
		c := floorCell(center)
		x, y := float64(c.X), float64(c.Y)
		return boxPath(x, y, x+1, y+1)
	}
	return nil
}

// circlePath builds a circle from four cubic Bézier arcs.
func circlePath(c vec.Vec2, r float64) *path.Data {
	k := r * kappa
	cx, cy := c.X, c.Y

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// boxPath builds an axis-aligned rectangle.
func boxPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936
