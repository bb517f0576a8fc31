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
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// fillOutline rasterizes p with x/image/vector, shifted by (dx, dy).
func fillOutline(p *path.Data, width, height int, dx, dy float64) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	f := func(v vec.Vec2) (float32, float32) {
		return float32(v.X + dx), float32(v.Y + dy)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(f(p.Coords[coordIdx]))
			coordIdx++
		case path.CmdLineTo:
			z.LineTo(f(p.Coords[coordIdx]))
			coordIdx++
		case path.CmdQuadTo:
			bx, by := f(p.Coords[coordIdx])
			cx, cy := f(p.Coords[coordIdx+1])
			z.QuadTo(bx, by, cx, cy)
			coordIdx += 2
		case path.CmdCubeTo:
			bx, by := f(p.Coords[coordIdx])
			cx, cy := f(p.Coords[coordIdx+1])
			ex, ey := f(p.Coords[coordIdx+2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
			coordIdx += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// TestOutlineCircleCoverage compares the disc rasterizer with an
// anti-aliased rendering of the circle outline. The outline is shifted by
// half a pixel, so that pixel (x, y) is centred on the lattice point
// (x, y). Fully covered pixels must be in the disc, and pixels without any
// coverage must not be.
func TestOutlineCircleCoverage(t *testing.T) {
	const size = 32
	centers := []vec.Vec2{{X: 16, Y: 16}, {X: 15.3, Y: 16.6}, {X: 14.5, Y: 15.5}}

	for radius := 1; radius <= 12; radius++ {
		for _, center := range centers {
			t.Run(fmt.Sprintf("r%d_%g_%g", radius, center.X, center.Y), func(t *testing.T) {
				img := fillOutline(Outline(ShapeCircle, center, radius), size, size, 0.5, 0.5)
				in := toSet(t, Disc(nil, center, radius), false)

				for y := range size {
					for x := range size {
						c := Cell{X: x, Y: y}
						a := img.AlphaAt(x, y).A
						if a == 0xff && !in[c] {
							t.Errorf("cell %v fully covered but not in disc", c)
						}
						if a == 0 && in[c] {
							t.Errorf("cell %v not covered but in disc", c)
						}
					}
				}
			})
		}
	}
}

// TestOutlineCellShapes checks that line and cursor outlines cover exactly
// the cells which the shapes paint.
func TestOutlineCellShapes(t *testing.T) {
	const size = 40
	center := vec.Vec2{X: 19.7, Y: 9.2}

	cases := []struct {
		shape Shape
		size  int
		cells []Cell
	}{
		{ShapeCursor, 1, []Cell{floorCell(center)}},
		{ShapeLine, 1, Stripe(nil, center, 1)},
		{ShapeLine, 5, Stripe(nil, center, 5)},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s%d", tc.shape, tc.size), func(t *testing.T) {
			img := fillOutline(Outline(tc.shape, center, tc.size), size, size, 0, 0)
			in := toSet(t, tc.cells, false)
			for y := range size {
				for x := range size {
					covered := img.AlphaAt(x, y).A == 0xff
					if covered != in[Cell{X: x, Y: y}] {
						t.Errorf("cell (%d, %d): covered %t, painted %t", x, y, covered, in[Cell{X: x, Y: y}])
					}
				}
			}
		})
	}
}

func TestOutlineInvalid(t *testing.T) {
	if Outline(ShapeCircle, vec.Vec2{}, 0) != nil {
		t.Error("size 0 gave an outline")
	}
	if Outline(Shape(5), vec.Vec2{}, 3) != nil {
		t.Error("unknown shape gave an outline")
	}
}
