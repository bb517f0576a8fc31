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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
)

var cursorCases = []TestCase{
	{
		Name:    "click",
		Width:   16,
		Height:  16,
		Shape:   brush.ShapeCursor,
		Size:    1,
		Samples: []vec.Vec2{pt(7.5, 7.5), pt(7.5, 7.5), pt(7.6, 7.4)},
	},
	{
		Name:    "horizontal_fast",
		Width:   64,
		Height:  16,
		Shape:   brush.ShapeCursor,
		Size:    1,
		Samples: sampleLine(pt(2.5, 8.5), pt(61.5, 8.5), 3),
	},
	{
		Name:    "diagonal",
		Width:   48,
		Height:  48,
		Shape:   brush.ShapeCursor,
		Size:    1,
		Samples: sampleLine(pt(4.5, 4.5), pt(43.5, 43.5), 5),
	},
	{
		Name:   "corner",
		Width:  48,
		Height: 48,
		Shape:  brush.ShapeCursor,
		Size:   1,
		Samples: concat(
			sampleLine(pt(4.5, 40.5), pt(24.5, 6.5), 2),
			sampleLine(pt(24.5, 6.5), pt(44.5, 40.5), 2),
		),
	},
}

var lineCases = []TestCase{
	{
		Name:    "click",
		Width:   32,
		Height:  16,
		Shape:   brush.ShapeLine,
		Size:    4,
		Samples: []vec.Vec2{pt(16.5, 8.5)},
	},
	{
		Name:    "vertical",
		Width:   32,
		Height:  64,
		Shape:   brush.ShapeLine,
		Size:    2,
		Samples: sampleLine(pt(16.5, 4.5), pt(16.5, 59.5), 4),
	},
	{
		Name:    "diagonal",
		Width:   64,
		Height:  64,
		Shape:   brush.ShapeLine,
		Size:    3,
		Samples: sampleLine(pt(10.5, 10.5), pt(53.5, 50.5), 6),
	},
	{
		Name:    "slow_drift",
		Width:   32,
		Height:  32,
		Shape:   brush.ShapeLine,
		Size:    2,
		Samples: sampleLine(pt(10.2, 16.2), pt(11.8, 16.7), 8),
	},
}

var circleCases = []TestCase{
	{
		Name:    "dot",
		Width:   32,
		Height:  32,
		Shape:   brush.ShapeCircle,
		Size:    6,
		Samples: []vec.Vec2{pt(16, 16), pt(16, 16)},
	},
	{
		Name:    "horizontal",
		Width:   64,
		Height:  32,
		Shape:   brush.ShapeCircle,
		Size:    3,
		Samples: sampleLine(pt(6, 16), pt(58, 16), 4),
	},
	{
		Name:    "accelerating",
		Width:   96,
		Height:  32,
		Shape:   brush.ShapeCircle,
		Size:    4,
		Samples: []vec.Vec2{pt(8, 16), pt(9, 16), pt(12, 16), pt(20, 16), pt(40, 16), pt(80, 16)},
	},
	{
		Name:    "arc",
		Width:   64,
		Height:  64,
		Shape:   brush.ShapeCircle,
		Size:    2,
		Samples: arcSamples(32, 32, 22, 0, math.Pi, 9),
	},
	{
		Name:    "large",
		Width:   128,
		Height:  128,
		Shape:   brush.ShapeCircle,
		Size:    40,
		Samples: sampleLine(pt(44, 64), pt(84, 64), 2),
	},
}

var eraseCases = []TestCase{
	{
		Name:    "cursor",
		Width:   48,
		Height:  16,
		Shape:   brush.ShapeCursor,
		Size:    1,
		Mode:    brush.Despawn{},
		Samples: sampleLine(pt(2.5, 8.5), pt(45.5, 8.5), 2),
	},
	{
		Name:    "circle",
		Width:   64,
		Height:  64,
		Shape:   brush.ShapeCircle,
		Size:    5,
		Mode:    brush.Despawn{},
		Samples: sampleLine(pt(10, 54), pt(54, 10), 3),
	},
	{
		Name:    "bodies",
		Width:   48,
		Height:  16,
		Shape:   brush.ShapeLine,
		Size:    2,
		Mode:    brush.Spawn{Target: brush.SpawnDynamicBodies},
		Samples: sampleLine(pt(4.5, 8.5), pt(43.5, 8.5), 3),
	},
}

// arcSamples places n+1 samples on a circular arc from angle a0 to a1.
func arcSamples(cx, cy, r, a0, a1 float64, n int) []vec.Vec2 {
	out := make([]vec.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		out = append(out, pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return out
}
