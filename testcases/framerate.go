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
	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
)

// The framerate cases record the same pointer motion at different frame
// rates. At every rate the stroke must cover the path without gaps.
var framerateCases = []TestCase{
	rateCase("circle_15fps", brush.ShapeCircle, 2, 4),
	rateCase("circle_30fps", brush.ShapeCircle, 2, 8),
	rateCase("circle_60fps", brush.ShapeCircle, 2, 16),
	rateCase("line_15fps", brush.ShapeLine, 2, 4),
	rateCase("line_30fps", brush.ShapeLine, 2, 8),
	rateCase("line_60fps", brush.ShapeLine, 2, 16),
	rateCase("cursor_15fps", brush.ShapeCursor, 1, 4),
	rateCase("cursor_30fps", brush.ShapeCursor, 1, 8),
	rateCase("cursor_60fps", brush.ShapeCursor, 1, 16),
}

// Framerate paths run along row RateRow from column RateStart to RateEnd.
const (
	RateRow   = 16
	RateStart = 4
	RateEnd   = 92
)

func rateCase(name string, shape brush.Shape, size, frames int) TestCase {
	return TestCase{
		Name:    name,
		Width:   96,
		Height:  32,
		Shape:   shape,
		Size:    size,
		Samples: sampleLine(pt(RateStart+0.5, RateRow+0.5), pt(RateEnd+0.5, RateRow+0.5), frames),
	}
}
