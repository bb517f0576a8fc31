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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func traceOf(pp, p, c vec.Vec2) Trace {
	return Trace{PrePrevious: pp, Previous: p, Current: c}
}

var allShapes = []Shape{ShapeLine, ShapeCircle, ShapeCursor}

// TestDispatchStationary checks that a pointer which does not move stamps
// the direct shape at its position.
func TestDispatchStationary(t *testing.T) {
	p := pt(5.5, 5.5)
	tr := traceOf(p, p, p)
	var s Stroker

	want := map[Shape][]Cell{
		ShapeCursor: {{X: 5, Y: 5}},
		ShapeCircle: Disc(nil, p, 3),
		ShapeLine:   Stripe(nil, p, 3),
	}
	for shape, cells := range want {
		t.Run(shape.String(), func(t *testing.T) {
			got := slices.Clone(s.Dispatch(tr, shape, 3))
			slices.SortFunc(got, Cell.Compare)
			slices.SortFunc(cells, Cell.Compare)
			if !slices.Equal(got, cells) {
				t.Errorf("got %v, want %v", got, cells)
			}
		})
	}
}

// TestDispatchNoGap moves the pointer 20 cells per frame and checks that
// the row along the motion is covered without gaps.
func TestDispatchNoGap(t *testing.T) {
	tr := traceOf(pt(0.5, 0.5), pt(20.5, 0.5), pt(40.5, 0.5))
	var s Stroker
	for _, shape := range allShapes {
		t.Run(shape.String(), func(t *testing.T) {
			got := toSet(t, s.Dispatch(tr, shape, 1), false)
			for x := 0; x <= 40; x++ {
				if !got[Cell{X: x, Y: 0}] {
					t.Errorf("cell (%d, 0) missing", x)
				}
			}
		})
	}
}

// TestDispatchHalfLengthFollowsLatestMotion documents that both segments
// use half of the most recent movement as capsule half-length: when the
// pointer slows down abruptly, the older segment is only covered near its
// midpoint.
func TestDispatchHalfLengthFollowsLatestMotion(t *testing.T) {
	tr := traceOf(pt(0, 0), pt(10, 0), pt(10.5, 0))
	var s Stroker
	got := toSet(t, s.Dispatch(tr, ShapeCircle, 1), false)

	if !got[Cell{X: 5, Y: 0}] {
		t.Error("midpoint of older segment not covered")
	}
	if got[Cell{X: 0, Y: 0}] {
		t.Error("start of older segment covered, capsule longer than expected")
	}
	if !got[Cell{X: 10, Y: 0}] || !got[Cell{X: 11, Y: 0}] {
		t.Error("disc at current position not covered")
	}
}

func TestDispatchDeterministic(t *testing.T) {
	tr := traceOf(pt(-3.7, 2.2), pt(4.1, 9.9), pt(17.3, 1.05))
	for _, shape := range allShapes {
		var s1, s2 Stroker
		a := slices.Clone(s1.Dispatch(tr, shape, 4))
		b := slices.Clone(s2.Dispatch(tr, shape, 4))
		c := slices.Clone(s1.Dispatch(tr, shape, 4))
		if !slices.Equal(a, b) || !slices.Equal(a, c) {
			t.Errorf("%s: results differ between runs", shape)
		}
	}
}

// TestDispatchUnion checks that overlapping segments are merged: every
// cell appears once, and there are no more cells than the rasterizers
// produced.
func TestDispatchUnion(t *testing.T) {
	tr := traceOf(pt(0, 0), pt(6, 1), pt(12, 0))
	halfLength := tr.Speed() / 2
	for _, shape := range allShapes {
		t.Run(shape.String(), func(t *testing.T) {
			first := segment(nil, tr.PrePrevious, tr.Previous, shape, 3, halfLength)
			second := segment(nil, tr.Previous, tr.Current, shape, 3, halfLength)

			var s Stroker
			got := s.Dispatch(tr, shape, 3)
			set := toSet(t, got, false)

			if len(got) > len(first)+len(second) {
				t.Errorf("%d cells, more than the %d raw cells", len(got), len(first)+len(second))
			}
			if s.Raw() != len(first)+len(second) {
				t.Errorf("Raw() = %d, want %d", s.Raw(), len(first)+len(second))
			}
			for _, c := range slices.Concat(first, second) {
				if !set[c] {
					t.Errorf("cell %v missing from union", c)
				}
			}
		})
	}
}

func TestDispatchParallel(t *testing.T) {
	traces := []Trace{
		traceOf(pt(0, 0), pt(0, 0), pt(0, 0)),
		traceOf(pt(0, 0), pt(0.5, 0.25), pt(8, 3)),
		traceOf(pt(-10, 4), pt(3, -7), pt(3.5, -7.2)),
	}
	var seq, par Stroker
	for _, tr := range traces {
		for _, shape := range allShapes {
			a := slices.Clone(seq.Dispatch(tr, shape, 5))
			b := slices.Clone(par.DispatchParallel(tr, shape, 5))
			slices.SortFunc(a, Cell.Compare)
			slices.SortFunc(b, Cell.Compare)
			if !slices.Equal(a, b) {
				t.Errorf("%s %v: parallel result differs", shape, tr)
			}
			if seq.Raw() != par.Raw() {
				t.Errorf("%s %v: raw counts %d != %d", shape, tr, seq.Raw(), par.Raw())
			}
		}
	}
}

func TestDispatchNonFinite(t *testing.T) {
	nan := math.NaN()
	tr := traceOf(pt(nan, 0), pt(1.5, 1.5), pt(1.5, 1.5))
	var s Stroker
	got := s.Dispatch(tr, ShapeCursor, 1)
	if !slices.Equal(got, []Cell{{X: 1, Y: 1}}) {
		t.Errorf("got %v, want only the finite segment", got)
	}
}

func TestDispatchUnknownShape(t *testing.T) {
	var s Stroker
	p := pt(1, 1)
	if got := s.Dispatch(traceOf(p, p, p), Shape(17), 3); len(got) != 0 {
		t.Errorf("got %v, want no cells", got)
	}
}
