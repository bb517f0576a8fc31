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
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrNonFinite is returned when a pointer sample has a NaN or infinite
// coordinate.
var ErrNonFinite = errors.New("non-finite pointer position")

// Trace holds the last three pointer samples in world space.
// It is updated once per frame.
type Trace struct {
	Current     vec.Vec2
	Previous    vec.Vec2
	PrePrevious vec.Vec2
}

// Update shifts the trace by one sample, so that Current becomes p.
// Non-finite samples are rejected and leave the trace unchanged.
func (t *Trace) Update(p vec.Vec2) error {
	if !isFinite(p) {
		return ErrNonFinite
	}
	t.PrePrevious = t.Previous
	t.Previous = t.Current
	t.Current = p
	return nil
}

// Reset sets all three samples to p. This is used when a stroke begins,
// so that the first frame does not sweep from wherever the pointer was
// last seen.
func (t *Trace) Reset(p vec.Vec2) error {
	if !isFinite(p) {
		return ErrNonFinite
	}
	*t = Trace{Current: p, Previous: p, PrePrevious: p}
	return nil
}

// Speed returns the distance covered between the two most recent samples.
func (t *Trace) Speed() float64 {
	return t.Current.Sub(t.Previous).Length()
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
