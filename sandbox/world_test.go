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

package sandbox

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
)

func TestCreateOverwrite(t *testing.T) {
	w := New(4, 4)
	c := brush.Cell{X: 1, Y: 2}
	red := color.NRGBA{R: 255, A: 255}

	w.CreateCell(c, "sand", nil, false)
	w.CreateCell(c, "water", red, false)
	require.NotNil(t, w.At(c))
	assert.Equal(t, brush.Material("sand"), w.At(c).Material)
	assert.Nil(t, w.At(c).Color)

	w.CreateCell(c, "water", red, true)
	assert.Equal(t, brush.Material("water"), w.At(c).Material)
	assert.Equal(t, color.Color(red), w.At(c).Color)

	assert.Equal(t, Stats{Created: 2, Skipped: 1}, w.Stats())
}

func TestRemoveAndBodies(t *testing.T) {
	w := New(3, 3)
	c := brush.Cell{X: 0, Y: 0}
	w.CreateCell(c, "sand", nil, false)
	w.RemoveCell(c)
	w.RemoveCell(c)
	assert.Nil(t, w.At(c))

	w.SpawnBody(brush.Cell{X: 2, Y: 2})
	w.SpawnBody(brush.Cell{X: 3, Y: 2})
	w.CreateCell(brush.Cell{X: -1, Y: 0}, "sand", nil, false)
	w.RemoveCell(brush.Cell{X: 0, Y: 9})

	assert.Equal(t, []brush.Cell{{X: 2, Y: 2}}, w.Bodies())
	assert.Equal(t, Stats{Created: 1, Removed: 1, Bodies: 1, Outside: 3}, w.Stats())

	w.Clear()
	assert.Zero(t, w.Count())
	assert.Empty(t, w.Bodies())
	assert.Equal(t, Stats{}, w.Stats())
}

func TestStep(t *testing.T) {
	w := New(3, 3)
	w.CreateCell(brush.Cell{X: 1, Y: 0}, "sand", nil, false)
	w.CreateCell(brush.Cell{X: 1, Y: 2}, "sand", nil, false)

	w.Step(0)
	assert.NotNil(t, w.At(brush.Cell{X: 1, Y: 1}), "particle did not fall")

	w.Step(0)
	// blocked below, slides to the left on even ticks
	assert.NotNil(t, w.At(brush.Cell{X: 0, Y: 2}))
	assert.Equal(t, 2, w.Count())

	w.Step(1)
	assert.Equal(t, 2, w.Count(), "particles must be conserved")
}

// TestPaintRepeatedFrames paints over the same cells in consecutive
// frames. Repeated coverage must not create additional particles.
func TestPaintRepeatedFrames(t *testing.T) {
	w := New(40, 20)
	p := brush.NewPainter(w)
	cfg := brush.DefaultConfig()
	cfg.SetSize(3)

	require.NoError(t, p.Begin(vec.Vec2{X: 5, Y: 10}))
	total := 0
	for _, x := range []float64{5, 5.2, 12, 25, 25.5} {
		n, err := p.Frame(vec.Vec2{X: x, Y: 10}, cfg, "sand")
		require.NoError(t, err)
		total += n
	}

	stats := w.Stats()
	assert.Equal(t, w.Count(), stats.Created)
	assert.Equal(t, total, stats.Created+stats.Skipped+stats.Outside)
	assert.Positive(t, stats.Skipped, "overlapping frames should hit occupied cells")

	for x := 5; x <= 25; x++ {
		assert.NotNil(t, w.At(brush.Cell{X: x, Y: 10}), "gap at x=%d", x)
	}
}

func TestEraseStroke(t *testing.T) {
	w := New(30, 10)
	for y := range 10 {
		for x := range 30 {
			w.CreateCell(brush.Cell{X: x, Y: y}, "stone", nil, false)
		}
	}

	p := brush.NewPainter(w)
	cfg := brush.DefaultConfig()
	cfg.Shape = brush.ShapeCursor
	cfg.Mode = brush.Despawn{}

	require.NoError(t, p.Begin(vec.Vec2{X: 0.5, Y: 4.5}))
	_, err := p.Frame(vec.Vec2{X: 29.5, Y: 4.5}, cfg, "")
	require.NoError(t, err)

	for x := range 30 {
		assert.Nil(t, w.At(brush.Cell{X: x, Y: 4}), "x=%d not erased", x)
	}
	assert.Equal(t, 30*10-30, w.Count())
}

func TestBounds(t *testing.T) {
	w := New(0, 7)
	assert.Equal(t, 1, w.W)
	b := w.Bounds()
	assert.Equal(t, 1.0, b.URx)
	assert.Equal(t, 7.0, b.URy)
}
