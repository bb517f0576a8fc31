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

// Package testcases contains recorded brush strokes. They are used by the
// tests and by the tools which render strokes for visual inspection.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
)

// TestCase is a single brush stroke.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // grid width in cells
	Height int    // grid height in cells

	Shape brush.Shape
	Size  int
	Mode  brush.Mode // nil means spawning particles

	// Samples holds one pointer position per frame. The stroke starts at
	// the first sample.
	Samples []vec.Vec2
}

// Config returns the brush configuration used for the stroke.
func (tc *TestCase) Config() *brush.Config {
	cfg := brush.DefaultConfig()
	cfg.Shape = tc.Shape
	cfg.SetSize(tc.Size)
	if tc.Mode != nil {
		cfg.Mode = tc.Mode
	}
	return cfg
}

// Run replays the stroke into sink, one frame per sample, and returns the
// total number of requests emitted.
func (tc *TestCase) Run(sink brush.Sink) (int, error) {
	if len(tc.Samples) == 0 {
		return 0, nil
	}

	p := brush.NewPainter(sink)
	if err := p.Begin(tc.Samples[0]); err != nil {
		return 0, err
	}
	cfg := tc.Config()

	total := 0
	for _, pos := range tc.Samples {
		n, err := p.Frame(pos, cfg, Material)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Cells returns all cells touched by the stroke, sorted by [brush.Cell.Compare].
func (tc *TestCase) Cells() ([]brush.Cell, error) {
	var c collector
	if _, err := tc.Run(&c); err != nil {
		return nil, err
	}
	return c.set.Sorted(), nil
}

// Pointer returns the pointer trajectory as an open polyline.
func (tc *TestCase) Pointer() *path.Data {
	p := &path.Data{}
	for i, s := range tc.Samples {
		if i == 0 {
			p.MoveTo(s)
		} else {
			p.LineTo(s)
		}
	}
	return p
}

// Material is the material used when a stroke spawns particles.
const Material brush.Material = "sand"

// collector records every cell a stroke touches, regardless of the
// request type.
type collector struct {
	set brush.CellSet
}

func (c *collector) CreateCell(cell brush.Cell, _ brush.Material, _ color.Color, _ bool) {
	c.set.Add(cell)
}

func (c *collector) RemoveCell(cell brush.Cell) {
	c.set.Add(cell)
}

func (c *collector) SpawnBody(cell brush.Cell) {
	c.set.Add(cell)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// sampleLine returns n+1 evenly spaced samples from a to b, modelling a
// pointer moving at constant speed.
func sampleLine(a, b vec.Vec2, n int) []vec.Vec2 {
	out := make([]vec.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, a.Add(b.Sub(a).Mul(t)))
	}
	return out
}

// concat joins several sample runs, dropping the duplicated joint samples.
func concat(runs ...[]vec.Vec2) []vec.Vec2 {
	var out []vec.Vec2
	for i, r := range runs {
		if i > 0 && len(r) > 0 {
			r = r[1:]
		}
		out = append(out, r...)
	}
	return out
}
