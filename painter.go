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

// Package brush computes which grid cells a paint or erase stroke
// affects. A pointer is sampled once per frame; the last three samples are
// turned into a gap-free set of cells for the selected brush shape, and
// the set is forwarded to a simulation as create, remove or spawn
// requests.
//
// The result of a stroke does not depend on the frame rate: fast pointer
// motion is swept or interpolated, and slow motion is stamped.
package brush

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Material identifies the substance created by a spawning brush.
// The empty string means no material is selected.
type Material string

// Sink receives the requests produced by a brush. It is implemented by the
// simulation, which decides what happens to cells which are already
// occupied.
type Sink interface {
	// CreateCell asks for a cell of material m at c. If col is not nil it
	// replaces the material's colour. If overwrite is false, an occupied
	// cell is left untouched.
	CreateCell(c Cell, m Material, col color.Color, overwrite bool)

	// RemoveCell asks for the content of c to be removed.
	RemoveCell(c Cell)

	// SpawnBody asks for a dynamic physics body at c.
	SpawnBody(c Cell)
}

// Painter drives a brush stroke: once per frame it records the pointer
// position, computes the covered cells and sends one request per distinct
// cell to Sink.
//
// A stroke normally starts with [Painter.Begin]. If Frame or Hover is
// called first, the first sample starts the stroke instead.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	Stroker
	Trace Trace
	Sink  Sink

	started bool
}

// NewPainter returns a Painter which sends its requests to sink.
func NewPainter(sink Sink) *Painter {
	return &Painter{Sink: sink}
}

// Begin starts a new stroke at pos. No cells are emitted.
func (p *Painter) Begin(pos vec.Vec2) error {
	if err := p.Trace.Reset(pos); err != nil {
		return fmt.Errorf("brush: begin stroke: %w", err)
	}
	p.started = true
	return nil
}

// record adds pos to the trace, starting the trace at pos if no stroke
// has been started yet.
func (p *Painter) record(pos vec.Vec2) error {
	if p.started {
		return p.Trace.Update(pos)
	}
	if err := p.Trace.Reset(pos); err != nil {
		return err
	}
	p.started = true
	return nil
}

// Hover records pointer motion without painting, for frames in which the
// brush is not applied.
func (p *Painter) Hover(pos vec.Vec2) error {
	if err := p.record(pos); err != nil {
		return fmt.Errorf("brush: hover: %w", err)
	}
	return nil
}

// Frame records pos as the newest pointer sample and applies the brush
// described by cfg. It returns the number of requests sent to the sink.
//
// If cfg cannot emit anything (nil, no mode, unknown shape or spawn
// target, size below 1, or spawning particles without a material) the
// frame is skipped without error. Sizes above cfg.Limit() are clamped to
// the limit. A non-finite position is rejected with an error wrapping
// [ErrNonFinite], and nothing is emitted.
func (p *Painter) Frame(pos vec.Vec2, cfg *Config, m Material) (int, error) {
	if err := p.record(pos); err != nil {
		Logger().Debug("rejected pointer sample", "pos", pos)
		return 0, fmt.Errorf("brush: frame: %w", err)
	}

	if !cfg.Valid() || p.Sink == nil {
		Logger().Debug("skipping frame, brush not configured")
		return 0, nil
	}
	if spawn, ok := cfg.Mode.(Spawn); ok && spawn.Target == SpawnParticles && m == "" {
		Logger().Debug("skipping frame, no material selected")
		return 0, nil
	}

	size := min(cfg.Size, cfg.Limit())
	cells := p.Dispatch(p.Trace, cfg.Shape, size)
	return emit(p.Sink, cells, cfg, m), nil
}

// emit sends one request per cell, according to the brush mode.
func emit(sink Sink, cells []Cell, cfg *Config, m Material) int {
	switch mode := cfg.Mode.(type) {
	case Spawn:
		if mode.Target == SpawnDynamicBodies {
			for _, c := range cells {
				sink.SpawnBody(c)
			}
			return len(cells)
		}
		var col color.Color
		if forced, ok := cfg.ForceColor.Color(); ok {
			col = forced
		}
		for _, c := range cells {
			sink.CreateCell(c, m, col, cfg.Overwrite)
		}
		return len(cells)

	case Despawn:
		for _, c := range cells {
			sink.RemoveCell(c)
		}
		return len(cells)
	}
	return 0
}
