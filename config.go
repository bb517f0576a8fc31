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
	"image/color"
)

// Shape selects the footprint of the brush.
type Shape int

const (
	// ShapeLine paints a horizontal stripe of cells.
	ShapeLine Shape = iota

	// ShapeCircle paints a disc whose radius is the brush size.
	ShapeCircle

	// ShapeCursor paints the single cell under the pointer.
	ShapeCursor

	numShapes
)

var shapeNames = [numShapes]string{"line", "circle", "cursor"}

func (s Shape) String() string {
	if s.Valid() {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Valid reports whether s is one of the defined shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < numShapes
}

// Next returns the shape following s, wrapping around after the last one.
func (s Shape) Next() Shape {
	if !s.Valid() {
		return ShapeLine
	}
	return (s + 1) % numShapes
}

// ParseShape converts a name as returned by [Shape.String] back to a Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown brush shape %q", name)
}

// Mode is the operation applied to the cells under the brush.
// The possible values are [Spawn] and [Despawn].
type Mode interface {
	isMode()
}

// SpawnTarget selects what a [Spawn] brush creates.
type SpawnTarget int

const (
	// SpawnParticles creates cells of the current material.
	SpawnParticles SpawnTarget = iota

	// SpawnDynamicBodies creates physics bodies instead of cells.
	SpawnDynamicBodies
)

func (t SpawnTarget) String() string {
	switch t {
	case SpawnParticles:
		return "particles"
	case SpawnDynamicBodies:
		return "bodies"
	default:
		return fmt.Sprintf("SpawnTarget(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined spawn targets.
func (t SpawnTarget) Valid() bool {
	return t == SpawnParticles || t == SpawnDynamicBodies
}

// Spawn creates new content under the brush.
type Spawn struct {
	Target SpawnTarget
}

func (Spawn) isMode() {}

// Despawn removes content under the brush.
type Despawn struct{}

func (Despawn) isMode() {}

// ForceColor optionally overrides the colour of created cells.
type ForceColor struct {
	Enabled  bool
	Palette  []color.NRGBA
	Selected int
}

// Color returns the selected palette entry. The second return value is
// false if forcing is disabled or the selection is out of range.
func (f *ForceColor) Color() (color.NRGBA, bool) {
	if !f.Enabled || f.Selected < 0 || f.Selected >= len(f.Palette) {
		return color.NRGBA{}, false
	}
	return f.Palette[f.Selected], true
}

// Next selects the following palette entry, wrapping around.
func (f *ForceColor) Next() {
	f.step(1)
}

// Prev selects the preceding palette entry, wrapping around.
func (f *ForceColor) Prev() {
	f.step(-1)
}

func (f *ForceColor) step(d int) {
	n := len(f.Palette)
	if n == 0 {
		f.Selected = 0
		return
	}
	f.Selected = ((f.Selected+d)%n + n) % n
}

// Config holds the user-adjustable brush state. It is read once per frame
// and mutated only between frames, in response to input events.
//
// A Config is not safe for concurrent use.
type Config struct {
	// Shape selects the brush footprint.
	Shape Shape

	// Mode is the operation to apply. Nil means no mode is active, and
	// nothing is emitted.
	Mode Mode

	// Size is the brush size in cells, in the range [1, MaxSize].
	// For circles it is the radius.
	Size int

	// MaxSize is the upper bound for Size. Values below 1 are treated
	// as DefaultMaxSize.
	MaxSize int

	// Overwrite instructs the simulation to replace occupied cells when
	// spawning particles.
	Overwrite bool

	// ForceColor optionally overrides the material colour.
	ForceColor ForceColor

	lastTarget SpawnTarget // restored by ToggleMode
}

// DefaultConfig returns a configuration for a small circular brush which
// spawns particles.
func DefaultConfig() *Config {
	return &Config{
		Shape:   ShapeCircle,
		Mode:    Spawn{Target: SpawnParticles},
		Size:    defaultSize,
		MaxSize: DefaultMaxSize,
	}
}

// Limit returns the effective upper bound for Size.
func (c *Config) Limit() int {
	if c.MaxSize < 1 {
		return DefaultMaxSize
	}
	return c.MaxSize
}

// SetSize sets the brush size, clamped to [1, Limit()].
func (c *Config) SetSize(n int) {
	c.Size = max(1, min(n, c.Limit()))
}

// Grow increases the brush size by one step, up to the limit.
func (c *Config) Grow() {
	c.SetSize(c.Size + 1)
}

// Shrink decreases the brush size by one step, down to 1.
func (c *Config) Shrink() {
	c.SetSize(c.Size - 1)
}

// Scroll applies a number of wheel ticks to the brush size.
// Positive values grow the brush.
func (c *Config) Scroll(ticks int) {
	c.SetSize(c.Size + ticks)
}

// ToggleMode switches between spawning and despawning. The spawn target
// is kept across toggles.
func (c *Config) ToggleMode() {
	switch m := c.Mode.(type) {
	case Spawn:
		c.lastTarget = m.Target
		c.Mode = Despawn{}
	default:
		c.Mode = Spawn{Target: c.lastTarget}
	}
}

// ToggleTarget switches a spawning brush between particles and bodies.
// It has no effect in other modes.
func (c *Config) ToggleTarget() {
	m, ok := c.Mode.(Spawn)
	if !ok {
		return
	}
	if m.Target == SpawnParticles {
		m.Target = SpawnDynamicBodies
	} else {
		m.Target = SpawnParticles
	}
	c.Mode = m
}

// Valid reports whether c describes a brush which can emit anything.
// A Size above Limit() is valid; the painter clamps it.
func (c *Config) Valid() bool {
	if c == nil || c.Mode == nil || !c.Shape.Valid() || c.Size < 1 {
		return false
	}
	if s, ok := c.Mode.(Spawn); ok && !s.Target.Valid() {
		return false
	}
	return true
}

// Default values for brush parameters.
const (
	// DefaultMaxSize is the default upper bound for the brush size.
	DefaultMaxSize = 50

	defaultSize = 2
)
