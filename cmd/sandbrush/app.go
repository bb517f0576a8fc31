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

package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
	"github.com/noprobelm/bevy-falling-sand-editor-sub000/sandbox"
	"github.com/noprobelm/bevy-falling-sand-editor-sub000/settings"
)

// material is an entry of the material picker.
type material struct {
	Name brush.Material
	Hex  string
}

var defaultMaterials = []material{
	{"sand", "#c2b280"},
	{"water", "#4060ff"},
	{"stone", "#808080"},
	{"oil", "#3a2f1a"},
	{"snow", "#f0f0f8"},
}

// screenToWorld maps a terminal cell to the pointer position in world
// coordinates: the centre of the corresponding world cell.
var screenToWorld = matrix.Identity.Translate(0.5, 0.5)

// app is the terminal front-end. The bottom row of the screen shows the
// status line, everything above it is the world.
type app struct {
	screen  tcell.Screen
	world   *sandbox.World
	painter *brush.Painter
	cfg     *brush.Config
	mats    []material
	mat     int
	snd     *sound
	log     *slog.Logger

	pointer  vec.Vec2
	buttons  tcell.ButtonMask
	stroking bool
	tick     int

	preview *vector.Rasterizer
	mask    *image.Alpha
	colors  map[brush.Material]tcell.Color
}

func newApp(screen tcell.Screen, f *settings.File, snd *sound, logger *slog.Logger) (*app, error) {
	cfg, m, err := f.Config()
	if err != nil {
		return nil, err
	}

	a := &app{
		screen: screen,
		cfg:    cfg,
		snd:    snd,
		log:    logger,
		mats:   slices.Clone(defaultMaterials),
		colors: make(map[brush.Material]tcell.Color),
	}

	a.mat = -1
	for i, mi := range a.mats {
		if mi.Name == m {
			a.mat = i
		}
	}
	if a.mat < 0 && m != "" {
		a.mats = append(a.mats, material{Name: m, Hex: "#a0a0a0"})
		a.mat = len(a.mats) - 1
	}
	for _, mi := range a.mats {
		c, err := colorful.Hex(mi.Hex)
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", mi.Name, err)
		}
		a.colors[mi.Name] = rgb(c.RGB255())
	}

	a.resize()
	return a, nil
}

// resize allocates a new, empty world matching the screen size.
func (a *app) resize() {
	w, h := a.screen.Size()
	a.world = sandbox.New(w, h-1)
	a.painter = brush.NewPainter(a.world)
	a.stroking = false
	a.preview = vector.NewRasterizer(a.world.W, a.world.H)
	a.mask = image.NewAlpha(image.Rect(0, 0, a.world.W, a.world.H))
	a.log.Info("world allocated", "width", a.world.W, "height", a.world.H)
}

func (a *app) material() brush.Material {
	if a.mat < 0 {
		return ""
	}
	return a.mats[a.mat].Name
}

// settings returns the current brush state for saving.
func (a *app) settings() *settings.File {
	return settings.FromConfig(a.cfg, a.material())
}

// handle processes one input event. It returns false if the program
// should exit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		m := screenToWorld
		a.pointer = vec.Vec2{
			X: m[0]*float64(x) + m[2]*float64(y) + m[4],
			Y: m[1]*float64(x) + m[3]*float64(y) + m[5],
		}

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			a.cfg.Scroll(1)
		}
		if buttons&tcell.WheelDown != 0 {
			a.cfg.Scroll(-1)
		}
		a.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

		// no painting from the status line
		b := a.world.Bounds()
		if a.pointer.X < b.LLx || a.pointer.X >= b.URx || a.pointer.Y < b.LLy || a.pointer.Y >= b.URy {
			a.buttons = 0
		}

	case *tcell.EventKey:
		return a.key(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		if w != a.world.W || h-1 != a.world.H {
			a.resize()
		}
		a.screen.Sync()
	}
	return true
}

func (a *app) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case '1':
		a.cfg.Shape = brush.ShapeLine
	case '2':
		a.cfg.Shape = brush.ShapeCircle
	case '3':
		a.cfg.Shape = brush.ShapeCursor
	case 's':
		a.cfg.Shape = a.cfg.Shape.Next()
	case 'm':
		a.cfg.ToggleMode()
	case 'b':
		a.cfg.ToggleTarget()
	case 'o':
		a.cfg.Overwrite = !a.cfg.Overwrite
	case 'c':
		a.cfg.ForceColor.Enabled = !a.cfg.ForceColor.Enabled
	case '[':
		a.cfg.ForceColor.Prev()
	case ']':
		a.cfg.ForceColor.Next()
	case '+', '=':
		a.cfg.Grow()
	case '-':
		a.cfg.Shrink()
	case 'n':
		a.mat = (a.mat + 1) % len(a.mats)
	case 'x':
		a.world.Clear()
	default:
		return true
	}
	a.snd.click()
	return true
}

// frame runs one frame: the brush is applied at the current pointer
// position, then the world advances by one tick.
func (a *app) frame() {
	if a.buttons == 0 {
		a.stroking = false
		if err := a.painter.Hover(a.pointer); err != nil {
			a.log.Warn("hover failed", "err", err)
		}
	} else {
		if !a.stroking {
			if err := a.painter.Begin(a.pointer); err != nil {
				a.log.Warn("cannot start stroke", "err", err)
				return
			}
			a.stroking = true
		}

		cfg := a.cfg
		if a.buttons&tcell.Button1 == 0 {
			// secondary buttons always erase
			erase := *a.cfg
			erase.Mode = brush.Despawn{}
			cfg = &erase
		}
		n, err := a.painter.Frame(a.pointer, cfg, a.material())
		if err != nil {
			a.log.Warn("frame failed", "err", err)
		}
		a.log.Debug("frame", "tick", a.tick, "pos", a.pointer, "requests", n)
	}

	a.world.Step(a.tick)
	a.tick++
}

// footprint rasterizes the brush outline at the pointer into a.mask.
func (a *app) footprint() {
	clear(a.mask.Pix)
	p := brush.Outline(a.cfg.Shape, a.pointer, a.cfg.Size)
	if p == nil {
		return
	}

	// Circle cells are centred on lattice points, line and cursor
	// outlines run along cell boundaries.
	var d float32
	if a.cfg.Shape == brush.ShapeCircle {
		d = 0.5
	}
	f := func(v vec.Vec2) (float32, float32) {
		return float32(v.X) + d, float32(v.Y) + d
	}

	z := a.preview
	z.Reset(a.world.W, a.world.H)
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(f(p.Coords[i]))
			i++
		case path.CmdLineTo:
			z.LineTo(f(p.Coords[i]))
			i++
		case path.CmdQuadTo:
			bx, by := f(p.Coords[i])
			cx, cy := f(p.Coords[i+1])
			z.QuadTo(bx, by, cx, cy)
			i += 2
		case path.CmdCubeTo:
			bx, by := f(p.Coords[i])
			cx, cy := f(p.Coords[i+1])
			ex, ey := f(p.Coords[i+2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
			i += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.Draw(a.mask, a.mask.Bounds(), image.Opaque, image.Point{})
}

func (a *app) draw() {
	a.screen.Clear()
	a.footprint()

	previewStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := range a.world.H {
		for x := range a.world.W {
			c := brush.Cell{X: x, Y: y}
			if p := a.world.At(c); p != nil {
				a.screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(a.particleColor(p)))
			} else if a.mask.AlphaAt(x, y).A >= 0x80 {
				a.screen.SetContent(x, y, '·', nil, previewStyle)
			}
		}
	}
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange)
	for _, c := range a.world.Bodies() {
		a.screen.SetContent(c.X, c.Y, 'o', nil, bodyStyle)
	}

	a.drawText(0, a.world.H, a.status(), tcell.StyleDefault.Reverse(true))
	a.screen.Show()
}

func (a *app) particleColor(p *sandbox.Particle) tcell.Color {
	if p.Color != nil {
		c := color.NRGBAModel.Convert(p.Color).(color.NRGBA)
		return rgb(c.R, c.G, c.B)
	}
	if c, ok := a.colors[p.Material]; ok {
		return c
	}
	return tcell.ColorWhite
}

func (a *app) status() string {
	mode := "none"
	switch m := a.cfg.Mode.(type) {
	case brush.Spawn:
		mode = "spawn " + m.Target.String()
	case brush.Despawn:
		mode = "despawn"
	}
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	force := onOff(a.cfg.ForceColor.Enabled)
	if c, ok := a.cfg.ForceColor.Color(); ok {
		force = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf(" %s %d | %s | %s | overwrite %s | colour %s | %d cells ",
		a.cfg.Shape, a.cfg.Size, mode, a.material(),
		onOff(a.cfg.Overwrite), force, a.world.Count())
}

func (a *app) drawText(x, y int, s string, style tcell.Style) {
	w, _ := a.screen.Size()
	for _, r := range s {
		if x >= w {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
