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

// Package settings stores brush settings in a TOML file.
//
// A settings file looks like this:
//
//	material = "sand"
//
//	[brush]
//	shape = "circle"
//	mode = "spawn"
//	target = "particles"
//	size = 2
//	max_size = 50
//	overwrite = false
//
//	[brush.force_color]
//	enabled = false
//	palette = ["#c2b280", "#4060ff"]
//	selected = 0
//
// Keys which are missing keep their default values. Unknown keys are an
// error.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
)

// ErrInvalid is wrapped by all errors about settings values.
var ErrInvalid = errors.New("invalid settings")

// File is the content of a settings file.
type File struct {
	Material string `toml:"material"`
	Brush    Brush  `toml:"brush"`
}

// Brush holds the persisted brush fields.
type Brush struct {
	Shape      string     `toml:"shape"`
	Mode       string     `toml:"mode"`
	Target     string     `toml:"target"`
	Size       int        `toml:"size"`
	MaxSize    int        `toml:"max_size"`
	Overwrite  bool       `toml:"overwrite"`
	ForceColor ForceColor `toml:"force_color"`
}

// ForceColor holds the persisted colour override. Palette entries are
// hex colours like "#rrggbb" or "#rgb".
type ForceColor struct {
	Enabled  bool     `toml:"enabled"`
	Palette  []string `toml:"palette"`
	Selected int      `toml:"selected"`
}

// Mode names used in settings files.
const (
	ModeSpawn   = "spawn"
	ModeDespawn = "despawn"
	ModeNone    = "none"
)

// DefaultPalette is the palette used when a settings file does not
// provide one.
var DefaultPalette = []string{"#c2b280", "#4060ff", "#e0402a", "#3fa34d", "#f0f0f0"}

// Default returns the settings corresponding to [brush.DefaultConfig].
func Default() *File {
	f := FromConfig(brush.DefaultConfig(), "sand")
	f.Brush.ForceColor.Palette = append([]string(nil), DefaultPalette...)
	return f
}

// Decode reads settings from r. Values not present in the input are taken
// from [Default].
func Decode(r io.Reader) (*File, error) {
	f := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("settings: decode: %w", err)
	}
	return f, nil
}

// Encode writes f to w.
func Encode(w io.Writer, f *File) error {
	enc := toml.NewEncoder(w).SetIndentTables(true)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	return nil
}

// Load reads the settings file at path. If the file does not exist,
// the default settings are returned.
func Load(path string) (*File, error) {
	fd, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	defer fd.Close()

	f, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Save writes f to the file at path, replacing any existing content.
func Save(path string, f *File) (err error) {
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	defer func() {
		if cerr := fd.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("settings: %w", cerr)
		}
	}()
	return Encode(fd, f)
}

// Config converts the settings into a brush configuration and the
// selected material. Brush sizes outside the allowed range are clamped.
func (f *File) Config() (*brush.Config, brush.Material, error) {
	b := &f.Brush

	shape, err := brush.ParseShape(b.Shape)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var mode brush.Mode
	switch b.Mode {
	case ModeSpawn:
		target, err := parseTarget(b.Target)
		if err != nil {
			return nil, "", err
		}
		mode = brush.Spawn{Target: target}
	case ModeDespawn:
		mode = brush.Despawn{}
	case ModeNone, "":
		// no active mode, nothing will be painted
	default:
		return nil, "", fmt.Errorf("%w: unknown mode %q", ErrInvalid, b.Mode)
	}

	if b.MaxSize < 0 {
		return nil, "", fmt.Errorf("%w: negative max_size %d", ErrInvalid, b.MaxSize)
	}

	palette := make([]color.NRGBA, 0, len(b.ForceColor.Palette))
	for _, hex := range b.ForceColor.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, "", fmt.Errorf("%w: palette entry %q: %w", ErrInvalid, hex, err)
		}
		r, g, bl := c.RGB255()
		palette = append(palette, color.NRGBA{R: r, G: g, B: bl, A: 255})
	}

	cfg := &brush.Config{
		Shape:     shape,
		Mode:      mode,
		MaxSize:   b.MaxSize,
		Overwrite: b.Overwrite,
		ForceColor: brush.ForceColor{
			Enabled:  b.ForceColor.Enabled,
			Palette:  palette,
			Selected: b.ForceColor.Selected,
		},
	}
	cfg.SetSize(b.Size)

	return cfg, brush.Material(f.Material), nil
}

// FromConfig converts a brush configuration and material into settings.
func FromConfig(cfg *brush.Config, m brush.Material) *File {
	f := &File{
		Material: string(m),
		Brush: Brush{
			Shape:     cfg.Shape.String(),
			Mode:      ModeNone,
			Size:      cfg.Size,
			MaxSize:   cfg.MaxSize,
			Overwrite: cfg.Overwrite,
			ForceColor: ForceColor{
				Enabled:  cfg.ForceColor.Enabled,
				Selected: cfg.ForceColor.Selected,
			},
		},
	}
	switch mode := cfg.Mode.(type) {
	case brush.Spawn:
		f.Brush.Mode = ModeSpawn
		f.Brush.Target = mode.Target.String()
	case brush.Despawn:
		f.Brush.Mode = ModeDespawn
	}
	for _, c := range cfg.ForceColor.Palette {
		cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		f.Brush.ForceColor.Palette = append(f.Brush.ForceColor.Palette, cc.Hex())
	}
	return f
}

func parseTarget(name string) (brush.SpawnTarget, error) {
	switch name {
	case brush.SpawnParticles.String(), "":
		return brush.SpawnParticles, nil
	case brush.SpawnDynamicBodies.String():
		return brush.SpawnDynamicBodies, nil
	}
	return 0, fmt.Errorf("%w: unknown spawn target %q", ErrInvalid, name)
}
