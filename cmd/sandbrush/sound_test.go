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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClickBadTone checks that a tone which cannot be generated is logged
// instead of being dropped silently.
func TestClickBadTone(t *testing.T) {
	var buf bytes.Buffer
	s := &sound{
		tone: float64(sampleRate), // above the Nyquist frequency
		log:  slog.New(slog.NewTextHandler(&buf, nil)),
	}

	s.click()

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "cannot generate tone")
	assert.Contains(t, out, "freq=44100")
}

func TestNilSound(t *testing.T) {
	var s *sound
	assert.NotPanics(t, func() {
		s.click()
		s.close()
	})
}
