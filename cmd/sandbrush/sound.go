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
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// sound plays short feedback tones. A nil *sound is silent.
type sound struct {
	tone float64
	log  *slog.Logger
}

func newSound(logger *slog.Logger) (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &sound{tone: 880, log: logger}, nil
}

// click plays a short tone to acknowledge a change of brush settings.
func (s *sound) click() {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, s.tone)
	if err != nil {
		s.log.Warn("cannot generate tone", "freq", s.tone, "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(30*time.Millisecond), sine))
}

func (s *sound) close() {
	if s == nil {
		return
	}
	speaker.Close()
}
