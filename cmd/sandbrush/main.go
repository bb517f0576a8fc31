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


// Command sandbrush is a small falling-sand sandbox for the terminal.
// Hold the left mouse button to paint with the current brush, the right
// button to erase. The mouse wheel changes the brush size.
//
// Keys:
//
//	1 2 3   line, circle and cursor brush
//	s       next brush shape
//	m       toggle spawn and despawn
//	b       toggle spawning particles and bodies
//	o       toggle overwrite
//	c       toggle colour override
//	[ ]     previous and next override colour
//	+ -     grow and shrink the brush
//	n       next material
//	x       clear the world
//	q, Esc  quit
//
// Brush settings are loaded from the file given by -settings when the
// program starts, and saved there when it exits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	brush "github.com/noprobelm/bevy-falling-sand-editor-sub000"
	"github.com/noprobelm/bevy-falling-sand-editor-sub000/settings"
)

func main() {
	settingsPath := flag.String("settings", "sandbrush.toml", "brush settings file")
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "", "write debug log to this file")
	withSound := flag.Bool("sound", false, "play sounds")
	flag.Parse()

	if err := run(*settingsPath, *logPath, *fps, *withSound); err != nil {
		fmt.Fprintf(os.Stderr, "sandbrush: %v\n", err)
		os.Exit(1)
	}
}

func run(settingsPath, logPath string, fps int, withSound bool) error {
	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		fd, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer fd.Close()
		logger = slog.New(slog.NewTextHandler(fd, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	brush.SetLogger(logger)

	file, err := settings.Load(settingsPath)
	if err != nil {
		return err
	}

	var snd *sound
	if withSound {
		snd, err = newSound(logger)
		if err != nil {
			// the sandbox works without sound
			logger.Warn("audio initialization failed", "err", err)
		}
	}
	defer snd.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(screen, file, snd, logger)
	if err != nil {
		return err
	}
	loop(a, time.Second/time.Duration(max(fps, 1)))

	if err := settings.Save(settingsPath, a.settings()); err != nil {
		return err
	}
	logger.Info("settings saved", "path", settingsPath)
	return nil
}

// loop processes input events and draws one frame per tick, until the
// user quits.
func loop(a *app, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
			a.draw()
		}
	}
}
