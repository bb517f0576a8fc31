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

// Command export writes the cells covered by each recorded stroke as a
// greyscale PNG mask: white for covered cells, black otherwise. Masks can
// be compared against earlier runs to spot changes in coverage.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"github.com/noprobelm/bevy-falling-sand-editor-sub000/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/masks", "output directory")
	scale := flag.Int("scale", 4, "pixels per cell")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img, err := mask(tc, max(*scale, 1))
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(filepath.Join(*outDir, name+".png"), img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// mask renders one pixel per cell and scales the result up without
// smoothing.
func mask(tc testcases.TestCase, scale int) (image.Image, error) {
	cells, err := tc.Cells()
	if err != nil {
		return nil, err
	}

	grid := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for _, c := range cells {
		grid.SetGray(c.X, c.Y, color.Gray{Y: 255}) // ignores cells outside
	}
	if scale == 1 {
		return grid, nil
	}

	dst := image.NewGray(image.Rect(0, 0, tc.Width*scale, tc.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), grid, grid.Bounds(), draw.Src, nil)
	return dst, nil
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
