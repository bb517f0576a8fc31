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

// Command genpdf draws every recorded brush stroke into a PDF file, for
// visual inspection. Painted cells are shown as grey squares, the pointer
// trajectory is drawn on top as a thin white line. With -png, the PDFs
// are additionally rendered to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/noprobelm/bevy-falling-sand-editor-sub000/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/strokes", "output directory")
	scale := flag.Float64("scale", 8, "size of one cell in PDF points")
	png := flag.Bool("png", false, "render PNG files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, *scale, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *png {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, scale float64, pdfPath string) error {
	cells, err := tc.Cells()
	if err != nil {
		return err
	}

	w := float64(tc.Width) * scale
	h := float64(tc.Height) * scale
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; grid row 0 is at the top.
	// After this, one unit is one cell.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h})

	page.SetFillColor(color.DeviceGray(0.5))
	painted := false
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= tc.Width || c.Y >= tc.Height {
			continue
		}
		page.Rectangle(float64(c.X), float64(c.Y), 1, 1)
		painted = true
	}
	if painted {
		page.Fill()
	}

	// pointer trajectory
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(0.15)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for cmd, pts := range tc.Pointer().Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -dGraphicsAlphaBits=1 keeps cell edges sharp
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
