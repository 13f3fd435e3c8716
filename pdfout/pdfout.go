// seehuhn.de/go/dotclock - a dot-matrix watchface renderer
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

// Package pdfout writes recorded dot drawings as vector PDF files.
//
// Every circle captured by a [dotclock.Recorder] becomes four Bézier
// curves on the page, so the output can be magnified without loss.  This
// is used for printed proof sheets of the glyph set and for the reference
// pages of the test suite.  Colours are reduced to DeviceGray.
package pdfout

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/dotclock"
)

// Write creates a single page PDF file of the given size in points, with
// one point per face pixel.  The page is filled with bg and then the
// circles recorded in rec are painted in order.
func Write(fname string, size image.Point, bg color.Color, rec *dotclock.Recorder) error {
	paper := &pdf.Rectangle{
		URx: float64(size.X),
		URy: float64(size.Y),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(gray(bg)))
	page.Rectangle(0, 0, float64(size.X), float64(size.Y))
	page.Fill()

	// PDF has the origin at the bottom left, the face at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(size.Y)})

	rec.Replay(NewSurface(page))

	return page.Close()
}

// pathWriter is the part of a PDF content stream used for dots.
type pathWriter interface {
	SetFillColor(c pdfcolor.Color)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Fill()
}

// Surface is a [dotclock.Surface] which paints filled circles onto a PDF
// page.  The circles have the same outline as those of [dotclock.Canvas].
type Surface struct {
	out pathWriter
	p   path.Data
}

// NewSurface returns a Surface which draws into the content of page.
func NewSurface(page *document.Page) *Surface {
	return &Surface{out: page}
}

// SetFillColor implements the [dotclock.Surface] interface.
func (s *Surface) SetFillColor(c color.Color) {
	s.out.SetFillColor(pdfcolor.DeviceGray(gray(c)))
}

// FillCircle implements the [dotclock.Surface] interface.
func (s *Surface) FillCircle(center image.Point, radius int) {
	if radius < 0 {
		return
	}
	s.p.Cmds = s.p.Cmds[:0]
	s.p.Coords = s.p.Coords[:0]
	dotclock.AppendDot(&s.p, center, radius)

	k := 0
	for _, cmd := range s.p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			s.out.MoveTo(s.p.Coords[k].X, s.p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			s.out.LineTo(s.p.Coords[k].X, s.p.Coords[k].Y)
			k++
		case path.CmdCubeTo:
			a, b, c := s.p.Coords[k], s.p.Coords[k+1], s.p.Coords[k+2]
			s.out.CurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y)
			k += 3
		case path.CmdClose:
			s.out.ClosePath()
		}
	}
	s.out.Fill()
}

// gray converts c to a gray level between 0 (black) and 1 (white).
// A nil colour gives black.
func gray(c color.Color) float64 {
	if c == nil {
		return 0
	}
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return float64(g.Y) / 0xffff
}
