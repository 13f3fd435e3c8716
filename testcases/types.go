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

package testcases

import (
	"image"

	"seehuhn.de/go/geom/path"
)

// TestCase describes one call of the digit rasteriser.
type TestCase struct {
	Name       string          // lowercase a-z, 0-9 and _ only
	Digit      int             // digit to draw, may be out of range
	Loc        image.Rectangle // destination rectangle
	Avail      int             // available glyph height
	AlignRight bool            // pack against the right edge of Loc
	Bonus      int             // added to the dot diameter
	Width      int             // canvas width in pixels
	Height     int             // canvas height in pixels
	Dots       int             // expected number of filled circles
}

// Shape is a path with known area, used to check the coverage rasteriser.
type Shape struct {
	Name   string
	Path   *path.Data
	Rule   FillRule
	Width  int     // canvas width in pixels
	Height int     // canvas height in pixels
	Area   float64 // exact area covered under Rule
	Tol    float64 // relative tolerance for the total coverage
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// rect is a shorthand for image.Rect using origin and size.
func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
