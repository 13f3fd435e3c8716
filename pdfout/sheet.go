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

package pdfout

import (
	"image"
	"image/color"

	"seehuhn.de/go/dotclock"
)

// sheetMargin is the space around and between the glyphs of a proof sheet.
const sheetMargin = 8

// Sheet draws all ten digits onto rec, in two rows of five, using glyphs
// of the given height and thickness bonus.  It returns the size of the
// area used.
func Sheet(rec *dotclock.Recorder, height, bonus int, c color.Color) image.Point {
	grid := dotclock.NewDotGrid(image.Rectangle{}, height, false, bonus)
	cellW := grid.Width + 2*dotclock.Inset
	cellH := max(grid.Height(), height)

	for d := range 10 {
		col, row := d%5, d/5
		x := sheetMargin + col*(cellW+sheetMargin)
		y := sheetMargin + row*(cellH+sheetMargin)
		loc := image.Rect(x, y, x+cellW, y+cellH)
		dotclock.DrawDigit(rec, loc, height, d, false, c, bonus)
	}

	return image.Point{
		X: sheetMargin + 5*(cellW+sheetMargin),
		Y: sheetMargin + 2*(cellH+sheetMargin),
	}
}
