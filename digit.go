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

package dotclock

import (
	"image"
	"image/color"
)

// Layout constants of the dot matrix, in pixels.
const (
	// dotGap is the space between neighbouring dots, both horizontally
	// and vertically.
	dotGap = 1

	// Inset is the distance between the glyph and the edge of the
	// destination rectangle it is packed against.
	Inset = 5
)

// DotGrid describes where the dots of one glyph go.
type DotGrid struct {
	Dot   int // dot diameter
	Pitch int // distance between the origins of neighbouring dots
	Width int // total width of the glyph
	X0    int // left edge of the first dot column
	Y0    int // top edge of the first dot row
}

// NewDotGrid computes the dot layout for a glyph drawn into loc.
//
// The dot diameter is derived from height, the vertical pixel budget of the
// glyph: seven rows need six one-pixel gaps, and the remaining height is
// split evenly between the rows, discarding any remainder.  The bonus is
// added to the diameter afterwards.  If alignRight is false the glyph is
// packed against the left edge of loc, otherwise against the right edge.
func NewDotGrid(loc image.Rectangle, height int, alignRight bool, bonus int) DotGrid {
	dot := (height-(GlyphRows-1)*dotGap)/GlyphRows + bonus
	width := dot*GlyphCols + (GlyphCols-1)*dotGap

	x0 := loc.Min.X + Inset
	if alignRight {
		x0 = loc.Min.X + (loc.Dx() - width) - Inset
	}

	return DotGrid{
		Dot:   dot,
		Pitch: dot + dotGap,
		Width: width,
		X0:    x0,
		Y0:    loc.Min.Y,
	}
}

// Height returns the total height of the glyph.
func (g DotGrid) Height() int {
	return g.Dot*GlyphRows + (GlyphRows-1)*dotGap
}

// Cell returns the top-left corner of the dot at the given row and column.
func (g DotGrid) Cell(row, col int) image.Point {
	return image.Point{
		X: g.X0 + col*g.Pitch,
		Y: g.Y0 + row*g.Pitch,
	}
}

// Center returns the centre of the dot at the given row and column.
func (g DotGrid) Center(row, col int) image.Point {
	r := g.Dot / 2
	return g.Cell(row, col).Add(image.Point{X: r, Y: r})
}

// DrawDigit draws a decimal digit as a 5×7 matrix of filled circles.
//
// The glyph is placed inside loc as described for [NewDotGrid].  Each lit
// dot becomes one FillCircle call with radius Dot/2, in row-major order,
// preceded by a single SetFillColor call.  Unlit dots are not drawn, so
// whatever is already on the surface shows through.  Nothing is clipped to
// loc; a glyph which is too large for the rectangle spills over its edges.
//
// Digits outside the range 0-9 are ignored and leave s untouched.
func DrawDigit(s Surface, loc image.Rectangle, height, digit int, alignRight bool, c color.Color, bonus int) {
	if digit < 0 || digit > 9 {
		return
	}
	g := &glyphs[digit]
	grid := NewDotGrid(loc, height, alignRight, bonus)
	radius := grid.Dot / 2

	s.SetFillColor(c)
	for row := range GlyphRows {
		for col := range GlyphCols {
			if g.Lit(row, col) {
				s.FillCircle(grid.Center(row, col), radius)
			}
		}
	}
}
