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

import "fmt"

// lit is the number of lit dots of each digit.
var lit = [10]int{16, 10, 14, 14, 14, 17, 16, 11, 17, 15}

// digitCases draws every digit at the size of the worked example from
// the watchface layout notes: a 72×120 half-screen cell at y=35.
var digitCases = func() []TestCase {
	var cases []TestCase
	for d := range 10 {
		cases = append(cases, TestCase{
			Name:   fmt.Sprintf("d%d", d),
			Digit:  d,
			Loc:    rect(0, 35, 72, 120),
			Avail:  120,
			Width:  144,
			Height: 168,
			Dots:   lit[d],
		})
	}
	return cases
}()

var alignCases = []TestCase{
	{
		Name:   "left",
		Digit:  4,
		Loc:    rect(0, 30, 72, 52),
		Avail:  52,
		Width:  144,
		Height: 168,
		Dots:   lit[4],
	},
	{
		Name:       "right",
		Digit:      4,
		Loc:        rect(0, 30, 72, 52),
		Avail:      52,
		AlignRight: true,
		Width:      144,
		Height:     168,
		Dots:       lit[4],
	},
	{
		Name:       "right_offset",
		Digit:      7,
		Loc:        rect(72, 86, 72, 52),
		Avail:      52,
		AlignRight: true,
		Width:      144,
		Height:     168,
		Dots:       lit[7],
	},
}

var bonusCases = func() []TestCase {
	var cases []TestCase
	for b := range 4 {
		cases = append(cases, TestCase{
			Name:   fmt.Sprintf("b%d", b),
			Digit:  2,
			Loc:    rect(0, 0, 72, 60),
			Avail:  60,
			Bonus:  b,
			Width:  72,
			Height: 80,
			Dots:   lit[2],
		})
	}
	return cases
}()

var invalidCases = []TestCase{
	{Name: "minus_one", Digit: -1, Loc: rect(0, 0, 72, 60), Avail: 60, Width: 72, Height: 64},
	{Name: "ten", Digit: 10, Loc: rect(0, 0, 72, 60), Avail: 60, Width: 72, Height: 64},
	{Name: "byte_max", Digit: 255, Loc: rect(0, 0, 72, 60), Avail: 60, Width: 72, Height: 64},
}

// overflowCases use glyphs which are wider than their rectangle.
var overflowCases = []TestCase{
	{
		Name:   "narrow",
		Digit:  0,
		Loc:    rect(20, 10, 30, 70),
		Avail:  70,
		Width:  96,
		Height: 96,
		Dots:   lit[0],
	},
	{
		Name:       "narrow_right",
		Digit:      0,
		Loc:        rect(50, 10, 30, 70),
		Avail:      70,
		AlignRight: true,
		Width:      96,
		Height:     96,
		Dots:       lit[0],
	},
}
