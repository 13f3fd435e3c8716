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

package dotclock_test

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/dotclock"
)

func ExampleDrawDigit() {
	rec := &dotclock.Recorder{}
	loc := image.Rect(0, 35, 72, 155)
	dotclock.DrawDigit(rec, loc, 120, 8, false, color.White, 0)

	first := rec.Ops[0]
	fmt.Printf("%d circles, first at (%d,%d) radius %d\n",
		len(rec.Ops), first.Center.X, first.Center.Y, first.Radius)
	// Output:
	// 17 circles, first at (30,43) radius 8
}

func ExampleNewDotGrid() {
	g := dotclock.NewDotGrid(image.Rect(72, 0, 144, 60), 60, true, 1)
	fmt.Println(g.Dot, g.Width, g.X0)
	// Output:
	// 8 44 95
}
