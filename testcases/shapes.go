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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var shapeCases = []Shape{
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Area:   34 * 34,
		Tol:    1e-4,
	},
	{
		Name:   "rectangle_subpixel",
		Path:   rectangle(10.25, 10.5, 30.75, 20),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Area:   20.5 * 9.5,
		Tol:    1e-4,
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Area:   44 * 40 / 2,
		Tol:    1e-4,
	},
	{
		Name:   "dot",
		Path:   circle(32, 32, 20, false),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Area:   math.Pi * 20 * 20,
		Tol:    0.02,
	},
	{
		// same orientation twice: the hole only shows with even-odd
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 24, 12, false),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Area:   math.Pi * (24*24 - 12*12),
		Tol:    0.02,
	},
	{
		Name:   "ring_nonzero",
		Path:   ring(32, 32, 24, 12, false),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Area:   math.Pi * 24 * 24,
		Tol:    0.02,
	},
	{
		Name:   "ring_opposite",
		Path:   ring(32, 32, 24, 12, true),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Area:   math.Pi * (24*24 - 12*12),
		Tol:    0.02,
	},
	{
		Name:   "clipped_dot",
		Path:   circle(0, 32, 20, false),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Area:   math.Pi * 20 * 20 / 2,
		Tol:    0.02,
	},
}

func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x1, Y: y2}).
		Close()
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x3, Y: y3}).
		Close()
}

// circle builds a circle from four cubic Bézier curves.
func circle(cx, cy, r float64, clockwise bool) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r, clockwise)
}

// ring builds two concentric circles.  If opposite is true, the inner
// circle runs the other way round.
func ring(cx, cy, outer, inner float64, opposite bool) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, outer, false)
	return addCircle(p, cx, cy, inner, opposite)
}

func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	const kappa = 0.5522847498
	k := kappa * r
	s := 1.0
	if clockwise {
		s = -1
	}
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + s*x, Y: cy + y} }
	return p.MoveTo(pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		Close()
}
