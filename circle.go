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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// circleKappa is the control point distance, relative to the radius, for
// approximating a quarter circle by a cubic Bézier curve.
const circleKappa = 0.5522847498

// CirclePath returns a closed, counter-clockwise circle with centre
// (cx, cy) and radius r, made of four cubic Bézier curves.
func CirclePath(cx, cy, r float64) *path.Data {
	return appendCircle(&path.Data{}, cx, cy, r)
}

// AppendDot adds the outline of a filled circle, as drawn by a Surface, to
// p and returns p.  The dot with centre (x, y) and radius r covers the disc
// of radius r+0.5 around the middle of pixel (x, y).
func AppendDot(p *path.Data, center image.Point, radius int) *path.Data {
	return appendCircle(p, float64(center.X)+0.5, float64(center.Y)+0.5, float64(radius)+0.5)
}

// appendCircle adds a circle as a new subpath of p and returns p.
func appendCircle(p *path.Data, cx, cy, r float64) *path.Data {
	k := circleKappa * r
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + x, Y: cy + y} }

	return p.MoveTo(pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		Close()
}
