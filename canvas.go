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
	"image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas is a Surface which paints anti-aliased dots onto an image.
//
// A circle with centre (x, y) and radius r covers the disc of radius r+0.5
// around the middle of pixel (x, y), so that it is 2r+1 pixels across, the
// same as the filled circles of the watch.  Dots are composited over the
// existing image content.
//
// With a scale factor k > 1, every device pixel of the face becomes a k×k
// block of the destination image.
type Canvas struct {
	dst   draw.Image
	scale int
	src   *image.Uniform
	mask  image.Alpha // one row of coverage

	r *Rasteriser
	p path.Data
}

// NewCanvas returns a Canvas which draws onto dst.  Scale factors below 1
// are treated as 1.
func NewCanvas(dst draw.Image, scale int) *Canvas {
	scale = max(scale, 1)
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	c := &Canvas{
		dst:   dst,
		scale: scale,
		src:   &image.Uniform{C: color.Black},
		r:     NewRasteriser(clip),
	}
	c.r.CTM = matrix.Matrix{float64(scale), 0, 0, float64(scale), float64(b.Min.X), float64(b.Min.Y)}
	return c
}

// Bounds returns the face coordinates covered by the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	b := c.dst.Bounds()
	return image.Rect(0, 0, b.Dx()/c.scale, b.Dy()/c.scale)
}

// Scale returns the magnification factor of the canvas.
func (c *Canvas) Scale() int {
	return c.scale
}

// Image returns the destination image.
func (c *Canvas) Image() draw.Image {
	return c.dst
}

// SetFillColor implements the Surface interface.
func (c *Canvas) SetFillColor(col color.Color) {
	c.src.C = col
}

// FillCircle implements the Surface interface.
func (c *Canvas) FillCircle(center image.Point, radius int) {
	if radius < 0 {
		return
	}
	c.p.Cmds = c.p.Cmds[:0]
	c.p.Coords = c.p.Coords[:0]
	AppendDot(&c.p, center, radius)
	c.r.FillNonZero(&c.p, c.blendRow)
}

// FillRect paints a rectangle, given in face coordinates, with a solid
// colour.  The previous content is replaced.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	s := c.scale
	b := c.dst.Bounds()
	dr := image.Rect(r.Min.X*s, r.Min.Y*s, r.Max.X*s, r.Max.Y*s).Add(b.Min)
	draw.Draw(c.dst, dr.Intersect(b), image.NewUniform(col), image.Point{}, draw.Src)
}

// blendRow composites one row of coverage values in the fill colour.
func (c *Canvas) blendRow(y, xMin int, coverage []float32) {
	n := len(coverage)
	if cap(c.mask.Pix) < n {
		c.mask.Pix = make([]uint8, n)
	}
	c.mask.Pix = c.mask.Pix[:n]
	c.mask.Stride = n
	c.mask.Rect = image.Rect(xMin, y, xMin+n, y+1)
	for i, cov := range coverage {
		c.mask.Pix[i] = uint8(min(max(cov, 0), 1)*255 + 0.5)
	}
	draw.DrawMask(c.dst, c.mask.Rect, c.src, image.Point{}, &c.mask, c.mask.Rect.Min, draw.Over)
}
