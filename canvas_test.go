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
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
)

func newBlackRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func TestCanvasCircle(t *testing.T) {
	img := newBlackRGBA(32, 32)
	c := NewCanvas(img, 1)
	c.SetFillColor(color.White)
	c.FillCircle(image.Pt(10, 10), 4)

	if got := img.RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("centre pixel is %v", got)
	}

	// the circle spans 2r+1 pixels on the middle row and column
	lit := 0
	for x := range 32 {
		if img.RGBAAt(x, 10).R > 127 {
			lit++
		}
	}
	if lit != 9 {
		t.Errorf("%d pixels lit on the middle row, expected 9", lit)
	}
	lit = 0
	for y := range 32 {
		if img.RGBAAt(10, y).R > 127 {
			lit++
		}
	}
	if lit != 9 {
		t.Errorf("%d pixels lit in the middle column, expected 9", lit)
	}

	for _, p := range []image.Point{{4, 10}, {16, 10}, {10, 4}, {10, 16}, {0, 0}, {15, 15}} {
		if got := img.RGBAAt(p.X, p.Y); got != (color.RGBA{0, 0, 0, 255}) {
			t.Errorf("pixel %v is %v, expected black", p, got)
		}
	}
}

func TestCanvasRadiusZero(t *testing.T) {
	img := newBlackRGBA(8, 8)
	c := NewCanvas(img, 1)
	c.SetFillColor(color.White)
	c.FillCircle(image.Pt(3, 3), 0)

	if v := img.RGBAAt(3, 3).R; v == 0 || v == 255 {
		t.Errorf("single pixel dot has value %d, expected partial coverage", v)
	}
	for _, p := range []image.Point{{2, 3}, {4, 3}, {3, 2}, {3, 4}} {
		if v := img.RGBAAt(p.X, p.Y).R; v != 0 {
			t.Errorf("pixel %v is %d, expected 0", p, v)
		}
	}

	c.FillCircle(image.Pt(5, 5), -1)
	if v := img.RGBAAt(5, 5).R; v != 0 {
		t.Errorf("negative radius painted pixel with %d", v)
	}
}

func TestCanvasScale(t *testing.T) {
	img := newBlackRGBA(64, 64)
	c := NewCanvas(img, 2)
	if b := c.Bounds(); b != image.Rect(0, 0, 32, 32) {
		t.Errorf("bounds %v", b)
	}

	c.FillRect(image.Rect(0, 0, 16, 32), color.RGBA{0, 0, 255, 255})
	if got := img.RGBAAt(31, 63); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("scaled rectangle: pixel (31,63) is %v", got)
	}
	if got := img.RGBAAt(32, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("scaled rectangle: pixel (32,0) is %v", got)
	}

	// face circle at (20,10) radius 4 becomes centre (41,21) radius 9
	c.SetFillColor(color.White)
	c.FillCircle(image.Pt(20, 10), 4)
	if got := img.RGBAAt(41, 21); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("centre pixel is %v", got)
	}
	if got := img.RGBAAt(33, 21).R; got < 128 {
		t.Errorf("pixel (33,21) is %d, expected mostly covered", got)
	}
	if got := img.RGBAAt(51, 21); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (51,21) is %v, expected black", got)
	}
}

func TestCanvasOffsetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(100, 50, 120, 70))
	c := NewCanvas(img, 1)
	c.SetFillColor(color.White)
	c.FillCircle(image.Pt(5, 5), 2)
	if got := img.RGBAAt(105, 55); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("centre pixel is %v", got)
	}
}

func TestCanvasBlend(t *testing.T) {
	img := newBlackRGBA(16, 16)
	c := NewCanvas(img, 1)
	c.SetFillColor(color.NRGBA{R: 255, A: 128})
	c.FillCircle(image.Pt(8, 8), 3)

	got := img.RGBAAt(8, 8)
	if got.R < 127 || got.R > 129 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("half transparent red over black gives %v", got)
	}
}

// Digits drawn onto a Canvas light the pixels at the recorded centres.
func TestCanvasDigit(t *testing.T) {
	img := newBlackRGBA(144, 168)
	c := NewCanvas(img, 1)
	rec := &Recorder{}
	loc := image.Rect(0, 30, 72, 82)
	DrawDigit(c, loc, 52, 3, true, color.White, 0)
	DrawDigit(rec, loc, 52, 3, true, color.White, 0)

	for _, op := range rec.Ops {
		if got := img.RGBAAt(op.Center.X, op.Center.Y); got.R != 255 {
			t.Errorf("dot centre %v is %v", op.Center, got)
		}
	}
	if got := img.RGBAAt(0, 0); got.R != 0 {
		t.Errorf("pixel (0,0) is %v", got)
	}
}

func TestAppendDot(t *testing.T) {
	got := AppendDot(&path.Data{}, image.Pt(2, 3), 1)
	want := CirclePath(2.5, 3.5, 1.5)
	if !slices.Equal(got.Cmds, want.Cmds) || !slices.Equal(got.Coords, want.Coords) {
		t.Errorf("dot outline differs from the circle of radius 1.5 at (2.5, 3.5)")
	}
}

// Images without a fast compositing path give the same result.
func TestCanvasImageTypes(t *testing.T) {
	fast := newBlackRGBA(24, 24)
	slow := image.NewNRGBA64(fast.Bounds())
	draw.Draw(slow, slow.Bounds(), image.Black, image.Point{}, draw.Src)

	for _, img := range []draw.Image{fast, slow} {
		c := NewCanvas(img, 1)
		c.SetFillColor(color.White)
		c.FillCircle(image.Pt(8, 8), 5)
		c.SetFillColor(color.NRGBA{G: 255, A: 128})
		c.FillCircle(image.Pt(14, 14), 4)
	}

	for y := range 24 {
		for x := range 24 {
			r1, g1, b1, _ := fast.At(x, y).RGBA()
			r2, g2, b2, _ := slow.At(x, y).RGBA()
			if diff(r1, r2) > 0x202 || diff(g1, g2) > 0x202 || diff(b1, b2) > 0x202 {
				t.Errorf("pixel (%d,%d): %v vs %v", x, y, fast.At(x, y), slow.At(x, y))
			}
		}
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
