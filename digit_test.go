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
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/dotclock/testcases"
)

// counter is a Surface which only counts calls.
type counter struct {
	colors, circles int
}

func (c *counter) SetFillColor(color.Color)    { c.colors++ }
func (c *counter) FillCircle(image.Point, int) { c.circles++ }

func TestDigitCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				rec := &Recorder{}
				DrawDigit(rec, tc.Loc, tc.Avail, tc.Digit, tc.AlignRight, color.White, tc.Bonus)
				if len(rec.Ops) != tc.Dots {
					t.Errorf("%d circles, expected %d", len(rec.Ops), tc.Dots)
				}

				grid := NewDotGrid(tc.Loc, tc.Avail, tc.AlignRight, tc.Bonus)
				for _, op := range rec.Ops {
					if op.Radius != grid.Dot/2 {
						t.Errorf("radius %d, expected %d", op.Radius, grid.Dot/2)
					}
					if op.Color != color.Color(color.White) {
						t.Errorf("wrong colour %v", op.Color)
					}
				}
			})
		}
	}
}

func TestInvalidDigit(t *testing.T) {
	loc := image.Rect(0, 0, 72, 60)
	for _, d := range []int{-1, 10, 255, -128, 1 << 20} {
		c := &counter{}
		DrawDigit(c, loc, 60, d, false, color.White, 0)
		DrawDigit(c, loc, 60, d, true, color.White, 2)
		if c.colors != 0 || c.circles != 0 {
			t.Errorf("digit %d: %d colour changes and %d circles", d, c.colors, c.circles)
		}
	}
}

func TestSingleColorChange(t *testing.T) {
	c := &counter{}
	DrawDigit(c, image.Rect(0, 0, 72, 60), 60, 8, false, color.White, 0)
	if c.colors != 1 {
		t.Errorf("%d colour changes, expected 1", c.colors)
	}
}

// TestWorkedExample checks the layout of digit 8 in a 72×120 cell at y=35.
func TestWorkedExample(t *testing.T) {
	loc := image.Rect(0, 35, 72, 155)
	grid := NewDotGrid(loc, 120, false, 0)
	if grid.Dot != 16 || grid.Width != 84 || grid.X0 != 5 || grid.Pitch != 17 {
		t.Fatalf("unexpected grid %+v", grid)
	}

	rec := &Recorder{}
	DrawDigit(rec, loc, 120, 8, false, color.White, 0)
	if len(rec.Ops) != 17 {
		t.Fatalf("%d circles, expected 17", len(rec.Ops))
	}
	for _, op := range rec.Ops {
		if op.Radius != 8 {
			t.Errorf("radius %d, expected 8", op.Radius)
		}
	}
	if first := rec.Ops[0].Center; first != image.Pt(30, 43) {
		t.Errorf("first circle at %v, expected (30,43)", first)
	}
	// The bottom right lit dot of 8 is row 6, column 3.
	last := rec.Ops[len(rec.Ops)-1].Center
	if want := image.Pt(5+3*17+8, 35+6*17+8); last != want {
		t.Errorf("last circle at %v, expected %v", last, want)
	}
}

func TestDotSizeMonotone(t *testing.T) {
	loc := image.Rect(0, 0, 72, 168)
	for bonus := range 4 {
		prev := NewDotGrid(loc, 6, false, bonus).Dot
		for h := 7; h <= 400; h++ {
			dot := NewDotGrid(loc, h, false, bonus).Dot
			if dot < prev {
				t.Fatalf("bonus %d: dot size drops from %d to %d at height %d", bonus, prev, dot, h)
			}
			prev = dot
		}
	}

	for _, h := range []int{13, 52, 120, 167} {
		prev := NewDotGrid(loc, h, false, 0).Dot
		for bonus := 1; bonus < 6; bonus++ {
			dot := NewDotGrid(loc, h, false, bonus).Dot
			if dot != prev+1 {
				t.Errorf("height %d: bonus %d gives dot %d after %d", h, bonus, dot, prev)
			}
			prev = dot
		}
	}
}

// Leftover pixels are not spread over the dots.
func TestDotSizeFloors(t *testing.T) {
	loc := image.Rect(0, 0, 100, 100)
	for h, want := range map[int]int{13: 1, 19: 1, 20: 2, 52: 6, 54: 6, 55: 7} {
		if dot := NewDotGrid(loc, h, false, 0).Dot; dot != want {
			t.Errorf("height %d: dot %d, expected %d", h, dot, want)
		}
	}
}

func TestAlignment(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 30, 72, 82),
		image.Rect(72, 30, 144, 82),
		image.Rect(10, 0, 40, 70), // narrower than the glyph
	}
	for _, loc := range rects {
		for _, h := range []int{20, 52, 70} {
			for bonus := range 3 {
				left, right := &Recorder{}, &Recorder{}
				DrawDigit(left, loc, h, 6, false, color.White, bonus)
				DrawDigit(right, loc, h, 6, true, color.White, bonus)

				grid := NewDotGrid(loc, h, false, bonus)
				shift := loc.Dx() - grid.Width - 2*Inset
				if len(left.Ops) != len(right.Ops) {
					t.Fatalf("%d vs %d circles", len(left.Ops), len(right.Ops))
				}
				for i := range left.Ops {
					d := right.Ops[i].Center.Sub(left.Ops[i].Center)
					if d != image.Pt(shift, 0) {
						t.Errorf("%v h=%d b=%d: circle %d moved by %v, expected (%d,0)",
							loc, h, bonus, i, d, shift)
					}
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	loc := image.Rect(3, 7, 75, 80)
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for d := range 10 {
		a, b := &Recorder{}, &Recorder{}
		DrawDigit(a, loc, 73, d, d%2 == 1, c, 1)
		DrawDigit(b, loc, 73, d, d%2 == 1, c, 1)
		if !slices.Equal(a.Ops, b.Ops) {
			t.Errorf("digit %d: repeated calls differ", d)
		}
	}
}

// The glyph is not clipped to its rectangle.
func TestOverflow(t *testing.T) {
	loc := image.Rect(20, 10, 50, 80)
	rec := &Recorder{}
	DrawDigit(rec, loc, 70, 0, false, color.White, 0)
	outside := 0
	for _, op := range rec.Ops {
		if !op.Center.In(loc) {
			outside++
		}
	}
	if outside == 0 {
		t.Error("expected dots outside of the destination rectangle")
	}
}

func TestDrawDigitNoAlloc(t *testing.T) {
	var s Surface = &counter{}
	var c color.Color = color.RGBA{A: 255}
	loc := image.Rect(0, 0, 72, 60)
	allocs := testing.AllocsPerRun(100, func() {
		for d := range 10 {
			DrawDigit(s, loc, 60, d, d > 4, c, 1)
		}
	})
	if allocs != 0 {
		t.Errorf("DrawDigit allocates %g times per run", allocs)
	}
}
