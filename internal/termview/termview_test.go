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

package termview

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// trueColor returns a renderer which emits 24-bit colours regardless of
// where the test output goes.
func trueColor() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestRenderShape(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))
	for x := range 7 {
		img.Set(x, x%5, color.White)
	}

	out := Render(trueColor(), img)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, 7, strings.Count(line, upperHalf), "line %d", i)
	}
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(trueColor(), image.NewRGBA(image.Rect(0, 0, 0, 0))))
}

func TestHex(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff8000"), hex(color.RGBA{R: 255, G: 128, A: 255}))
	assert.Equal(t, lipgloss.Color("#000000"), hex(color.Transparent))
}

func TestCellRuns(t *testing.T) {
	a := cell{upper: "#ffffff", lower: "#000000"}
	assert.Equal(t, 4, strings.Count(a.render(trueColor(), 4), upperHalf))
	assert.NotEqual(t, a, cell{upper: "#ffffff"})
}

func TestRenderColors(t *testing.T) {
	r := trueColor()
	white := Render(r, uniform(4, 2, color.White))
	black := Render(r, uniform(4, 2, color.Black))
	assert.NotEqual(t, white, black)
	assert.Contains(t, white, "38;2;255;255;255")
	assert.Contains(t, black, "48;2;0;0;0")
}

func TestRenderAscii(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "▀▀▀▀", Render(r, uniform(4, 2, color.White)))
}

func TestStyles(t *testing.T) {
	st := NewStyles(trueColor())
	assert.Contains(t, st.Error.Render("boom"), "boom")
	assert.NotEqual(t, "boom", st.Error.Render("boom"))
}
