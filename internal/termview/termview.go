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

// Package termview shows images in a terminal.
//
// Every character cell shows two pixels stacked vertically, using the
// upper half block with the upper pixel as foreground colour and the lower
// pixel as background colour.
package termview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalf = "▀"

// Render converts img to lines of text, one line per two rows of pixels.
// Runs of identical cells are styled together.  The colour escapes are
// chosen by r, which should be created for the output the text is
// written to.
func Render(r *lipgloss.Renderer, img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}

		var run cell
		n := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			c := cell{upper: hex(img.At(x, y))}
			if y+1 < b.Max.Y {
				c.lower = hex(img.At(x, y+1))
			}
			if n > 0 && c != run {
				sb.WriteString(run.render(r, n))
				n = 0
			}
			run = c
			n++
		}
		if n > 0 {
			sb.WriteString(run.render(r, n))
		}
	}
	return sb.String()
}

// cell holds the colours of one character cell.  An empty lower colour
// leaves the terminal background in place.
type cell struct {
	upper, lower lipgloss.Color
}

func (c cell) render(r *lipgloss.Renderer, n int) string {
	st := r.NewStyle().Foreground(c.upper)
	if c.lower != "" {
		st = st.Background(c.lower)
	}
	return st.Render(strings.Repeat(upperHalf, n))
}

func hex(c color.Color) lipgloss.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B))
}

// Styles holds the styles of the text shown below the face.
type Styles struct {
	Status lipgloss.Style // the status line
	Error  lipgloss.Style // error messages
}

// NewStyles returns the text styles for the output of r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Status: r.NewStyle().
			Foreground(lipgloss.Color("8")).
			PaddingTop(1),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
	}
}
