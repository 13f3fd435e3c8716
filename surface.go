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

// Surface is the drawing target of the digit rasteriser.
type Surface interface {
	// SetFillColor sets the colour used by subsequent FillCircle calls.
	SetFillColor(c color.Color)

	// FillCircle fills the circle with the given centre and radius,
	// both in device pixels.
	FillCircle(center image.Point, radius int)
}

// Op is one filled circle, as captured by a Recorder.
type Op struct {
	Center image.Point
	Radius int
	Color  color.Color
}

// Recorder is a Surface which records the circles drawn on it.
// The zero value is ready to use.
type Recorder struct {
	Ops []Op

	fill color.Color
}

// SetFillColor implements the Surface interface.
func (r *Recorder) SetFillColor(c color.Color) {
	r.fill = c
}

// FillCircle implements the Surface interface.
func (r *Recorder) FillCircle(center image.Point, radius int) {
	r.Ops = append(r.Ops, Op{Center: center, Radius: radius, Color: r.fill})
}

// Reset discards all recorded operations, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.fill = nil
}

// Replay draws the recorded operations onto s, in order.
func (r *Recorder) Replay(s Surface) {
	var last color.Color
	for i, op := range r.Ops {
		if i == 0 || op.Color != last {
			s.SetFillColor(op.Color)
			last = op.Color
		}
		s.FillCircle(op.Center, op.Radius)
	}
}
