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

// Package dotclock renders the digits of a dot-matrix watchface.
//
// Every digit is a 5×7 grid of dots.  [DrawDigit] turns a digit into a
// sequence of filled circles on a [Surface]; the size of the dots follows
// from the height available to the glyph.  Two surfaces are provided:
// [Recorder] keeps a list of the circles, and [Canvas] paints them with
// anti-aliased edges onto an image, using the coverage [Rasteriser].
//
// The composition of a complete watchface lives in the face subpackage.
package dotclock

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
