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

// Package face composes the complete watchface.
//
// The face shows the time as two rows of dot-matrix digits, hours above
// minutes, between two text slots.  Each slot shows one of the modules of
// [settings.Module]: the date, the step count or the weather.  In 12-hour
// mode an AM/PM marker can be shown next to the minutes.
//
// All drawing is done in face coordinates.  [DrawScaled] magnifies the
// face by an integer factor for previews on large screens.
package face
