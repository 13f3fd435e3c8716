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

package face

import (
	"image"
	"image/color"
	"image/draw"
	"time"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/dotclock"
	"seehuhn.de/go/dotclock/settings"
	"seehuhn.de/go/dotclock/weather"
)

// Size of the watch screen, in pixels.
const (
	Width  = 144
	Height = 168
)

const (
	slotTop          = 5  // distance of the top slot from the top edge
	slotHeight       = 20 // height of a text slot
	slotBottomMargin = 10 // distance of the bottom slot from the bottom edge
	rowGap           = 4  // space between the hours and the minutes
)

var textFace = basicfont.Face7x13

// State holds the inputs of a redraw which change independently of the
// clock and the settings.
type State struct {
	Steps   int
	Weather weather.Report
}

// Layout gives the regions of the face.
type Layout struct {
	Top     image.Rectangle // upper text slot
	Bottom  image.Rectangle // lower text slot
	Hours   image.Rectangle // row of hour digits
	Minutes image.Rectangle // row of minute digits

	// RowHeight is the height available to one row of digits.
	RowHeight int
}

// NewLayout computes the regions of a face covering bounds.
func NewLayout(bounds image.Rectangle) Layout {
	w, h := bounds.Dx(), bounds.Dy()
	top := image.Rect(0, slotTop, w, slotTop+slotHeight).Add(bounds.Min)
	bottom := image.Rect(0, h-slotBottomMargin-slotHeight, w, h-slotBottomMargin).Add(bounds.Min)

	row := max((bottom.Min.Y-top.Max.Y-rowGap)/2, 0)
	hours := image.Rect(bounds.Min.X, top.Max.Y, bounds.Max.X, top.Max.Y+row)
	minutes := hours.Add(image.Pt(0, row+rowGap))

	return Layout{
		Top:       top,
		Bottom:    bottom,
		Hours:     hours,
		Minutes:   minutes,
		RowHeight: row,
	}
}

// Draw renders the face for the given time into dst, using one pixel of
// dst per face pixel.
func Draw(dst draw.Image, now time.Time, cfg settings.Settings, st State) {
	DrawScaled(dst, 1, now, cfg, st)
}

// DrawScaled renders the face magnified by an integer scale factor.  The
// face covers the bounds of dst divided by the scale.
func DrawScaled(dst draw.Image, scale int, now time.Time, cfg settings.Settings, st State) {
	c := dotclock.NewCanvas(dst, scale)
	bounds := c.Bounds()
	l := NewLayout(bounds)

	c.FillRect(bounds, cfg.Background)
	DrawTime(c, l, now, cfg)

	mask := image.NewAlpha(bounds)
	drawText(mask, l.Top, ModuleText(cfg.Top, now, cfg, st))
	drawText(mask, l.Bottom, ModuleText(cfg.Bottom, now, cfg, st))
	if !cfg.Use24H && cfg.ShowAMPM {
		drawMeridiem(mask, l, bounds, now, cfg.Bonus)
	}

	fg := image.NewUniform(cfg.Foreground)
	if c.Scale() == 1 {
		draw.DrawMask(dst, dst.Bounds(), fg, image.Point{}, mask, bounds.Min, draw.Over)
		return
	}
	big := image.NewAlpha(dst.Bounds())
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), mask, bounds, draw.Src, nil)
	draw.DrawMask(dst, dst.Bounds(), fg, image.Point{}, big, big.Bounds().Min, draw.Over)
}

// Render returns a new image of the default screen size, magnified by
// scale, showing the face.
func Render(now time.Time, cfg settings.Settings, st State, scale int) *image.RGBA {
	scale = max(scale, 1)
	img := image.NewRGBA(image.Rect(0, 0, Width*scale, Height*scale))
	DrawScaled(img, scale, now, cfg, st)
	return img
}

// DrawTime draws the hours and minutes as dot-matrix digits.
//
// In each row, the tens digit is packed against the right edge of the
// left half and the units digit against the left edge of the right half.
// The digits are centred vertically in their row.
func DrawTime(s dotclock.Surface, l Layout, now time.Time, cfg settings.Settings) {
	hour := DisplayHour(now.Hour(), cfg.Use24H)
	drawNumber(s, l.Hours, l.RowHeight, hour, cfg.Foreground, cfg.Bonus)
	drawNumber(s, l.Minutes, l.RowHeight, now.Minute(), cfg.Foreground, cfg.Bonus)
}

func drawNumber(s dotclock.Surface, row image.Rectangle, height, value int, c color.Color, bonus int) {
	row = row.Add(image.Pt(0, glyphOffset(height, bonus)))
	mid := row.Min.X + row.Dx()/2
	left := image.Rect(row.Min.X, row.Min.Y, mid, row.Max.Y)
	right := image.Rect(mid, row.Min.Y, row.Max.X, row.Max.Y)

	dotclock.DrawDigit(s, left, height, value/10%10, true, c, bonus)
	dotclock.DrawDigit(s, right, height, value%10, false, c, bonus)
}

// glyphOffset returns the vertical offset which centres a glyph in a row
// of the given height.  Glyphs taller than the row are not moved.
func glyphOffset(height, bonus int) int {
	g := dotclock.NewDotGrid(image.Rectangle{}, height, false, bonus)
	return max((height-g.Height())/2, 0)
}

// ModuleText returns the text shown by a module.
func ModuleText(m settings.Module, now time.Time, cfg settings.Settings, st State) string {
	switch m {
	case settings.ModuleDate:
		return FormatDate(now)
	case settings.ModuleSteps:
		return FormatSteps(st.Steps)
	case settings.ModuleWeather:
		return FormatWeather(st.Weather, cfg.Fahrenheit)
	default:
		return ""
	}
}

// drawText draws s centred in r.
func drawText(dst draw.Image, r image.Rectangle, s string) {
	if s == "" {
		return
	}
	w := utf8.RuneCountInString(s) * textFace.Advance
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + (r.Dy()-textFace.Height)/2 + textFace.Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: textFace,
		Dot:  fixed.P(x, y),
	}
	drawString(d, s)
}

// degreeSign is drawn by hand, since the text face only covers ASCII.
var degreeSign = [...]image.Point{{1, 0}, {0, 1}, {2, 1}, {1, 2}}

// drawString draws s at the dot of d and advances the dot.
func drawString(d *font.Drawer, s string) {
	for _, r := range s {
		if r != '°' {
			d.DrawString(string(r))
			continue
		}
		x := d.Dot.X.Round() + 2
		y := d.Dot.Y.Round() - textFace.Ascent + 2
		for _, p := range degreeSign {
			d.Dst.Set(x+p.X, y+p.Y, color.Opaque)
		}
		d.Dot.X += fixed.I(textFace.Advance)
	}
}

// drawMeridiem draws AM or PM at the right edge of the minute row, with
// the bottom of the text level with the bottom of the digits.
func drawMeridiem(dst draw.Image, l Layout, bounds image.Rectangle, now time.Time, bonus int) {
	s := Meridiem(now.Hour())
	g := dotclock.NewDotGrid(image.Rectangle{}, l.RowHeight, false, bonus)
	bottom := l.Minutes.Min.Y + glyphOffset(l.RowHeight, bonus) + g.Height()

	w := len(s) * textFace.Advance
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: textFace,
		Dot:  fixed.P(bounds.Max.X-dotclock.Inset-w, bottom-textFace.Descent),
	}
	drawString(d, s)
}
