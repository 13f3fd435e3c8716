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

// Package settings holds the user configuration of the watchface.
//
// Settings are changed by messages from the companion application, which
// are key/value dictionaries.  Keys which are absent from a message leave
// the corresponding setting unchanged.  The current settings are kept in
// a bbolt database and are saved whenever a message changes them.
package settings

import (
	"fmt"
	"image/color"
	"io"

	"github.com/ugorji/go/codec"

	"seehuhn.de/go/dotclock/weather"
)

// RGB is a colour given as a 0xRRGGBB integer.  It implements
// [color.Color] and is always opaque.
type RGB uint32

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}.RGBA()
}

// Module names the content of one of the two text slots of the face.
type Module string

// These are the available modules.
const (
	ModuleNone    Module = "none"
	ModuleDate    Module = "date"
	ModuleSteps   Module = "steps"
	ModuleWeather Module = "weather"
)

// Valid reports whether m is one of the known modules.
func (m Module) Valid() bool {
	switch m {
	case ModuleNone, ModuleDate, ModuleSteps, ModuleWeather:
		return true
	}
	return false
}

// MaxBonus is the largest accepted dot thickness bonus.
const MaxBonus = 3

// Settings is the configuration of the watchface.
type Settings struct {
	Background RGB    `codec:"bg"`
	Foreground RGB    `codec:"fg"`
	Use24H     bool   `codec:"24h"`
	ShowAMPM   bool   `codec:"ampm"`
	Fahrenheit bool   `codec:"fahrenheit"`
	Bonus      int    `codec:"bonus"`
	Top        Module `codec:"top"`
	Bottom     Module `codec:"bottom"`
}

// Defaults returns the settings used before any message has been received.
func Defaults() Settings {
	return Settings{
		Background: 0x000000,
		Foreground: 0xFFFFFF,
		Use24H:     true,
		ShowAMPM:   true,
		Top:        ModuleDate,
		Bottom:     ModuleSteps,
	}
}

// Message is a settings update sent by the companion application.
// Nil fields are absent from the message.
type Message struct {
	BackgroundColor    *uint32 `codec:"BackgroundColor,omitempty"`
	ForegroundColor    *uint32 `codec:"ForegroundColor,omitempty"`
	Setting24H         *bool   `codec:"Setting24H,omitempty"`
	SettingShowAMPM    *bool   `codec:"SettingShowAMPM,omitempty"`
	SettingFahrenheit  *bool   `codec:"SettingFahrenheit,omitempty"`
	DotThickness       *int    `codec:"DotThickness,omitempty"`
	TopModule          *string `codec:"TopModule,omitempty"`
	BottomModule       *string `codec:"BottomModule,omitempty"`
	WeatherTemperature *int    `codec:"WeatherTemperature,omitempty"`
	WeatherCondition   *string `codec:"WeatherCondition,omitempty"`
}

var jsonHandle = &codec.JsonHandle{
	Indent:         2,
	TermWhitespace: true,
}

// DecodeMessage reads one JSON encoded message from r.
func DecodeMessage(r io.Reader) (*Message, error) {
	m := &Message{}
	if err := codec.NewDecoder(r, jsonHandle).Decode(m); err != nil {
		return nil, fmt.Errorf("settings: decode message: %w", err)
	}
	return m, nil
}

// Encode writes m to w in JSON format.
func (m *Message) Encode(w io.Writer) error {
	return codec.NewEncoder(w, jsonHandle).Encode(m)
}

// Apply updates s with the values present in m and reports whether any
// setting changed.
//
// The dot thickness is clamped to the range 0 to MaxBonus, and unknown
// module names are ignored.  If m carries a weather condition, the weather
// report is returned separately; it is not part of the settings.  A
// message with a temperature but no condition yields no report.
func (s *Settings) Apply(m *Message) (changed bool, w *weather.Report) {
	old := *s

	if m.BackgroundColor != nil {
		s.Background = RGB(*m.BackgroundColor & 0xFFFFFF)
	}
	if m.ForegroundColor != nil {
		s.Foreground = RGB(*m.ForegroundColor & 0xFFFFFF)
	}
	if m.Setting24H != nil {
		s.Use24H = *m.Setting24H
	}
	if m.SettingShowAMPM != nil {
		s.ShowAMPM = *m.SettingShowAMPM
	}
	if m.SettingFahrenheit != nil {
		s.Fahrenheit = *m.SettingFahrenheit
	}
	if m.DotThickness != nil {
		s.Bonus = min(max(*m.DotThickness, 0), MaxBonus)
	}
	if m.TopModule != nil {
		if mod := Module(*m.TopModule); mod.Valid() {
			s.Top = mod
		}
	}
	if m.BottomModule != nil {
		if mod := Module(*m.BottomModule); mod.Valid() {
			s.Bottom = mod
		}
	}

	if m.WeatherCondition != nil {
		w = &weather.Report{Condition: *m.WeatherCondition}
		if m.WeatherTemperature != nil {
			w.Temperature = *m.WeatherTemperature
		}
	}

	return *s != old, w
}
