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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/dotclock/face"
	"seehuhn.de/go/dotclock/settings"
	"seehuhn.de/go/dotclock/weather"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	app := newApp()
	return app.Run(append([]string{"dotclock"}, args...))
}

func TestConfigureAndRender(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "settings.db")
	msg := filepath.Join(dir, "message.json")
	require.NoError(t, os.WriteFile(msg, []byte(`{
		"Setting24H": false,
		"BottomModule": "weather",
		"WeatherTemperature": 11,
		"WeatherCondition": "CLOUDY"
	}`), 0o644))

	require.NoError(t, run(t, "--store", store, "configure", msg))

	st, err := settings.Open(store)
	require.NoError(t, err)
	cfg, err := st.Load()
	require.NoError(t, err)
	w, err := st.LoadWeather()
	require.NoError(t, err)
	require.NoError(t, st.Close())
	assert.False(t, cfg.Use24H)
	assert.Equal(t, settings.ModuleWeather, cfg.Bottom)
	assert.Equal(t, weather.Report{Temperature: 11, Condition: weather.Cloudy}, w)

	out := filepath.Join(dir, "face.png")
	require.NoError(t, run(t, "--store", store, "render",
		"--out", out, "--time", "2025-05-18T21:07:00Z", "--scale", "2"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2*face.Width, img.Bounds().Dx())
	assert.Equal(t, 2*face.Height, img.Bounds().Dy())
}

func TestConfigureErrors(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "settings.db")

	assert.Error(t, run(t, "--store", store, "configure"))
	assert.Error(t, run(t, "--store", store, "configure", filepath.Join(dir, "missing.json")))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Setting24H":`), 0o644))
	assert.Error(t, run(t, "--store", store, "configure", bad))
}

func TestRenderBadTime(t *testing.T) {
	dir := t.TempDir()
	err := run(t, "--store", filepath.Join(dir, "s.db"), "render",
		"--out", filepath.Join(dir, "x.png"), "--time", "yesterday")
	assert.Error(t, err)
}

func TestProof(t *testing.T) {
	out := filepath.Join(t.TempDir(), "digits.pdf")
	require.NoError(t, run(t, "proof", "--out", out, "--bonus", "1"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
