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

// Package weather fetches current conditions from the Open-Meteo API and
// reduces them to the short reports shown on the watchface.
package weather

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/ugorji/go/codec"
)

// Conditions derived from WMO weather codes.
const (
	Clear   = "CLEAR"
	Cloudy  = "CLOUDY"
	Fog     = "FOG"
	Rain    = "RAIN"
	Snow    = "SNOW"
	Shower  = "SHOWER"
	Storm   = "STORM"
	Unknown = "UNKNOWN"
)

// Status values, used in place of a condition when no forecast is
// available.
const (
	Loading = "LOADING"
	Error   = "ERROR"
	NoGPS   = "NO_GPS"
)

const (
	// DefaultBaseURL is the Open-Meteo API endpoint.
	DefaultBaseURL = "https://api.open-meteo.com"

	// RefreshInterval is the time between two weather updates.
	RefreshInterval = 30 * time.Minute

	fetchTimeout = 10 * time.Second
)

// Report is the weather shown on the face.
type Report struct {
	Temperature int    `codec:"temperature"` // degrees Celsius
	Condition   string `codec:"condition"`
}

// Location is a position in decimal degrees.
type Location struct {
	Lat, Lon float64
}

// Condition maps a WMO weather interpretation code to a condition.
func Condition(code int) string {
	switch {
	case code == 0:
		return Clear
	case code >= 1 && code <= 3:
		return Cloudy
	case code >= 45 && code <= 48:
		return Fog
	case code >= 51 && code <= 67:
		return Rain
	case code >= 71 && code <= 77:
		return Snow
	case code >= 80 && code <= 82:
		return Shower
	case code >= 95 && code <= 99:
		return Storm
	default:
		return Unknown
	}
}

// Client requests forecasts and remembers the last successful report.
// A Client is safe for concurrent use.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu   sync.Mutex
	last Report
	ok   bool
}

// NewClient returns a client for the API at baseURL.  If baseURL is empty,
// DefaultBaseURL is used.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: fetchTimeout},
	}
}

type forecast struct {
	CurrentWeather *struct {
		Temperature float64 `codec:"temperature"`
		WeatherCode int     `codec:"weathercode"`
	} `codec:"current_weather"`
}

var jsonHandle = &codec.JsonHandle{}

// Fetch requests the current weather at the given position.  The
// temperature is always requested in Celsius.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (Report, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "celsius")
	u := c.BaseURL + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Report{}, fmt.Errorf("weather: %w", err)
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather: unexpected status %s", resp.Status)
	}

	var data forecast
	if err := codec.NewDecoder(resp.Body, jsonHandle).Decode(&data); err != nil {
		return Report{}, fmt.Errorf("weather: decode: %w", err)
	}
	if data.CurrentWeather == nil {
		return Report{}, fmt.Errorf("weather: no current_weather in response")
	}

	return Report{
		Temperature: roundHalfUp(data.CurrentWeather.Temperature),
		Condition:   Condition(data.CurrentWeather.WeatherCode),
	}, nil
}

// Update fetches the weather at loc and returns the report to display.
// Update does not fail: without a location the result has condition
// NoGPS, and a failed request gives Error with temperature 0.
func (c *Client) Update(ctx context.Context, loc *Location) Report {
	if loc == nil {
		return Report{Condition: NoGPS}
	}
	r, err := c.Fetch(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return Report{Condition: Error}
	}

	c.mu.Lock()
	c.last = r
	c.ok = true
	c.mu.Unlock()
	return r
}

// Last returns the most recent successful report.  The second return
// value is false if there has been none yet.
func (c *Client) Last() (Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.ok
}

// roundHalfUp rounds to the nearest integer, with halves rounded towards
// positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
