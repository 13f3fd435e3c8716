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
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock/settings"
	"seehuhn.de/go/dotclock/weather"
)

// stepPollInterval is the time between two reads of the step file.
const stepPollInterval = 5 * time.Second

// env collects the configuration shared by all commands.
type env struct {
	storePath string
	stepsFile string
	loc       *weather.Location
	client    *weather.Client
}

func newEnv(c *cli.Context) (*env, error) {
	e := &env{
		storePath: c.GlobalString("store"),
		stepsFile: c.GlobalString("steps-file"),
		client:    weather.NewClient(c.GlobalString("weather-url")),
	}
	loc, err := parseLocation(c.GlobalString("lat"), c.GlobalString("lon"))
	if err != nil {
		return nil, err
	}
	e.loc = loc
	return e, nil
}

// parseLocation returns nil if either coordinate is missing.
func parseLocation(lat, lon string) (*weather.Location, error) {
	if lat == "" || lon == "" {
		return nil, nil
	}
	x, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q", lat)
	}
	y, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q", lon)
	}
	return &weather.Location{Lat: x, Lon: y}, nil
}

// withStore opens the settings database for the duration of fn.  The
// database is not kept open, so that other processes can update it.
func (e *env) withStore(fn func(st *settings.Store) error) error {
	st, err := settings.Open(e.storePath)
	if err != nil {
		return err
	}
	err = fn(st)
	if cerr := st.Close(); err == nil {
		err = cerr
	}
	return err
}

// load returns the stored settings and weather report.
func (e *env) load() (settings.Settings, weather.Report, error) {
	var cfg settings.Settings
	var w weather.Report
	err := e.withStore(func(st *settings.Store) error {
		var err error
		cfg, err = st.Load()
		if err != nil {
			return err
		}
		w, err = st.LoadWeather()
		return err
	})
	return cfg, w, err
}

// refreshWeather fetches a new weather report and stores it.
func (e *env) refreshWeather(ctx context.Context) (weather.Report, error) {
	r := e.client.Update(ctx, e.loc)
	err := e.withStore(func(st *settings.Store) error {
		return st.SaveWeather(r)
	})
	return r, err
}

// lastWeather returns the report last fetched by this process.  If
// nothing has been fetched yet, stored is returned.
func (e *env) lastWeather(stored weather.Report) weather.Report {
	if r, ok := e.client.Last(); ok {
		return r
	}
	return stored
}

// sendWeather refreshes the weather and sends the report on ch.  It gives
// up on sending once ctx is done.
func (e *env) sendWeather(ctx context.Context, ch chan<- weather.Report) {
	r, err := e.refreshWeather(ctx)
	if err != nil {
		logger.Print(err)
	}
	select {
	case ch <- r:
	case <-ctx.Done():
	}
}

// readSteps returns the step count from the step file.  Without a step
// file, the count is 0.
func (e *env) readSteps() (int, error) {
	if e.stepsFile == "" {
		return 0, nil
	}
	data, err := os.ReadFile(e.stepsFile)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.stepsFile, err)
	}
	return n, nil
}
