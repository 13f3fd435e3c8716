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
	"errors"
	"io"
	"os"

	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock/settings"
	"seehuhn.de/go/dotclock/weather"
)

var configureCommand = cli.Command{
	Name:      "configure",
	Usage:     "apply a companion message to the stored settings",
	ArgsUsage: "<message.json|->",
	Action:    configureAction,
}

func configureAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("configure: expected one message file")
	}
	e, err := newEnv(c)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if fname := c.Args().First(); fname != "-" {
		f, err := os.Open(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	m, err := settings.DecodeMessage(r)
	if err != nil {
		return err
	}

	var (
		cfg     settings.Settings
		changed bool
		w       *weather.Report
	)
	err = e.withStore(func(st *settings.Store) error {
		var err error
		cfg, changed, w, err = st.Update(m)
		return err
	})
	if err != nil {
		return err
	}

	if changed {
		logger.Printf("settings changed: %+v", cfg)
	} else {
		logger.Print("settings unchanged")
	}
	if w != nil {
		logger.Printf("weather: %d°C %s", w.Temperature, w.Condition)
	}
	return nil
}
