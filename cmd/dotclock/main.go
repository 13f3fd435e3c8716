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

// Command dotclock renders and runs the dot-matrix watchface.
//
// Configuration is taken from flags, from the environment and from a
// dotenv file.  The name of the dotenv file is given by $DOTCLOCK_ENV and
// defaults to ".env"; variables which are already set take precedence.
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock/weather"
)

var logger = log.New(os.Stderr, "dotclock: ", 0)

func main() {
	loadEnv()

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

// loadEnv reads the dotenv file, if there is one.
func loadEnv() {
	fname := os.Getenv("DOTCLOCK_ENV")
	if fname == "" {
		fname = ".env"
	}
	err := godotenv.Load(fname)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Printf("%s: %v", fname, err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "dotclock"
	app.Usage = "a dot-matrix watchface"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "store",
			Value:  "dotclock.db",
			Usage:  "settings database `FILE`",
			EnvVar: "DOTCLOCK_STORE",
		},
		cli.StringFlag{
			Name:   "lat",
			Usage:  "latitude for the weather report",
			EnvVar: "DOTCLOCK_LAT",
		},
		cli.StringFlag{
			Name:   "lon",
			Usage:  "longitude for the weather report",
			EnvVar: "DOTCLOCK_LON",
		},
		cli.StringFlag{
			Name:   "weather-url",
			Value:  weather.DefaultBaseURL,
			Usage:  "base `URL` of the Open-Meteo API",
			EnvVar: "DOTCLOCK_WEATHER_URL",
		},
		cli.StringFlag{
			Name:   "steps-file",
			Usage:  "`FILE` holding the current step count",
			EnvVar: "DOTCLOCK_STEPS_FILE",
		},
	}
	app.Commands = []cli.Command{
		renderCommand,
		proofCommand,
		configureCommand,
		watchCommand,
		previewCommand,
	}
	return app
}
