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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock/face"
	"seehuhn.de/go/dotclock/internal/x11view"
	"seehuhn.de/go/dotclock/settings"
	"seehuhn.de/go/dotclock/weather"
)

var previewCommand = cli.Command{
	Name:  "preview",
	Usage: "run the face in an X11 window",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "scale", Value: 3, Usage: "magnification factor"},
	},
	Action: previewAction,
}

func previewAction(c *cli.Context) error {
	e, err := newEnv(c)
	if err != nil {
		return err
	}
	scale := max(c.Int("scale"), 1)

	win, err := x11view.Open("dotclock", face.Width*scale, face.Height*scale)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, w, err := e.load()
	if err != nil {
		logger.Print(err)
		cfg = settings.Defaults()
	}
	st := face.State{Weather: e.lastWeather(w)}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	reports := make(chan weather.Report)
	go e.sendWeather(ctx, reports)

	steps := time.NewTicker(stepPollInterval)
	defer steps.Stop()
	refresh := time.NewTicker(weather.RefreshInterval)
	defer refresh.Stop()
	minute := time.NewTimer(untilNextMinute(time.Now()))
	defer minute.Stop()

	show := func() {
		img := face.Render(time.Now(), cfg, st, scale)
		if err := win.Show(img); err != nil {
			logger.Print(err)
		}
	}
	show()

	for {
		select {
		case ev, ok := <-win.Events():
			if !ok || ev.Kind == x11view.Closed {
				return nil
			}
			switch ev.Kind {
			case x11view.Expose:
				win.Repaint()
			case x11view.Key:
				if ev.Key == "q" {
					return nil
				}
			}

		case now := <-minute.C:
			minute.Reset(untilNextMinute(now))
			show()

		case <-steps.C:
			n, err := e.readSteps()
			if err != nil {
				logger.Print(err)
				continue
			}
			if n != st.Steps {
				st.Steps = n
				show()
			}

		case <-refresh.C:
			go e.sendWeather(ctx, reports)

		case r := <-reports:
			st.Weather = r
			show()

		case <-hup:
			newCfg, w, err := e.load()
			if err != nil {
				logger.Print(err)
				continue
			}
			cfg, st.Weather = newCfg, e.lastWeather(w)
			logger.Print("settings reloaded")
			show()
		}
	}
}
