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
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock/face"
)

var renderCommand = cli.Command{
	Name:  "render",
	Usage: "write the face as a PNG image",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "out", Value: "face.png", Usage: "output `FILE`"},
		cli.StringFlag{Name: "time", Usage: "time to show, in RFC 3339 format (default: now)"},
		cli.IntFlag{Name: "steps", Usage: "step count"},
		cli.IntFlag{Name: "scale", Value: 1, Usage: "magnification factor"},
	},
	Action: renderAction,
}

func renderAction(c *cli.Context) error {
	e, err := newEnv(c)
	if err != nil {
		return err
	}

	now := time.Now()
	if s := c.String("time"); s != "" {
		now, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("--time: %w", err)
		}
	}

	cfg, w, err := e.load()
	if err != nil {
		return err
	}
	st := face.State{Steps: c.Int("steps"), Weather: w}
	img := face.Render(now, cfg, st, c.Int("scale"))

	fname := c.String("out")
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Printf("wrote %s", fname)
	return nil
}
