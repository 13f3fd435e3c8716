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
	"image/color"

	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock"
	"seehuhn.de/go/dotclock/pdfout"
)

var proofCommand = cli.Command{
	Name:  "proof",
	Usage: "write all ten digits to a PDF file",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "out", Value: "digits.pdf", Usage: "output `FILE`"},
		cli.IntFlag{Name: "height", Value: 52, Usage: "glyph height in points"},
		cli.IntFlag{Name: "bonus", Usage: "dot thickness bonus"},
	},
	Action: proofAction,
}

func proofAction(c *cli.Context) error {
	rec := &dotclock.Recorder{}
	size := pdfout.Sheet(rec, c.Int("height"), c.Int("bonus"), color.White)

	fname := c.String("out")
	if err := pdfout.Write(fname, size, color.Black, rec); err != nil {
		return err
	}
	logger.Printf("wrote %s (%d dots)", fname, len(rec.Ops))
	return nil
}
