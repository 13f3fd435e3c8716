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

// Command export writes the circles drawn for every test case to
// testdata/ops.json.  The file is the golden reference for other
// implementations of the glyph renderer, for example on the watch itself.
// Run from the module root directory.
package main

import (
	"image/color"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/ugorji/go/codec"

	"seehuhn.de/go/dotclock"
	"seehuhn.de/go/dotclock/testcases"
)

type jsonCase struct {
	Name       string   `json:"name"`
	Digit      int      `json:"digit"`
	Loc        [4]int   `json:"loc"` // x, y, w, h
	Avail      int      `json:"avail"`
	AlignRight bool     `json:"align_right"`
	Bonus      int      `json:"bonus"`
	Circles    [][3]int `json:"circles"` // x, y, r
}

func main() {
	logger := log.New(os.Stderr, "export: ", 0)

	var out struct {
		Cases []jsonCase `json:"cases"`
	}

	rec := &dotclock.Recorder{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			rec.Reset()
			dotclock.DrawDigit(rec, tc.Loc, tc.Avail, tc.Digit, tc.AlignRight, color.White, tc.Bonus)
			out.Cases = append(out.Cases, toJSON(category, tc, rec.Ops))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		logger.Fatal(err)
	}
	f, err := os.Create("testdata/ops.json")
	if err != nil {
		logger.Fatal(err)
	}

	h := &codec.JsonHandle{Indent: 2, TermWhitespace: true}
	err = codec.NewEncoder(f, h).Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("wrote %d cases", len(out.Cases))
}

func toJSON(category string, tc testcases.TestCase, ops []dotclock.Op) jsonCase {
	jc := jsonCase{
		Name:       category + "_" + tc.Name,
		Digit:      tc.Digit,
		Loc:        [4]int{tc.Loc.Min.X, tc.Loc.Min.Y, tc.Loc.Dx(), tc.Loc.Dy()},
		Avail:      tc.Avail,
		AlignRight: tc.AlignRight,
		Bonus:      tc.Bonus,
		Circles:    make([][3]int, 0, len(ops)),
	}
	for _, op := range ops {
		jc.Circles = append(jc.Circles, [3]int{op.Center.X, op.Center.Y, op.Radius})
	}
	return jc
}
