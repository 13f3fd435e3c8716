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

// Command genpdf writes one PDF proof page per digit test case, plus a
// sheet with the complete glyph set, into testdata/proof.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dotclock"
	"seehuhn.de/go/dotclock/pdfout"
	"seehuhn.de/go/dotclock/testcases"
)

const proofDir = "testdata/proof"

func main() {
	logger := log.New(os.Stderr, "genpdf: ", 0)

	if err := os.MkdirAll(proofDir, 0755); err != nil {
		logger.Fatal(err)
	}

	rec := &dotclock.Recorder{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			rec.Reset()
			dotclock.DrawDigit(rec, tc.Loc, tc.Avail, tc.Digit, tc.AlignRight, color.White, tc.Bonus)

			fname := filepath.Join(proofDir, name+".pdf")
			size := image.Pt(tc.Width, tc.Height)
			if err := pdfout.Write(fname, size, color.Black, rec); err != nil {
				logger.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	for bonus := range 4 {
		rec.Reset()
		size := pdfout.Sheet(rec, 52, bonus, color.White)
		fname := filepath.Join(proofDir, fmt.Sprintf("sheet_b%d.pdf", bonus))
		if err := pdfout.Write(fname, size, color.Black, rec); err != nil {
			logger.Fatal(err)
		}
	}
}
