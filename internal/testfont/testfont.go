// seehuhn.de/go/fontmerge - merge single-script fonts into multi-script families
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

// Package testfont creates small TrueType fonts for use in tests.
package testfont

import (
	"os"
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontmerge/internal/cmapenc"
)

// Fonts are stamped with a fixed date, so that identical inputs give
// byte-identical files.
var refTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// New returns a font with 1000 units per em covering the given code
// points.  Each code point gets a glyph of its own, using the advance
// width from the map; distinct widths let tests identify which donor a
// glyph came from.
func New(family string, widths map[rune]funit.Int16) *sfnt.Font {
	rr := maps.Keys(widths)
	sort.Slice(rr, func(i, j int) bool {
		return rr[i] < rr[j]
	})

	enc := make(map[rune]glyph.ID, len(rr))
	ww := make([]funit.Int16, len(rr)+1)
	ww[0] = 500 // .notdef
	for i, r := range rr {
		enc[r] = glyph.ID(i + 1)
		ww[i+1] = widths[r]
	}

	return &sfnt.Font{
		FamilyName:       family,
		UnitsPerEm:       1000,
		CreationTime:     refTime,
		ModificationTime: refTime,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, len(rr)+1),
			Widths: ww,
		},
		CMapTable: cmapenc.Table(enc),
	}
}

// Shared returns a font where several code points can share a glyph.
// The gids map assigns a glyph to each code point; widths lists the
// advance widths of all glyphs, including ".notdef" at index 0.
func Shared(family string, gids map[rune]glyph.ID, widths []funit.Int16) *sfnt.Font {
	return &sfnt.Font{
		FamilyName:       family,
		UnitsPerEm:       1000,
		CreationTime:     refTime,
		ModificationTime: refTime,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, len(widths)),
			Widths: widths,
		},
		CMapTable: cmapenc.Table(gids),
	}
}

// Write stores the font at path.
func Write(path string, font *sfnt.Font) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = font.Write(fd)
	if closeErr := fd.Close(); err == nil {
		err = closeErr
	}
	return err
}
