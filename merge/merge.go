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

// Package merge combines several TrueType fonts into one.
package merge

import (
	"errors"
	"fmt"
	"unicode"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontmerge/internal/cmapenc"
)

// Fonts merges the given fonts into a single font.  All fonts must use
// TrueType outlines and share the same units per em.
//
// The glyphs of all fonts are concatenated in the order given, with
// composite glyph references adjusted to the new glyph IDs.  A code
// point defined by more than one font is taken from the first font
// which defines it.  The name, style and hinting support tables of the
// result come from the first font.  Glyph names, vertical layout
// metrics and mathematical typesetting data are not carried over.
func Fonts(parts []*sfnt.Font) (*sfnt.Font, error) {
	if len(parts) == 0 {
		return nil, errors.New("no fonts to merge")
	}

	first, ok := parts[0].Outlines.(*glyf.Outlines)
	if !ok {
		return nil, errors.New("TrueType outlines required")
	}

	combined := &glyf.Outlines{
		Tables: make(map[string][]byte),
		Maxp:   first.Maxp,
	}
	for name, data := range first.Tables {
		switch name {
		case "vmtx", "vhea", "MATH":
			continue
		}
		combined.Tables[name] = data
	}

	enc := make(map[rune]glyph.ID)
	for i, part := range parts {
		if part.UnitsPerEm != parts[0].UnitsPerEm {
			return nil, fmt.Errorf("font %d: units per em %d, want %d",
				i, part.UnitsPerEm, parts[0].UnitsPerEm)
		}
		outlines, ok := part.Outlines.(*glyf.Outlines)
		if !ok {
			return nil, fmt.Errorf("font %d: TrueType outlines required", i)
		}
		sub, err := part.CMapTable.GetBest()
		if err != nil {
			return nil, fmt.Errorf("font %d: %w", i, err)
		}

		base := glyph.ID(len(combined.Glyphs))
		shift := make(map[glyph.ID]glyph.ID, len(outlines.Glyphs))
		for gid := range outlines.Glyphs {
			shift[glyph.ID(gid)] = base + glyph.ID(gid)
		}
		for _, g := range outlines.Glyphs {
			combined.Glyphs = append(combined.Glyphs, g.FixComponents(shift))
		}
		combined.Widths = append(combined.Widths, outlines.Widths...)

		low, high := sub.CodeRange()
		if high > unicode.MaxRune {
			high = unicode.MaxRune
		}
		for r := low; r <= high; r++ {
			gid := sub.Lookup(r)
			if gid == 0 {
				continue
			}
			if _, ok := enc[r]; ok {
				continue // an earlier font wins
			}
			enc[r] = base + gid
		}
	}

	res := parts[0].Clone()
	res.Outlines = combined
	res.CMapTable = cmapenc.Table(enc)
	res.Gdef = nil
	res.Gsub = nil
	res.Gpos = nil

	return res, nil
}
