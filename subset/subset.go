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

// Package subset extracts partial fonts restricted to a set of code points.
package subset

import (
	"errors"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontmerge/coverage"
	"seehuhn.de/go/fontmerge/internal/cmapenc"
)

var (
	errNotGlyf  = errors.New("TrueType outlines required")
	errNoGlyphs = errors.New("no glyphs for the requested code points")
)

// Partial returns a minimal copy of font which covers exactly the code
// points in want.  Code points are resolved to glyphs using sub, which
// must be one of font's character map subtables.  The returned font has
// a fresh character map describing only the extracted code points; the
// glyph substitution, positioning and definition tables are not carried
// over.
func Partial(font *sfnt.Font, sub cmap.Subtable, want coverage.Set) (*sfnt.Font, error) {
	if !font.IsGlyf() {
		return nil, errNotGlyf
	}

	// Glyph 0 stays ".notdef".  Several code points can share one
	// glyph, so the new glyph ID is allocated on first use.
	glyphs := []glyph.ID{0}
	newGID := map[glyph.ID]glyph.ID{0: 0}
	enc := make(map[rune]glyph.ID, want.Len())
	for _, r := range want.Runes() {
		orig := sub.Lookup(r)
		if orig == 0 {
			continue
		}
		gid, ok := newGID[orig]
		if !ok {
			gid = glyph.ID(len(glyphs))
			newGID[orig] = gid
			glyphs = append(glyphs, orig)
		}
		enc[r] = gid
	}
	if len(enc) == 0 {
		return nil, errNoGlyphs
	}

	res := font.Clone()
	res.CMapTable = nil
	res.Gdef = nil
	res.Gsub = nil
	res.Gpos = nil
	res, err := res.Subset(glyphs)
	if err != nil {
		return nil, err
	}
	res.CMapTable = cmapenc.Table(enc)

	return res, nil
}
