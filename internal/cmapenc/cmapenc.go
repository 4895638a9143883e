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

// Package cmapenc builds character map tables for generated fonts.
package cmapenc

import (
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Table encodes the given mapping as a TrueType "cmap" table.  The
// mapping is stored once and registered for both the Unicode and the
// Windows platform.  A format 4 subtable is used while all code points
// are in the basic multilingual plane, a format 12 subtable otherwise.
func Table(enc map[rune]glyph.ID) cmap.Table {
	wide := false
	for r := range enc {
		if r > 0xFFFF {
			wide = true
			break
		}
	}

	var data []byte
	uniEncoding := uint16(3)
	winEncoding := uint16(1)
	if wide {
		uniEncoding = 4
		winEncoding = 10
		sub := cmap.Format12{}
		for r, gid := range enc {
			sub[uint32(r)] = gid
		}
		data = sub.Encode(0)
	} else {
		sub := cmap.Format4{}
		for r, gid := range enc {
			sub[uint16(r)] = gid
		}
		data = sub.Encode(0)
	}

	return cmap.Table{
		{PlatformID: 0, EncodingID: uniEncoding}: data,
		{PlatformID: 3, EncodingID: winEncoding}: data,
	}
}
