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

package cmapenc

import (
	"bytes"
	"testing"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

func TestTableNarrow(t *testing.T) {
	table := Table(map[rune]glyph.ID{'A': 1, 'B': 2})

	uni, ok := table[cmap.Key{PlatformID: 0, EncodingID: 3}]
	if !ok {
		t.Fatal("no Unicode BMP subtable")
	}
	win, ok := table[cmap.Key{PlatformID: 3, EncodingID: 1}]
	if !ok {
		t.Fatal("no Windows BMP subtable")
	}
	if !bytes.Equal(uni, win) {
		t.Error("platforms use different subtables")
	}

	sub, err := table.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	if gid := sub.Lookup('A'); gid != 1 {
		t.Errorf("Lookup('A') = %d, want 1", gid)
	}
	if gid := sub.Lookup('C'); gid != 0 {
		t.Errorf("Lookup('C') = %d, want 0", gid)
	}
}

func TestTableWide(t *testing.T) {
	table := Table(map[rune]glyph.ID{'A': 1, 0x20021: 2})

	if _, ok := table[cmap.Key{PlatformID: 0, EncodingID: 4}]; !ok {
		t.Error("no Unicode full subtable")
	}
	if _, ok := table[cmap.Key{PlatformID: 3, EncodingID: 10}]; !ok {
		t.Error("no Windows full subtable")
	}

	sub, err := table.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	if gid := sub.Lookup(0x20021); gid != 2 {
		t.Errorf("Lookup(0x20021) = %d, want 2", gid)
	}
	if gid := sub.Lookup('A'); gid != 1 {
		t.Errorf("Lookup('A') = %d, want 1", gid)
	}
}
