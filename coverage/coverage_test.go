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

package coverage

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sfnt/cmap"
)

func TestSetOps(t *testing.T) {
	s := New('A', 'B', 'C')
	if s.Len() != 3 {
		t.Errorf("wrong size %d", s.Len())
	}
	if !s.Contains('B') {
		t.Error("missing 'B'")
	}
	if s.Contains('D') {
		t.Error("unexpected 'D'")
	}

	s.Add('D')
	if !s.Contains('D') {
		t.Error("missing 'D' after Add")
	}

	s.AddSet(New('E', 'A'))
	if s.Len() != 5 {
		t.Errorf("wrong size %d after AddSet", s.Len())
	}
}

func TestDiff(t *testing.T) {
	s := New('A', 'B', 'C', 'D')
	other := New('B', 'D', 'E')

	d := s.Diff(other)
	if diff := cmp.Diff([]rune{'A', 'C'}, d.Runes()); diff != "" {
		t.Errorf("wrong difference (-want +got):\n%s", diff)
	}

	// the difference must be disjoint from other
	for r := range d {
		if other.Contains(r) {
			t.Errorf("code point %q in both sets", r)
		}
	}

	// s must not change
	if s.Len() != 4 {
		t.Errorf("Diff changed the receiver, size %d", s.Len())
	}
}

func TestRunesSorted(t *testing.T) {
	s := New('z', 'a', 0x20000, 'm', '0')
	want := []rune{'0', 'a', 'm', 'z', 0x20000}
	if diff := cmp.Diff(want, s.Runes()); diff != "" {
		t.Errorf("wrong order (-want +got):\n%s", diff)
	}
}

func TestFromCMap(t *testing.T) {
	sub := cmap.Format4{
		uint16('A'): 1,
		uint16('B'): 2,
		uint16('C'): 0, // not mapped
		uint16('X'): 3,
	}
	got := FromCMap(sub)
	want := New('A', 'B', 'X')
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong coverage (-want +got):\n%s", diff)
	}
}
