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

// Package coverage represents the sets of code points fonts define.
package coverage

import (
	"sort"
	"unicode"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt/cmap"
)

// Set is a set of Unicode code points.
type Set map[rune]struct{}

// New returns a Set containing the given code points.
func New(rr ...rune) Set {
	s := make(Set, len(rr))
	for _, r := range rr {
		s[r] = struct{}{}
	}
	return s
}

// FromCMap returns the set of code points the subtable maps to a glyph.
// Code points mapped to glyph 0 (".notdef") do not count as covered.
func FromCMap(sub cmap.Subtable) Set {
	s := make(Set)
	low, high := sub.CodeRange()
	if high > unicode.MaxRune {
		high = unicode.MaxRune
	}
	for r := low; r <= high; r++ {
		if sub.Lookup(r) != 0 {
			s[r] = struct{}{}
		}
	}
	return s
}

// Add inserts r into the set.
func (s Set) Add(r rune) {
	s[r] = struct{}{}
}

// AddSet inserts all elements of other into the set.
func (s Set) AddSet(other Set) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Contains reports whether r is in the set.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Diff returns the elements of s which are not in other.
func (s Set) Diff(other Set) Set {
	res := make(Set)
	for r := range s {
		if _, ok := other[r]; !ok {
			res[r] = struct{}{}
		}
	}
	return res
}

// Len returns the number of code points in the set.
func (s Set) Len() int {
	return len(s)
}

// Runes returns the elements of the set in increasing order.
func (s Set) Runes() []rune {
	rr := maps.Keys(s)
	sort.Slice(rr, func(i, j int) bool {
		return rr[i] < rr[j]
	})
	return rr
}
