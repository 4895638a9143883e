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

// Package fontmerge builds multi-script fonts from single-script donors.
//
// For every combination of a configured locale and weight, the package
// scans a directory of candidate fonts, orders the candidates using the
// locale's ranking table, extracts from each candidate the code points
// not already covered by higher-ranked candidates, and merges the
// extracted parts into a single font file:
//
//	cfg := fontmerge.DefaultConfig()
//	cfg.InputDir = "fonts"
//	cfg.OutputDir = "out"
//	results, err := fontmerge.Run(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, res := range results {
//	    ... inspect res.Path or res.Err ...
//	}
//
// Every code point in a generated font is backed by exactly one donor,
// the highest-ranked candidate which defines it.  Failures are local:
// an unusable candidate is skipped, and a failed (locale, weight)
// combination does not stop the others.
package fontmerge
