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

package fontmerge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/sfnt"
)

// A candidate is a font file which may contribute glyphs to a merged
// font.  Candidates with smaller rank contribute first.
type candidate struct {
	path string
	font *sfnt.Font
	rank int
}

// selectCandidates loads the usable fonts from a weight directory,
// ordered by the locale's ranking table.  Unreadable and incompatible
// fonts are logged and skipped.  The sort is stable, so candidates the
// table does not mention keep their directory order, after all ranked
// candidates.
func (c *Config) selectCandidates(dir string, table RankingTable, log logrus.FieldLogger) ([]*candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputDir, dir)
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".ttf") || strings.Contains(name, "condensed") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: %d usable files in %s",
			ErrInsufficientCandidates, len(names), dir)
	}

	var cands []*candidate
	for _, name := range names {
		path := filepath.Join(dir, name)
		font, err := readFont(path)
		if err != nil {
			log.Warn(&CandidateError{
				Path: path,
				Err:  fmt.Errorf("%w: %v", ErrIncompatibleFont, err),
			})
			continue
		}
		if font.UnitsPerEm != c.UnitsPerEm {
			log.Warn(&CandidateError{
				Path: path,
				Err: fmt.Errorf("%w: units per em %d, need %d",
					ErrIncompatibleFont, font.UnitsPerEm, c.UnitsPerEm),
			})
			continue
		}
		cands = append(cands, &candidate{
			path: path,
			font: font,
			rank: table.Rank(name),
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].rank < cands[j].rank
	})
	return cands, nil
}

func readFont(path string) (*sfnt.Font, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return sfnt.Read(fd)
}
