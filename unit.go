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
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/fontmerge/coverage"
	"seehuhn.de/go/fontmerge/merge"
	"seehuhn.de/go/fontmerge/subset"
)

// A Unit identifies one merged font to generate, the combination of a
// target locale and a font weight.
type Unit struct {
	Locale string
	Weight string
}

func (u Unit) String() string {
	return u.Locale + "-" + u.Weight
}

// A Result reports the outcome of one unit.
type Result struct {
	// Unit identifies the (locale, weight) combination.
	Unit Unit

	// Path is the file the merged font was written to.  Path is empty
	// for dry runs and failed units.
	Path string

	// Fonts is the number of fonts which contributed to the merge,
	// or the number of ranked candidates in a dry run.
	Fonts int

	// CodePoints is the total number of code points covered by the
	// merged font.
	CodePoints int

	// Err reports why the unit failed.  Err is nil on success.
	Err error
}

// runUnit generates the merged font for one unit.  Partial fonts are
// staged in a subdirectory of tmpRoot which is removed before runUnit
// returns.
func (c *Config) runUnit(u Unit, tmpRoot string) Result {
	log := c.logger().WithField("unit", u.String())

	dir := filepath.Join(c.InputDir, u.Weight)
	cands, err := c.selectCandidates(dir, c.Locales[u.Locale], log)
	if err != nil {
		return Result{Unit: u, Err: err}
	}

	if c.DryRun {
		for i, cand := range cands {
			log.Infof("rank %d: %s", i, filepath.Base(cand.path))
		}
		return Result{Unit: u, Fonts: len(cands)}
	}

	tmpDir := filepath.Join(tmpRoot, u.String())
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return Result{Unit: u, Err: err}
	}
	defer os.RemoveAll(tmpDir)

	cumulative := make(coverage.Set)
	var partials []string
	total := 0
	for i, cand := range cands {
		fname := fmt.Sprintf("subset-%02d-%s", i, filepath.Base(cand.path))
		path := filepath.Join(tmpDir, fname)
		n, err := extractPartial(cand, cumulative, path)
		if err != nil {
			log.Warn(err)
			continue
		}
		log.Infof("%s contributes %d code points", filepath.Base(cand.path), n)
		partials = append(partials, path)
		total += n
	}
	if len(partials) == 0 {
		return Result{Unit: u, Err: ErrNothingToMerge}
	}

	merged, err := mergeFiles(partials)
	if err != nil {
		return Result{Unit: u, Err: fmt.Errorf("%w: %v", ErrMergeFailed, err)}
	}
	c.applyNames(merged, u)

	outPath := filepath.Join(c.OutputDir, c.outputName(u))
	if err := writeFont(outPath, merged); err != nil {
		return Result{Unit: u, Err: err}
	}
	return Result{Unit: u, Path: outPath, Fonts: len(partials), CodePoints: total}
}

// extractPartial writes the code points of cand not yet in cumulative
// to a partial font at path, and adds them to cumulative.  The code
// points are claimed first: if extraction fails, they are not offered
// to lower-ranked candidates.
func extractPartial(cand *candidate, cumulative coverage.Set, path string) (int, error) {
	sub, err := cand.font.CMapTable.GetBest()
	if err != nil {
		return 0, &CandidateError{
			Path: cand.path,
			Err:  fmt.Errorf("%w: %v", ErrNoUnicodeCMap, err),
		}
	}

	contribution := coverage.FromCMap(sub).Diff(cumulative)
	if contribution.Len() == 0 {
		return 0, &CandidateError{Path: cand.path, Err: ErrRedundantFont}
	}
	cumulative.AddSet(contribution)

	part, err := subset.Partial(cand.font, sub, contribution)
	if err != nil {
		return 0, &CandidateError{Path: cand.path, Err: err}
	}
	if err := writeFont(path, part); err != nil {
		return 0, &CandidateError{Path: cand.path, Err: err}
	}
	return contribution.Len(), nil
}

// mergeFiles reads the partial fonts back from disk and combines them
// into one font.
func mergeFiles(paths []string) (*sfnt.Font, error) {
	parts := make([]*sfnt.Font, len(paths))
	for i, path := range paths {
		font, err := readFont(path)
		if err != nil {
			return nil, err
		}
		parts[i] = font
	}
	return merge.Fonts(parts)
}

var weightClasses = map[string]os2.Weight{
	"Thin":       os2.WeightThin,
	"ExtraLight": os2.WeightExtraLight,
	"Light":      os2.WeightLight,
	"Regular":    os2.WeightNormal,
	"Medium":     os2.WeightMedium,
	"SemiBold":   os2.WeightSemiBold,
	"Bold":       os2.WeightBold,
	"ExtraBold":  os2.WeightExtraBold,
	"Black":      os2.WeightBlack,
}

// applyNames sets the family name and weight of a merged font.
func (c *Config) applyNames(font *sfnt.Font, u Unit) {
	font.FamilyName = c.familyName(u.Locale)

	w, ok := weightClasses[u.Weight]
	if !ok {
		w = os2.WeightFromString(u.Weight)
	}
	font.Weight = w
	font.IsBold = w == os2.WeightBold
	font.IsRegular = w == os2.WeightNormal && !font.IsItalic
}

func writeFont(path string, font *sfnt.Font) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = font.Write(fd)
	if e2 := fd.Close(); err == nil {
		err = e2
	}
	return err
}
