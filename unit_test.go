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
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/os2"
)

// testUnitSetup builds an input tree with one "Regular" weight
// directory holding three donor fonts.  The SC font covers A, B, C,
// the JP font covers B, D, and the KR font covers only B, so KR is
// redundant once SC has claimed B.
func testUnitSetup(t *testing.T) *Config {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "in", "Regular")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestFont(t, dir, "NotoSansSC-Regular.ttf",
		map[rune]funit.Int16{'A': 601, 'B': 602, 'C': 603})
	writeTestFont(t, dir, "NotoSansJP-Regular.ttf",
		map[rune]funit.Int16{'B': 777, 'D': 333})
	writeTestFont(t, dir, "NotoSansKR-Regular.ttf",
		map[rune]funit.Int16{'B': 888})

	cfg := DefaultConfig()
	cfg.InputDir = filepath.Join(root, "in")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.Log = testLogger()
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRunUnit(t *testing.T) {
	cfg := testUnitSetup(t)
	tmpRoot := t.TempDir()

	u := Unit{Locale: "sc", Weight: "Regular"}
	res := cfg.runUnit(u, tmpRoot)
	if res.Err != nil {
		t.Fatal(res.Err)
	}

	if res.Fonts != 2 {
		t.Errorf("wrong number of fonts: %d", res.Fonts)
	}
	if res.CodePoints != 4 {
		t.Errorf("wrong number of code points: %d", res.CodePoints)
	}
	want := filepath.Join(cfg.OutputDir, "sc-NotoSansMultilanguage-Regular.ttf")
	if res.Path != want {
		t.Errorf("wrong output path %q", res.Path)
	}

	font, err := readFont(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if font.FamilyName != "Noto Sans Multilanguage SC" {
		t.Errorf("wrong family name %q", font.FamilyName)
	}
	if font.Weight != os2.WeightNormal {
		t.Errorf("wrong weight %d", font.Weight)
	}
	if !font.IsRegular {
		t.Error("IsRegular not set")
	}

	sub, err := font.CMapTable.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	// SC claims B first, so the merged font has the SC width.
	widths := map[rune]funit.Int16{'A': 601, 'B': 602, 'C': 603, 'D': 333}
	for r, w := range widths {
		gid := sub.Lookup(r)
		if gid == 0 {
			t.Errorf("%q not mapped", r)
			continue
		}
		if got := font.GlyphWidth(gid); got != w {
			t.Errorf("wrong width for %q: %d, want %d", r, got, w)
		}
	}
	if gid := sub.Lookup('E'); gid != 0 {
		t.Errorf("unexpected glyph %d for %q", gid, 'E')
	}

	// the unit's staging directory must be gone
	_, err = os.Stat(filepath.Join(tmpRoot, "sc-Regular"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("staging directory not removed: %v", err)
	}
}

func TestRunUnitNothingToMerge(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "in", "Regular")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"One.ttf", "Two.ttf"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("not a font"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	cfg := DefaultConfig()
	cfg.InputDir = filepath.Join(root, "in")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.Log = testLogger()

	res := cfg.runUnit(Unit{Locale: "sc", Weight: "Regular"}, t.TempDir())
	if !errors.Is(res.Err, ErrNothingToMerge) {
		t.Errorf("wrong error: %v", res.Err)
	}
}

func TestRunUnitMissingDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.Log = testLogger()

	res := cfg.runUnit(Unit{Locale: "sc", Weight: "Bold"}, t.TempDir())
	if !errors.Is(res.Err, ErrMissingInputDir) {
		t.Errorf("wrong error: %v", res.Err)
	}
}

func TestRunUnitIdempotent(t *testing.T) {
	cfg := testUnitSetup(t)
	u := Unit{Locale: "sc", Weight: "Regular"}

	res := cfg.runUnit(u, t.TempDir())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	first, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}

	res = cfg.runUnit(u, t.TempDir())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	second, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("output file changed between runs")
	}
}
