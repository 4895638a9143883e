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
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
)

// A RankingTable orders candidate fonts for one locale.  Keys are
// lower-case substrings matched against candidate file names, values
// are priorities.  Smaller values sort earlier, so the key with the
// smallest value names the locale's preferred donor.
type RankingTable map[string]int

// Rank returns the priority of the candidate file name, or a value
// larger than all table entries if no key matches.  Keys are tried in
// order of increasing priority, so of several matching keys the most
// preferred one wins.
func (t RankingTable) Rank(name string) int {
	name = strings.ToLower(name)
	keys := maps.Keys(t)
	sort.Slice(keys, func(i, j int) bool {
		if t[keys[i]] != t[keys[j]] {
			return t[keys[i]] < t[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		if strings.Contains(name, key) {
			return t[key]
		}
	}
	return math.MaxInt
}

// Config describes one consolidation run.
type Config struct {
	// Family is the base family name of the generated fonts.  The
	// locale, in upper case, is appended to form the full family name.
	Family string `json:"family"`

	// Weights lists the weight directories to process, in the order in
	// which results are reported.
	Weights []string `json:"weights"`

	// Locales maps each target locale to its candidate ranking table.
	Locales map[string]RankingTable `json:"locales"`

	// InputDir is the directory holding one subdirectory per weight.
	InputDir string `json:"input"`

	// OutputDir is the directory the merged fonts are written to.
	OutputDir string `json:"output"`

	// UnitsPerEm is the design grid size all candidates must share.
	UnitsPerEm uint16 `json:"unitsPerEm,omitempty"`

	// Jobs limits the number of units processed in parallel.
	// Zero means one worker per CPU.
	Jobs int `json:"jobs,omitempty"`

	// DryRun reports the selected candidates without extracting or
	// merging anything.
	DryRun bool `json:"-"`

	// Log receives progress and warnings.  If Log is nil, the logrus
	// standard logger is used.
	Log logrus.FieldLogger `json:"-"`
}

// DefaultConfig returns the configuration for merging the Noto Sans
// family into a simplified-Chinese-first font.
func DefaultConfig() *Config {
	return &Config{
		Family: "Noto Sans Multilanguage",
		Weights: []string{
			"Thin",
			"Light",
			"Regular",
			"Medium",
			"SemiBold",
			"Bold",
			"ExtraBold",
			"Black",
		},
		Locales: map[string]RankingTable{
			"sc": {
				"notosanssc": 0,
				"notosanstc": 1,
				"notosanshk": 2,
				"notosansjp": 3,
				"notosanskr": 4,
			},
		},
		InputDir:   "used-fonts",
		OutputDir:  "NotoMultilanguageFonts",
		UnitsPerEm: 1000,
	}
}

// LoadConfig reads a configuration file in JSON format.  Fields not
// present in the file keep their default values.
func LoadConfig(fname string) (*Config, error) {
	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var file Config
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	cfg := DefaultConfig()
	if file.Family != "" {
		cfg.Family = file.Family
	}
	if file.Weights != nil {
		cfg.Weights = file.Weights
	}
	if file.Locales != nil {
		cfg.Locales = file.Locales
	}
	if file.InputDir != "" {
		cfg.InputDir = file.InputDir
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.UnitsPerEm != 0 {
		cfg.UnitsPerEm = file.UnitsPerEm
	}
	if file.Jobs != 0 {
		cfg.Jobs = file.Jobs
	}
	return cfg, nil
}

// normalize rewrites locale keys to their canonical BCP 47 form where
// possible.  Informal tags like "sc" are kept as given.
func (c *Config) normalize() {
	locales := make(map[string]RankingTable, len(c.Locales))
	for locale, table := range c.Locales {
		if tag, err := language.Parse(locale); err == nil {
			locale = tag.String()
		}
		locales[locale] = table
	}
	c.Locales = locales
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// workers returns the number of worker goroutines to use for nUnits
// units.
func (c *Config) workers(nUnits int) int {
	n := c.Jobs
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > nUnits {
		n = nUnits
	}
	return n
}

// units lists all (locale, weight) combinations of the configuration.
// Locales are ordered alphabetically, weights in configuration order.
func (c *Config) units() []Unit {
	locales := maps.Keys(c.Locales)
	sort.Strings(locales)

	var units []Unit
	for _, locale := range locales {
		for _, weight := range c.Weights {
			units = append(units, Unit{Locale: locale, Weight: weight})
		}
	}
	return units
}

// outputName returns the file name for the merged font of a unit.
func (c *Config) outputName(u Unit) string {
	family := strings.ReplaceAll(c.Family, " ", "")
	return u.Locale + "-" + family + "-" + u.Weight + ".ttf"
}

// familyName returns the family name recorded in a unit's merged font.
func (c *Config) familyName(locale string) string {
	return c.Family + " " + strings.ToUpper(locale)
}
