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
	"sync"
)

// Run generates the merged fonts for all (locale, weight) combinations
// of the configuration.  Units are processed in parallel, and one
// Result per unit is returned, locales in alphabetical order, weights
// in configuration order.
//
// Run returns an error only if the run as a whole cannot start.  A
// failed unit does not stop the others; its error is reported in the
// corresponding Result.
func Run(cfg *Config) ([]Result, error) {
	cfg.normalize()
	log := cfg.logger()

	if _, err := os.Stat(cfg.InputDir); err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, err
		}
	}
	tmpRoot, err := os.MkdirTemp("", "fontmerge-")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpRoot); err != nil {
			log.Warnf("cannot remove %s: %v", tmpRoot, err)
		}
	}()

	units := cfg.units()
	order := make(map[Unit]int, len(units))
	for i, u := range units {
		order[u] = i
	}

	unitCh := make(chan Unit)
	resCh := make(chan Result)
	var wg sync.WaitGroup
	nWorkers := cfg.workers(len(units))
	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range unitCh {
				resCh <- cfg.runUnitSafe(u, tmpRoot)
			}
		}()
	}
	go func() {
		for _, u := range units {
			unitCh <- u
		}
		close(unitCh)
	}()
	go func() {
		wg.Wait()
		close(resCh)
	}()

	results := make([]Result, len(units))
	for res := range resCh {
		results[order[res.Unit]] = res
	}

	nOK := 0
	for _, res := range results {
		if res.Err != nil {
			log.Warnf("%s: %v", res.Unit, res.Err)
			continue
		}
		nOK++
		if res.Path != "" {
			log.Infof("%s: saved %s (%d fonts, %d code points)",
				res.Unit, res.Path, res.Fonts, res.CodePoints)
		}
	}
	log.Infof("%d of %d units done", nOK, len(units))

	return results, nil
}

// runUnitSafe shields the other units from panics in one unit.
func (c *Config) runUnitSafe(u Unit, tmpRoot string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Unit: u, Err: fmt.Errorf("internal error: %v", r)}
		}
	}()
	return c.runUnit(u, tmpRoot)
}
