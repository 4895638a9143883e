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

import "errors"

// Fatal errors abort a whole run.  Everything else is local to a single
// candidate font or a single (locale, weight) unit and is reported via
// the unit's Result.
var (
	// ErrMissingInputDir indicates that a weight's input directory does
	// not exist.
	ErrMissingInputDir = errors.New("input directory not found")

	// ErrInsufficientCandidates indicates that a weight's input
	// directory holds fewer than two usable font files.
	ErrInsufficientCandidates = errors.New("fewer than two candidate fonts")

	// ErrIncompatibleFont indicates a candidate file which cannot be
	// used, either because it cannot be parsed or because its design
	// grid does not match the other candidates.
	ErrIncompatibleFont = errors.New("font cannot be used")

	// ErrNoUnicodeCMap indicates a candidate font without a usable
	// unicode character map.
	ErrNoUnicodeCMap = errors.New("no unicode character map")

	// ErrRedundantFont indicates a candidate whose code points are all
	// covered by higher-ranked candidates.
	ErrRedundantFont = errors.New("no new code points")

	// ErrNothingToMerge indicates that no partial fonts could be
	// extracted for a unit.
	ErrNothingToMerge = errors.New("no partial fonts extracted")

	// ErrMergeFailed indicates that the extracted partial fonts could
	// not be combined into one font.
	ErrMergeFailed = errors.New("cannot merge partial fonts")
)

// CandidateError reports a problem with a single candidate font file.
// The candidate is skipped and processing continues with the remaining
// candidates.
type CandidateError struct {
	Path string
	Err  error
}

func (e *CandidateError) Error() string {
	return "cannot use " + e.Path + ": " + e.Err.Error()
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
