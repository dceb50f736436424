/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package caserepl implements a bulk find-and-replace engine that preserves
// the casing style of each occurrence it rewrites. A single rule installed
// with PreserveCase simultaneously matches one_two_three, OneTwoThree,
// oneTwoThree, ONE-TWO-THREE and the other five canonical casing renderings
// of its pattern, and rewrites each hit into the corresponding rendering of
// its replacement.
//
// # Core Pieces
//
//   - Replacer: owns the installed rules and drives a scan.
//   - AddReplacement: installs one rule under a case mode and an optional
//     whole-word constraint.
//   - FindAndReplace / Replace: scan an input buffer and stream, or return,
//     the replaced text.
//
// # Case Modes
//
//   - PreserveCase: decomposes the pattern and replacement into word lists
//     and installs all nine casing renderings as exact-match variants.
//   - IgnoreCase: installs the literal pattern under ASCII case folding.
//   - MatchCase: installs the literal pattern under byte-exact matching.
//
// Multiple rules, each with its own mode, coexist in one Replacer; when two
// rules could both fire at overlapping positions, the left-most match wins,
// ties go to an exact-mode rule over an ignore-case one, and the longest
// match wins within either.
package caserepl

import (
	"bytes"
	"errors"
	"io"

	"github.com/twinfer/caserepl/internal/casetrie"
	"github.com/twinfer/caserepl/internal/casing"
)

// Mode selects how a rule's pattern is matched against input text.
type Mode int

const (
	// PreserveCase matches any of the nine canonical casing renderings of
	// find and rewrites each hit into the corresponding rendering of
	// replace.
	PreserveCase Mode = iota
	// IgnoreCase matches find under ASCII case folding and substitutes the
	// literal replacement text unchanged.
	IgnoreCase
	// MatchCase matches find byte-for-byte and substitutes the literal
	// replacement text unchanged.
	MatchCase
)

// ErrInvalidArgument is returned by AddReplacement for an empty find, an
// unrecognized mode, or (under PreserveCase) a find that splits into zero
// words.
var ErrInvalidArgument = errors.New("caserepl: invalid argument")

// ErrDuplicateToken is returned by AddReplacement when find, under
// IgnoreCase or MatchCase, is already present in the target pattern set.
// Under PreserveCase, colliding renderings are tolerated silently: that
// path never returns this error.
var ErrDuplicateToken = errors.New("caserepl: duplicate token")

// Replacer owns one case-sensitive and one case-insensitive pattern set. It
// is safe for concurrent use by FindAndReplace/Replace once rule
// installation has finished; AddReplacement itself is not safe to call
// concurrently with scans or with other AddReplacement calls.
type Replacer struct {
	exact *casetrie.PatternSet
	fold  *casetrie.PatternSet
}

// New returns a Replacer with no rules installed.
func New() *Replacer {
	return &Replacer{
		exact: casetrie.NewPatternSet(casetrie.Exact),
		fold:  casetrie.NewPatternSet(casetrie.Fold),
	}
}

// AddReplacement installs one rule. find must be non-empty; replace may be
// empty (a rule may delete its match). wholeWord, when true, requires both
// edges of a match to sit on a non-alphanumeric boundary or the edge of the
// input.
func (r *Replacer) AddReplacement(find, replace string, mode Mode, wholeWord bool) error {
	if find == "" {
		return ErrInvalidArgument
	}

	switch mode {
	case PreserveCase:
		findWords := casing.SplitWords(find)
		if len(findWords) == 0 {
			return ErrInvalidArgument
		}
		replaceWords := casing.SplitWords(replace)
		for _, render := range casing.Renderings {
			key := []byte(render(findWords))
			rep := []byte(render(replaceWords))
			if _, err := r.exact.Add(key, rep, wholeWord); err != nil {
				return err
			}
		}
		return nil

	case IgnoreCase:
		added, err := r.fold.Add([]byte(find), []byte(replace), wholeWord)
		if err != nil {
			return err
		}
		if !added {
			return ErrDuplicateToken
		}
		return nil

	case MatchCase:
		added, err := r.exact.Add([]byte(find), []byte(replace), wholeWord)
		if err != nil {
			return err
		}
		if !added {
			return ErrDuplicateToken
		}
		return nil

	default:
		return ErrInvalidArgument
	}
}

// FindAndReplace scans input and writes the replaced text to sink via one
// or more Write calls, in left-to-right order. It returns immediately,
// without calling sink, when input is empty. The byte slices passed to
// Write are only valid for the duration of that call.
func (r *Replacer) FindAndReplace(input []byte, sink io.Writer) error {
	if len(input) == 0 {
		return nil
	}
	return r.scan(input, sink)
}

// Replace runs FindAndReplace against input and returns the result as a new
// string.
func (r *Replacer) Replace(input string) (string, error) {
	var buf bytes.Buffer
	buf.Grow(len(input))
	if err := r.FindAndReplace([]byte(input), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
