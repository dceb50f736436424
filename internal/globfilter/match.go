/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package globfilter matches file paths against shell-style glob patterns
// for the CLI's --extensions flag. It is an ASCII-only, non-recursive
// backtracking matcher: ASCII input dominates source trees, so this trades
// the Unicode generality of a full glob engine for direct byte comparison.
package globfilter

import (
	"bytes"
	"errors"
	"slices"
	"strings"
)

// ErrBadPattern indicates a pattern was malformed (an unterminated
// character class).
var ErrBadPattern = errors.New("globfilter: syntax error in pattern")

const (
	wildcardStar     = '*'
	wildcardQuestion = '?'
	wildcardDot      = '.'
	wildcardBracket  = '['
	wildcardEscape   = '\\'
)

var isWildcardTable = [256]bool{
	'*':  true,
	'?':  true,
	'.':  true,
	'[':  true,
	'\\': true,
}

func isWildcardByte(b byte) bool {
	return isWildcardTable[b]
}

type charRange struct {
	Start byte
	End   byte
}

type charClass struct {
	Negated bool
	Chars   []byte
	Ranges  []charRange
}

func (cc *charClass) matches(char byte, fold bool) bool {
	test := char
	if fold {
		test = toLowerASCII(char)
	}

	matched := slices.ContainsFunc(cc.Chars, func(c byte) bool {
		if fold {
			return toLowerASCII(c) == test
		}
		return c == test
	})

	if !matched {
		for _, r := range cc.Ranges {
			lo, hi := r.Start, r.End
			if fold {
				lo, hi = toLowerASCII(lo), toLowerASCII(hi)
			}
			if test >= lo && test <= hi {
				matched = true
				break
			}
		}
	}

	if cc.Negated {
		matched = !matched
	}
	return matched
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// newCharClass parses the bracket expression at pi and returns it along with
// the position just past its closing ']'.
func newCharClass[T ~string | ~[]byte](pattern T, pi int) (*charClass, int, error) {
	if pi >= len(pattern) || pattern[pi] != wildcardBracket {
		return nil, pi, ErrBadPattern
	}

	pi++
	if pi >= len(pattern) {
		return nil, pi, ErrBadPattern
	}

	cc := &charClass{}

	if pi < len(pattern) && (pattern[pi] == '^' || pattern[pi] == '!') {
		cc.Negated = true
		pi++
		if pi >= len(pattern) {
			return nil, pi, ErrBadPattern
		}
	}

	firstChar := true
	closed := false

	for pi < len(pattern) {
		if pattern[pi] == ']' && !firstChar {
			pi++
			closed = true
			break
		}
		firstChar = false

		var c1 byte
		if pattern[pi] == wildcardEscape {
			pi++
			if pi >= len(pattern) {
				return nil, pi, ErrBadPattern
			}
			c1 = pattern[pi]
			pi++
		} else {
			c1 = pattern[pi]
			pi++
		}

		if pi < len(pattern) && pattern[pi] == '-' && pi+1 < len(pattern) && pattern[pi+1] != ']' {
			pi++
			var c2 byte
			if pattern[pi] == wildcardEscape {
				pi++
				if pi >= len(pattern) {
					return nil, pi, ErrBadPattern
				}
				c2 = pattern[pi]
				pi++
			} else {
				c2 = pattern[pi]
				pi++
			}
			if c1 > c2 {
				return nil, pi, ErrBadPattern
			}
			cc.Ranges = append(cc.Ranges, charRange{Start: c1, End: c2})
		} else {
			cc.Chars = append(cc.Chars, c1)
		}
	}

	if !closed {
		return nil, pi, ErrBadPattern
	}
	return cc, pi, nil
}

// matchInternal is the shared backtracking loop behind Match and MatchFold.
// fold enables ASCII case folding for literal bytes and character classes.
func matchInternal[T ~string | ~[]byte](pattern, s T, fold bool) (bool, error) {
	pLen, sLen := len(pattern), len(s)

	var isString bool
	var pStr, sStr string
	var pBytes, sBytes []byte

	if ps, ok := any(pattern).(string); ok {
		isString = true
		pStr = ps
		sStr = any(s).(string)
	} else {
		pBytes = any(pattern).([]byte)
		sBytes = any(s).([]byte)
	}

	byteEqual := func(p, c byte) bool {
		if fold {
			return toLowerASCII(p) == toLowerASCII(c)
		}
		return p == c
	}

	pIdx, sIdx := 0, 0
	starIdx, sTmpIdx := -1, -1
	questionIdx, qTmpIdx := -1, -1
	qCount, qMatched := 0, 0

	var starLiteral string
	var starLiteralBytes []byte
	hasStarLiteral := false

	for {
		if pIdx >= pLen && sIdx >= sLen {
			return true, nil
		}

		if pIdx < pLen && pattern[pIdx] == wildcardStar {
			for pIdx < pLen && (pattern[pIdx] == wildcardStar || pattern[pIdx] == wildcardQuestion) {
				pIdx++
			}
			starIdx = pIdx
			sTmpIdx = sIdx

			hasStarLiteral = false
			if !fold && starIdx < pLen && !isWildcardByte(pattern[starIdx]) {
				literalEnd := starIdx
				for literalEnd < pLen && !isWildcardByte(pattern[literalEnd]) {
					literalEnd++
				}
				if isString {
					starLiteral = pStr[starIdx:literalEnd]
				} else {
					starLiteralBytes = pBytes[starIdx:literalEnd]
				}
				hasStarLiteral = true
			}
			continue
		}

		if pIdx < pLen && pattern[pIdx] == wildcardQuestion {
			qCount = 0
			for pIdx < pLen && pattern[pIdx] == wildcardQuestion {
				qCount++
				pIdx++
			}
			questionIdx = pIdx
			qTmpIdx = sIdx
			qMatched = 0
			continue
		}

		if sIdx == sLen {
			for pIdx < pLen && (pattern[pIdx] == wildcardStar || pattern[pIdx] == wildcardQuestion) {
				pIdx++
			}
			if pIdx == pLen {
				return true, nil
			}
		} else if pIdx < pLen && pattern[pIdx] == wildcardEscape {
			if pIdx+1 >= pLen {
				if sIdx < sLen && s[sIdx] == wildcardEscape {
					pIdx++
					sIdx++
					if pIdx >= pLen && sIdx >= sLen {
						return true, nil
					}
					continue
				}
			} else if sIdx < sLen && byteEqual(pattern[pIdx+1], s[sIdx]) {
				pIdx += 2
				sIdx++
				if pIdx >= pLen && sIdx >= sLen {
					return true, nil
				}
				continue
			}
		} else if pIdx < pLen && pattern[pIdx] == wildcardDot {
			if sIdx < sLen && s[sIdx] != '\n' {
				pIdx++
				sIdx++
				continue
			}
		} else if pIdx < pLen && pattern[pIdx] == wildcardBracket {
			cc, newPIdx, err := newCharClass(pattern, pIdx)
			if err != nil {
				return false, err
			}
			if sIdx < sLen && cc.matches(s[sIdx], fold) {
				pIdx = newPIdx
				sIdx++
				continue
			}
		} else if pIdx < pLen && sIdx < sLen && byteEqual(pattern[pIdx], s[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if questionIdx != -1 && qTmpIdx < sLen && qMatched < qCount {
			qTmpIdx++
			qMatched++
			pIdx = questionIdx
			sIdx = qTmpIdx
			continue
		}

		if starIdx != -1 && sTmpIdx < sLen {
			questionIdx, qTmpIdx = -1, -1
			qCount, qMatched = 0, 0
			pIdx = starIdx

			if hasStarLiteral {
				var nextPos int
				if isString {
					nextPos = strings.Index(sStr[sTmpIdx+1:], starLiteral)
				} else {
					nextPos = bytes.Index(sBytes[sTmpIdx+1:], starLiteralBytes)
				}
				if nextPos == -1 {
					return false, nil
				}
				sTmpIdx += nextPos + 1
			} else {
				sTmpIdx++
			}
			sIdx = sTmpIdx
			continue
		}

		return false, nil
	}
}

// Match reports whether s matches pattern under ASCII case-sensitive rules:
// `*` matches any run of bytes, `?` zero or one byte, `.` exactly one byte
// other than '\n', `[...]` one byte from a class, and `\x` the literal x.
func Match[T ~string | ~[]byte](pattern, s T) (bool, error) {
	return matchInternal(pattern, s, false)
}

// MatchFold is Match under ASCII case folding, for filesystems (notably
// Windows and default macOS) whose paths are case-insensitive.
func MatchFold[T ~string | ~[]byte](pattern, s T) (bool, error) {
	return matchInternal(pattern, s, true)
}

// AnyMatch reports whether name matches any of patterns, checked
// concurrently. It is used to test a path against an --extensions list.
func AnyMatch(patterns []string, name string, fold bool) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}

	type result struct {
		ok  bool
		err error
	}
	results := make(chan result, len(patterns))
	for _, p := range patterns {
		p := p
		go func() {
			var ok bool
			var err error
			if fold {
				ok, err = MatchFold(p, name)
			} else {
				ok, err = Match(p, name)
			}
			results <- result{ok, err}
		}()
	}

	var firstErr error
	matched := false
	for range patterns {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		if r.ok {
			matched = true
		}
	}
	if firstErr != nil {
		return false, firstErr
	}
	return matched, nil
}
