// Package casing splits a pattern string into words and renders a word list
// back into the nine canonical casing styles the engine matches against:
// normal, camel, pascal, lowercase, uppercase, lower/upper snake and
// lower/upper kebab.
package casing

import "strings"

func isDelimiter(b byte) bool {
	return b == ' ' || b == '-' || b == '_'
}

func isASCIILower(b byte) bool { return b >= 'a' && b <= 'z' }
func isASCIIUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isASCIIAlpha(b byte) bool { return isASCIILower(b) || isASCIIUpper(b) }

// SplitWords splits s at every space, hyphen or underscore (the delimiter
// is discarded) and additionally at every lowercase-to-uppercase boundary.
// Consecutive delimiters produce no empty words. Digits stay in whatever
// word they appear in and never themselves start or end a boundary: the
// boundary detector tracks the last alphabetic byte seen, skipping over any
// digits in between, so "oneTwo3Four" splits as ["one", "Two3", "Four"]
// rather than treating the run of digits as resetting case tracking.
func SplitWords(s string) []string {
	var words []string
	var cur []byte
	var lastAlpha byte

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDelimiter(c) {
			flush()
			lastAlpha = 0
			continue
		}
		if isASCIIUpper(c) && isASCIILower(lastAlpha) {
			flush()
		}
		cur = append(cur, c)
		if isASCIIAlpha(c) {
			lastAlpha = c
		}
	}
	flush()
	return words
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Capitalize upper-cases the first byte of w (ASCII semantics) and
// lower-cases the remainder.
func Capitalize(w string) string {
	if w == "" {
		return w
	}
	b := []byte(asciiLower(w))
	if isASCIILower(b[0]) {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// Normal joins words with a single space, each word unchanged.
func Normal(words []string) string { return strings.Join(words, " ") }

// Camel lower-cases the first word and capitalizes the rest, with no
// separator: "oneTwoThree".
func Camel(words []string) string {
	if len(words) == 0 {
		return ""
	}
	parts := make([]string, len(words))
	parts[0] = asciiLower(words[0])
	for i := 1; i < len(words); i++ {
		parts[i] = Capitalize(words[i])
	}
	return strings.Join(parts, "")
}

// Pascal capitalizes every word with no separator: "OneTwoThree".
func Pascal(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = Capitalize(w)
	}
	return strings.Join(parts, "")
}

// Lowercase ASCII-lowercases every word and concatenates them with no
// separator: "onetwothree".
func Lowercase(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = asciiLower(w)
	}
	return strings.Join(parts, "")
}

// Uppercase ASCII-uppercases every word and concatenates them with no
// separator: "ONETWOTHREE".
func Uppercase(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = asciiUpper(w)
	}
	return strings.Join(parts, "")
}

// LowerSnake ASCII-lowercases every word and joins with '_': "one_two_three".
func LowerSnake(words []string) string { return joinCased(words, "_", asciiLower) }

// UpperSnake ASCII-uppercases every word and joins with '_': "ONE_TWO_THREE".
func UpperSnake(words []string) string { return joinCased(words, "_", asciiUpper) }

// LowerKebab ASCII-lowercases every word and joins with '-': "one-two-three".
func LowerKebab(words []string) string { return joinCased(words, "-", asciiLower) }

// UpperKebab ASCII-uppercases every word and joins with '-': "ONE-TWO-THREE".
func UpperKebab(words []string) string { return joinCased(words, "-", asciiUpper) }

func joinCased(words []string, sep string, transform func(string) string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = transform(w)
	}
	return strings.Join(parts, sep)
}

// Rendering is one of the nine canonical casing projections of a word list.
type Rendering func(words []string) string

// Renderings lists the nine canonical renderings in a fixed order. Variant
// installation at rule-add time iterates this slice, so it also fixes which
// rendering "wins" a byte-identical collision between two of the nine forms
// (the first one inserted).
var Renderings = []Rendering{
	Normal,
	Camel,
	Pascal,
	Lowercase,
	Uppercase,
	LowerSnake,
	UpperSnake,
	LowerKebab,
	UpperKebab,
}
