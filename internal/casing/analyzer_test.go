package casing

import (
	"reflect"
	"testing"
)

func TestSplitWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"one two three", []string{"one", "two", "three"}},
		{"one_two_three", []string{"one", "two", "three"}},
		{"one-two-three", []string{"one", "two", "three"}},
		{"oneTwoThree", []string{"one", "Two", "Three"}},
		{"OneTwoThree", []string{"One", "Two", "Three"}},
		{"ONE_TWO_THREE", []string{"ONE", "TWO", "THREE"}},
		{"ONE-TWO-THREE", []string{"ONE", "TWO", "THREE"}},
		{"onetwothree", []string{"onetwothree"}},
		{"", nil},
		{"one__two", []string{"one", "two"}},
		// Digits never themselves start or end a boundary: the boundary
		// tracker skips over them rather than resetting on them.
		{"oneTwo3Four", []string{"one", "Two3", "Four"}},
		{"v2Engine", []string{"v2", "Engine"}},
	}

	for _, c := range cases {
		got := SplitWords(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitWords(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestRenderings(t *testing.T) {
	words := []string{"one", "two", "three"}

	cases := []struct {
		render Rendering
		want   string
	}{
		{Normal, "one two three"},
		{Camel, "oneTwoThree"},
		{Pascal, "OneTwoThree"},
		{Lowercase, "onetwothree"},
		{Uppercase, "ONETWOTHREE"},
		{LowerSnake, "one_two_three"},
		{UpperSnake, "ONE_TWO_THREE"},
		{LowerKebab, "one-two-three"},
		{UpperKebab, "ONE-TWO-THREE"},
	}

	if len(Renderings) != len(cases) {
		t.Fatalf("Renderings has %d entries, test covers %d", len(Renderings), len(cases))
	}

	for _, c := range cases {
		if got := c.render(words); got != c.want {
			t.Errorf("rendering(%v) = %q, want %q", words, got, c.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"a":     "A",
		"ABC":   "Abc",
		"three": "Three",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSingleWordRenderingsCollideOnNormalAndCamel(t *testing.T) {
	// For a single lowercase word, normal, camel, lowercase, lower_snake and
	// lower_kebab all render identically; AddReplacement relies on the
	// pattern set silently tolerating the resulting duplicate inserts.
	words := []string{"one"}
	renders := []Rendering{Normal, Camel, Lowercase, LowerSnake, LowerKebab}
	for _, r := range renders {
		if got := r(words); got != "one" {
			t.Errorf("rendering(%v) = %q, want %q", words, got, "one")
		}
	}
}
