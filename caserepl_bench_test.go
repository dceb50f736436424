package caserepl

import "testing"

// BenchmarkReplace measures end-to-end Replace cost across the three case
// modes and a range of input sizes.
func BenchmarkReplace(b *testing.B) {
	testCases := []struct {
		name  string
		build func() *Replacer
		input string
	}{
		{
			"PreserveCase short",
			func() *Replacer {
				r := New()
				r.AddReplacement("foo bar", "baz qux", PreserveCase, false)
				return r
			},
			"fooBar and FOO_BAR and foo-bar",
		},
		{
			"PreserveCase no match",
			func() *Replacer {
				r := New()
				r.AddReplacement("foo bar", "baz qux", PreserveCase, false)
				return r
			},
			"this sentence never mentions the pattern at all",
		},
		{
			"IgnoreCase whole word",
			func() *Replacer {
				r := New()
				r.AddReplacement("widget", "gadget", IgnoreCase, true)
				return r
			},
			"a Widget and a WIDGET and widgetry are not the same",
		},
		{
			"MatchCase many rules",
			func() *Replacer {
				r := New()
				for _, pair := range [][2]string{
					{"alpha", "1"}, {"beta", "2"}, {"gamma", "3"}, {"delta", "4"},
				} {
					r.AddReplacement(pair[0], pair[1], MatchCase, false)
				}
				return r
			},
			"alpha beta gamma delta alpha beta gamma delta",
		},
	}

	for _, tc := range testCases {
		r := tc.build()
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				r.Replace(tc.input)
			}
		})
	}
}

// BenchmarkReplaceLongInput measures scan cost as input length grows, with a
// small number of scattered hits.
func BenchmarkReplaceLongInput(b *testing.B) {
	r := New()
	r.AddReplacement("needle in haystack", "found it", PreserveCase, false)

	filler := "the quick brown fox jumps over the lazy dog. "
	var long string
	for i := 0; i < 200; i++ {
		long += filler
	}
	long += "needleInHaystack"

	b.Run("200 repeats plus one hit", func(b *testing.B) {
		for b.Loop() {
			r.Replace(long)
		}
	})
}
