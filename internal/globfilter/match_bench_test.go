package globfilter

import (
	"testing"

	extwildcard "github.com/IGLOU-EU/go-wildcard/v2"
)

// BenchmarkMatch compares our ASCII glob matcher against the ecosystem
// go-wildcard implementation on the patterns --extensions actually uses.
func BenchmarkMatch(b *testing.B) {
	testCases := []struct {
		name    string
		pattern string
		text    string
	}{
		{"Simple extension", "*.go", "internal/casetrie/trie.go"},
		{"Test file extension", "*_test.go", "internal/casetrie/trie_test.go"},
		{"No match", "*.py", "internal/casetrie/trie.go"},
		{"Nested path", "cmd/*/main.go", "cmd/caserepl/main.go"},
	}

	for _, tc := range testCases {
		b.Run(tc.name+"/globfilter", func(b *testing.B) {
			for b.Loop() {
				Match(tc.pattern, tc.text)
			}
		})
		b.Run(tc.name+"/go-wildcard", func(b *testing.B) {
			for b.Loop() {
				extwildcard.Match(tc.pattern, tc.text)
			}
		})
	}
}

func BenchmarkAnyMatch(b *testing.B) {
	patterns := []string{"*.go", "*.py", "*.rb", "*.js"}
	b.Run("AnyMatch", func(b *testing.B) {
		for b.Loop() {
			AnyMatch(patterns, "internal/casetrie/trie.go", false)
		}
	})
}
