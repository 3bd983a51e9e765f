package domain_test

import (
	"regexp"
	"testing"

	"qr-redirect/internal/redirect/domain"

	"github.com/stretchr/testify/assert"
)

var slugCharset = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// TestSanitize_Cases verifies the sanitization rules against representative inputs
func TestSanitize_Cases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain id unchanged", "order-123", "order-123"},
		{"underscores kept", "a_b", "a_b"},
		{"case preserved", "Hello-World", "Hello-World"},
		{"space becomes dash", "a b", "a-b"},
		{"run collapses to one dash", "a  ?! b", "a-b"},
		{"surrounding whitespace stripped", "  abc  ", "abc"},
		{"trailing punctuation dropped", "hello!", "hello"},
		{"unicode replaced", "héllo wörld", "h-llo-w-rld"},
		{"empty input falls back", "", "link"},
		{"whitespace only falls back", "   ", "link"},
		{"all punctuation falls back", "!?!?", "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Sanitize(tt.input))
		})
	}
}

// TestSanitize_OutputCharset verifies every output contains only URL-safe characters
func TestSanitize_OutputCharset(t *testing.T) {
	inputs := []string{
		"order-123", "a b", "héllo wörld", "!?!?", "", "  x  ",
		"path/to/thing", "100% true", "tabs\tand\nnewlines",
	}

	for _, input := range inputs {
		got := domain.Sanitize(input)
		assert.Regexp(t, slugCharset, got, "input %q", input)
	}
}

// TestEnsureUnique_NoCollision_ReturnsCandidate verifies an unused candidate passes through
func TestEnsureUnique_NoCollision_ReturnsCandidate(t *testing.T) {
	taken := func(string) bool { return false }

	assert.Equal(t, "a-b", domain.EnsureUnique("a-b", taken))
}

// TestEnsureUnique_Collisions_SuffixesFromOne verifies numeric suffixing against the original candidate
func TestEnsureUnique_Collisions_SuffixesFromOne(t *testing.T) {
	used := map[string]bool{"a-b": true}
	taken := func(s string) bool { return used[s] }

	got := domain.EnsureUnique("a-b", taken)
	assert.Equal(t, "a-b-1", got)

	used[got] = true
	assert.Equal(t, "a-b-2", domain.EnsureUnique("a-b", taken))
}

// TestEnsureUnique_SuffixAppendsToOriginal verifies suffixes never stack on each other
func TestEnsureUnique_SuffixAppendsToOriginal(t *testing.T) {
	used := map[string]bool{"x": true, "x-1": true, "x-2": true}
	taken := func(s string) bool { return used[s] }

	assert.Equal(t, "x-3", domain.EnsureUnique("x", taken))
}
