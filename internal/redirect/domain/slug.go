package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackSlug is used when sanitization leaves nothing usable.
const FallbackSlug = "link"

var (
	slugEdges = regexp.MustCompile(`^[^A-Za-z0-9_-]+|[^A-Za-z0-9_-]+$`)
	slugRuns  = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// Sanitize converts a raw unique ID into a URL-safe slug. Surrounding
// whitespace is stripped, runs of disallowed characters at the edges are
// dropped, and every inner run is collapsed into a single dash. An input
// with no usable characters yields FallbackSlug.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = slugEdges.ReplaceAllString(s, "")
	s = slugRuns.ReplaceAllString(s, "-")
	if s == "" {
		return FallbackSlug
	}
	return s
}

// EnsureUnique returns candidate if it is not taken, otherwise the first
// of candidate-1, candidate-2, ... that is not. The scan is unbounded;
// it terminates because the taken set is finite.
func EnsureUnique(candidate string, taken func(string) bool) string {
	if !taken(candidate) {
		return candidate
	}
	for suffix := 1; ; suffix++ {
		slug := fmt.Sprintf("%s-%d", candidate, suffix)
		if !taken(slug) {
			return slug
		}
	}
}
