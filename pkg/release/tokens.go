// Package release turns video filenames and release labels into search
// queries and normalized word sets used for fuzzy release matching
package release

import (
	"regexp"
	"sort"
	"strings"
)

var separatorRun = regexp.MustCompile(`[\s._,-]+`)

// TokenSet is a set of normalized, lower-cased release words
type TokenSet map[string]struct{}

// NewTokenSet builds a set from already normalized tokens, skipping empty ones
func NewTokenSet(tokens ...string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, token := range tokens {
		if token != "" {
			set[token] = struct{}{}
		}
	}
	return set
}

// StringSet lower-cases and normalizes s, then splits it into words.
// An empty or separator-only string yields an empty set.
func StringSet(s string) TokenSet {
	normalized := NormalizeWhitespace(strings.ToLower(s))
	if normalized == "" {
		return TokenSet{}
	}
	return NewTokenSet(strings.Split(normalized, " ")...)
}

// NormalizeWhitespace collapses runs of spaces, dots, underscores, commas
// and dashes into a single space and trims both ends
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(separatorRun.ReplaceAllString(s, " "))
}

// Contains reports whether token is in the set
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Union returns a new set holding the tokens of both sets
func (s TokenSet) Union(other TokenSet) TokenSet {
	result := make(TokenSet, len(s)+len(other))
	for token := range s {
		result[token] = struct{}{}
	}
	for token := range other {
		result[token] = struct{}{}
	}
	return result
}

// IntersectionSize counts the tokens present in both sets
func (s TokenSet) IntersectionSize(other TokenSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}

	count := 0
	for token := range small {
		if large.Contains(token) {
			count++
		}
	}
	return count
}

// Sorted returns the tokens in lexical order
func (s TokenSet) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// String renders the set as space separated sorted tokens
func (s TokenSet) String() string {
	return strings.Join(s.Sorted(), " ")
}
