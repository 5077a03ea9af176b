package stopwords

import (
	"sort"
	"strings"
)

// Set is an immutable collection of delimiter words. Stopwords split text
// into candidate phrases; they never appear inside a candidate.
type Set struct {
	words map[string]struct{}
}

// New creates a set from the given words, case-folding each entry.
// Empty and whitespace-only entries are dropped.
func New(words []string) *Set {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return &Set{words: set}
}

// Contains reports whether word is in the set. The check is case-insensitive.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns all stopwords in sorted order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
