package domain

import (
	"slices"
	"strings"
)

// URLSet is a set of distinct URL strings. Insertion order is not kept.
type URLSet map[string]struct{}

// NewURLSet returns a set holding the non-empty urls.
func NewURLSet(urls ...string) URLSet {
	s := make(URLSet, len(urls))
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

// Add inserts u unless it is blank.
func (s URLSet) Add(u string) {
	u = strings.TrimSpace(u)
	if u == "" {
		return
	}
	s[u] = struct{}{}
}

// Has reports membership.
func (s URLSet) Has(u string) bool {
	_, ok := s[u]
	return ok
}

// Len returns the number of distinct URLs.
func (s URLSet) Len() int { return len(s) }

// Sorted returns the URLs in lexical order.
func (s URLSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}
