package publicsuffix

//go:generate go run ../../../../cmd/suffixgen -in data/public_suffix_list.dat -out patterns.go -pkg publicsuffix

// Patterns groups the three encoded rule categories.
type Patterns struct {
	Exact    string
	Excluded string
	Under    string
}

// DefaultPatterns returns the patterns generated from the bundled list.
func DefaultPatterns() Patterns {
	return Patterns{Exact: ExactPattern, Excluded: ExcludedPattern, Under: UnderPattern}
}

// StoreStats reports the number of rules per category.
type StoreStats struct {
	Exact    int
	Excluded int
	Under    int
}

// Store holds the exact, exception and wildcard tries. It is built once at
// startup and shared read-only by every resolver.
type Store struct {
	exact    *Trie
	excluded *Trie
	under    *Trie
}

// NewStore decodes all three patterns. It panics on a malformed pattern.
func NewStore(p Patterns) *Store {
	return &Store{
		exact:    Decode(p.Exact),
		excluded: Decode(p.Excluded),
		under:    Decode(p.Under),
	}
}

// Stats returns rule counts per category.
func (s *Store) Stats() StoreStats {
	return StoreStats{Exact: s.exact.Len(), Excluded: s.excluded.Len(), Under: s.under.Len()}
}
