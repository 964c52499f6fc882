package topsites

import (
	"strings"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
)

// DefaultFPRate is the bloom false-positive rate used when none is configured.
const DefaultFPRate = 0.01

// Set is an immutable set of registrable domains.
// A bloom filter answers most negative lookups before the exact map is consulted.
type Set struct {
	bloom   *bitsbloom.BloomFilter
	members map[string]struct{}
}

// NewSet builds a Set from domains. Names are lowercased and trimmed; blanks are dropped.
func NewSet(domains []string, fpRate float64) *Set {
	members := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = normalize(d)
		if d == "" {
			continue
		}
		members[d] = struct{}{}
	}
	m, k := size(uint64(len(members)), fpRate)
	bf := bitsbloom.New(uint(m), uint(k))
	for d := range members {
		bf.AddString(d)
	}
	return &Set{bloom: bf, members: members}
}

// Contains reports whether domain is a member.
func (s *Set) Contains(domain string) bool {
	if s == nil {
		return false
	}
	domain = normalize(domain)
	if domain == "" || !s.bloom.TestString(domain) {
		return false
	}
	_, ok := s.members[domain]
	return ok
}

// Len returns the number of distinct members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

func normalize(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	return strings.TrimSuffix(d, ".")
}
