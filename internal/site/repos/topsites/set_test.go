package topsites

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Contains(t *testing.T) {
	s := NewSet([]string{"Google.com", " github.com. ", "", "bbc.co.uk", "google.com"}, 0.01)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("google.com"))
	assert.True(t, s.Contains("GOOGLE.COM"))
	assert.True(t, s.Contains("github.com"))
	assert.True(t, s.Contains("bbc.co.uk"))
	assert.False(t, s.Contains("mail.google.com"))
	assert.False(t, s.Contains("co.uk"))
	assert.False(t, s.Contains(""))
}

func TestSet_NilIsEmpty(t *testing.T) {
	var s *Set
	assert.False(t, s.Contains("google.com"))
	assert.Equal(t, 0, s.Len())
}

func TestSet_NoFalseNegatives(t *testing.T) {
	domains := make([]string, 2000)
	for i := range domains {
		domains[i] = fmt.Sprintf("site%04d.example", i)
	}
	s := NewSet(domains, 0.01)
	for _, d := range domains {
		if !s.Contains(d) {
			t.Fatalf("expected %q to be a member", d)
		}
	}
	// exact map backs the filter, so absent names are never reported
	for i := range 2000 {
		d := fmt.Sprintf("other%04d.example", i)
		if s.Contains(d) {
			t.Fatalf("unexpected member %q", d)
		}
	}
}
