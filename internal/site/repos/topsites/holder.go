package topsites

import "sync/atomic"

// Holder publishes the current Set to concurrent readers.
// Before the first Store every lookup reports "not a member".
type Holder struct {
	value atomic.Pointer[Set]
}

// NewHolder returns an empty Holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Store replaces the published set.
func (h *Holder) Store(s *Set) {
	h.value.Store(s)
}

// Loaded reports whether a set has been published.
func (h *Holder) Loaded() bool {
	return h.value.Load() != nil
}

// Contains reports whether domain is a member of the published set.
func (h *Holder) Contains(domain string) bool {
	return h.value.Load().Contains(domain)
}
