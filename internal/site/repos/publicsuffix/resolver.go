package publicsuffix

import (
	"strings"

	"github.com/haukened/sitewatch/internal/site/common/utils"
)

// Resolver answers public-suffix questions against a Store.
type Resolver struct {
	store *Store
}

// NewResolver returns a Resolver over store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// GetTld returns the longest public suffix of host. host must already be
// lowercase and in ASCII-compatible encoding. With icannOnly set only ICANN
// rules are considered.
//
// Candidates, measured on the reversed host:
//   - A: longest exact rule
//   - B: longest exception rule minus its last label
//   - C: longest wildcard rule plus one more label, unless that label is
//     the exception rule itself
//
// The longest candidate wins. When no rule matches, the implicit "*" rule
// applies and the result is the last label of host.
func (r *Resolver) GetTld(host string, icannOnly bool) string {
	rev := utils.ReverseString(host)

	exact := r.store.exact.longestMatch(rev, icannOnly)

	excludedMatch := r.store.excluded.longestMatch(rev, icannOnly)
	excluded := 0
	if excludedMatch > 0 {
		if i := strings.LastIndexByte(rev[:excludedMatch], '.'); i >= 0 {
			excluded = i
		}
	}

	under := r.store.under.longestMatch(rev, icannOnly)
	if under > 0 && under < len(rev) {
		extended := len(rev)
		if i := strings.IndexByte(rev[under+1:], '.'); i >= 0 {
			extended = under + 1 + i
		}
		if extended != excludedMatch {
			under = extended
		}
	}

	best := max(exact, excluded, under)
	if best == 0 {
		best = len(rev)
		if i := strings.IndexByte(rev, '.'); i >= 0 {
			best = i
		}
	}
	return utils.ReverseString(rev[:best])
}

// RegistrableDomain returns the eTLD+1 of host, or "" when host has no label
// left of its suffix.
func (r *Resolver) RegistrableDomain(host string, icannOnly bool) string {
	return RegistrableDomain(host, r.GetTld(host, icannOnly))
}

// NonSuffixLabels returns the labels of host left of suffix, outermost first.
// suffix must be a label-aligned suffix of host, as returned by GetTld.
func NonSuffixLabels(host, suffix string) []string {
	rest := host
	if suffix != "" {
		rest = strings.TrimSuffix(strings.TrimSuffix(host, suffix), ".")
	}
	if rest == "" {
		return nil
	}
	return strings.Split(rest, ".")
}

// RegistrableDomain joins the last non-suffix label of host with suffix.
func RegistrableDomain(host, suffix string) string {
	labels := NonSuffixLabels(host, suffix)
	if len(labels) == 0 {
		return ""
	}
	last := labels[len(labels)-1]
	if suffix == "" {
		return last
	}
	return last + "." + suffix
}
