// Package publicsuffix decodes the compact public-suffix rule patterns into
// lookup tries and resolves the public suffix of a host name.
//
// A pattern is a pre-order walk of a trie keyed by reversed host names. Each
// node is a run of literal bytes followed by one tag byte:
//
//	!  interior node, ICANN suffix
//	:  interior node, private suffix
//	?  leaf node, ICANN suffix
//	,  leaf node, private suffix
//	&  interior node that is not itself a suffix
//
// A node's key is its parent's key followed by its run. The children of an
// interior node follow its tag and the list is closed by one extra '?' or ','.
package publicsuffix

import (
	"fmt"
	"slices"
	"strings"
)

const (
	tagInteriorICANN   = '!'
	tagInteriorPrivate = ':'
	tagLeafICANN       = '?'
	tagLeafPrivate     = ','
	tagInteriorNone    = '&'
)

func isTag(c byte) bool {
	switch c {
	case tagInteriorICANN, tagInteriorPrivate, tagLeafICANN, tagLeafPrivate, tagInteriorNone:
		return true
	}
	return false
}

func isLeafTag(c byte) bool {
	return c == tagLeafICANN || c == tagLeafPrivate
}

// Trie maps reversed suffix keys (e.g. "ku.oc") to whether the suffix is
// ICANN-delegated (true) or privately submitted (false). It is read-only
// after Decode returns and safe for concurrent use.
type Trie struct {
	entries map[string]bool
}

// Decode builds a Trie from an encoded pattern.
// The patterns are build-time artifacts, so a malformed pattern panics.
func Decode(encoded string) *Trie {
	t := &Trie{entries: make(map[string]bool)}
	for pos := 0; pos < len(encoded); {
		pos = t.decodeNode(encoded, pos, "")
	}
	return t
}

// decodeNode reads the node starting at pos and, for interior nodes, all of
// its children. It returns the offset just past the node.
func (t *Trie) decodeNode(encoded string, pos int, prefix string) int {
	end := pos
	for end < len(encoded) && !isTag(encoded[end]) {
		end++
	}
	if end == len(encoded) {
		panic(fmt.Sprintf("publicsuffix: truncated pattern, node at offset %d has no tag", pos))
	}
	if end == pos {
		panic(fmt.Sprintf("publicsuffix: empty node at offset %d", pos))
	}

	key := prefix + encoded[pos:end]
	tag := encoded[end]
	next := end + 1

	switch tag {
	case tagInteriorICANN, tagLeafICANN:
		t.entries[key] = true
	case tagInteriorPrivate, tagLeafPrivate:
		t.entries[key] = false
	}
	if isLeafTag(tag) {
		return next
	}

	for {
		if next >= len(encoded) {
			panic(fmt.Sprintf("publicsuffix: children of %q are not terminated", key))
		}
		next = t.decodeNode(encoded, next, key)
		if next >= len(encoded) {
			panic(fmt.Sprintf("publicsuffix: children of %q are not terminated", key))
		}
		if isLeafTag(encoded[next]) {
			return next + 1
		}
	}
}

// Lookup returns the ICANN flag for key and whether key is a recorded suffix.
func (t *Trie) Lookup(key string) (icann bool, ok bool) {
	icann, ok = t.entries[key]
	return icann, ok
}

// Len returns the number of recorded suffixes.
func (t *Trie) Len() int { return len(t.entries) }

// Entries returns a copy of the key -> ICANN mapping.
func (t *Trie) Entries() map[string]bool {
	out := make(map[string]bool, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// longestMatch returns the length of the longest recorded key that is a
// prefix of rev ending on a label boundary, or 0 when none is. With
// icannOnly set, private suffixes are ignored.
func (t *Trie) longestMatch(rev string, icannOnly bool) int {
	best := 0
	for i := 1; i <= len(rev); i++ {
		if i < len(rev) && rev[i] != '.' {
			continue
		}
		if icann, ok := t.entries[rev[:i]]; ok && (icann || !icannOnly) {
			best = i
		}
	}
	return best
}

type encodeNode struct {
	children map[string]*encodeNode
	member   bool
	icann    bool
}

// Encode serializes a reversed-key mapping into the pattern grammar Decode
// reads. Children are written in byte order so the output is deterministic.
// Keys must be non-empty, must not contain tag bytes, and must not contain
// empty labels.
func Encode(entries map[string]bool) (string, error) {
	root := &encodeNode{children: map[string]*encodeNode{}}
	for key, icann := range entries {
		runs, err := splitRuns(key)
		if err != nil {
			return "", err
		}
		n := root
		for _, run := range runs {
			child, ok := n.children[run]
			if !ok {
				child = &encodeNode{children: map[string]*encodeNode{}}
				n.children[run] = child
			}
			n = child
		}
		n.member, n.icann = true, icann
	}

	var b strings.Builder
	for _, run := range sortedRuns(root) {
		writeNode(&b, run, root.children[run])
	}
	return b.String(), nil
}

func writeNode(b *strings.Builder, run string, n *encodeNode) {
	b.WriteString(run)
	if len(n.children) == 0 {
		if n.icann {
			b.WriteByte(tagLeafICANN)
		} else {
			b.WriteByte(tagLeafPrivate)
		}
		return
	}
	switch {
	case !n.member:
		b.WriteByte(tagInteriorNone)
	case n.icann:
		b.WriteByte(tagInteriorICANN)
	default:
		b.WriteByte(tagInteriorPrivate)
	}
	for _, child := range sortedRuns(n) {
		writeNode(b, child, n.children[child])
	}
	b.WriteByte(tagLeafICANN)
}

func sortedRuns(n *encodeNode) []string {
	runs := make([]string, 0, len(n.children))
	for run := range n.children {
		runs = append(runs, run)
	}
	slices.Sort(runs)
	return runs
}

// splitRuns splits "ku.oc" into the node runs "ku" and ".oc".
func splitRuns(key string) ([]string, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key")
	}
	for i := 0; i < len(key); i++ {
		if isTag(key[i]) {
			return nil, fmt.Errorf("key %q contains reserved byte %q", key, key[i])
		}
	}
	labels := strings.Split(key, ".")
	runs := make([]string, 0, len(labels))
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("key %q has an empty label", key)
		}
		if i == 0 {
			runs = append(runs, label)
			continue
		}
		runs = append(runs, "."+label)
	}
	return runs, nil
}
