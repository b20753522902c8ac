// Package wordlist validates dictionary words and groups them by length.
package wordlist

import (
	"sort"
	"strings"
)

// Snapshot maps a word length to the sorted, unique words of that length.
// Every word in a well-formed snapshot is non-empty, lowercase a-z only, and
// grouped under its exact length.
type Snapshot map[int][]string

// Words returns the words of length n; nil when the length is absent.
func (s Snapshot) Words(n int) []string { return s[n] }

// Lengths returns the lengths present, sorted ascending.
func (s Snapshot) Lengths() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Valid reports whether s consists of one or more ASCII lowercase letters.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Builder accumulates words into per-length sets, deduplicating as it goes.
type Builder struct {
	groups map[int]map[string]struct{}
}

func NewBuilder() *Builder {
	return &Builder{groups: make(map[int]map[string]struct{})}
}

// Add normalizes one dictionary line (trim whitespace, lowercase) and inserts
// it when valid. It returns the normalized word and whether it was accepted.
// Case variants merge silently: "Cat" and "cat" land in the same slot.
func (b *Builder) Add(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if !Valid(w) {
		return w, false
	}
	set, ok := b.groups[len(w)]
	if !ok {
		set = make(map[string]struct{})
		b.groups[len(w)] = set
	}
	set[w] = struct{}{}
	return w, true
}

// Snapshot converts the accumulated sets into sorted slices. The result is
// deterministic for a given set of accepted words.
func (b *Builder) Snapshot() Snapshot {
	snap := make(Snapshot, len(b.groups))
	for n, set := range b.groups {
		ws := make([]string, 0, len(set))
		for w := range set {
			ws = append(ws, w)
		}
		sort.Strings(ws)
		snap[n] = ws
	}
	return snap
}
