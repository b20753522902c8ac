// Package index provides a trie over cached words with positionally
// constrained search, for callers narrowing a word list against known
// letter placements.
package index

import "sort"

type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie indexes words by prefix. The zero value is not usable; construct with
// New or FromWords.
type Trie struct {
	root *node
}

func New() *Trie {
	return &Trie{root: newNode()}
}

// FromWords builds a trie over ws, typically the output of Cache.Words.
func FromWords(ws []string) *Trie {
	t := New()
	for _, w := range ws {
		t.Insert(w)
	}
	return t
}

func (t *Trie) Insert(word string) {
	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	n := t.root
	for i := 0; i < len(word); i++ {
		child, ok := n.children[word[i]]
		if !ok {
			return false
		}
		n = child
	}
	return n.terminal
}

// Domain is the set of letters allowed at one position.
type Domain map[byte]struct{}

// DomainOf builds a Domain from the letters of s.
func DomainOf(s string) Domain {
	d := make(Domain, len(s))
	for i := 0; i < len(s); i++ {
		d[s[i]] = struct{}{}
	}
	return d
}

// Search returns every indexed word whose letter at position i is allowed by
// domains[i] and which contains each letter of required at least once.
// Words longer than len(domains) are never matched; shorter terminal words
// are, provided they satisfy required. Results are sorted ascending.
func (t *Trie) Search(required string, domains []Domain) []string {
	var results []string
	t.dfs(t.root, make([]byte, 0, len(domains)), 0, letterMask(required), domains, &results)
	sort.Strings(results)
	return results
}

func (t *Trie) dfs(n *node, prefix []byte, found, required uint32, domains []Domain, results *[]string) {
	if n.terminal && found&required == required {
		*results = append(*results, string(prefix))
	}
	if len(prefix) >= len(domains) {
		return
	}
	for c := range domains[len(prefix)] {
		child, ok := n.children[c]
		if !ok {
			continue
		}
		nf := found
		if b := bit(c); b&required != 0 {
			nf |= b
		}
		t.dfs(child, append(prefix, c), nf, required, domains, results)
	}
}

// letterMask packs letters a-z into bits 0-25; other bytes are ignored.
func letterMask(s string) uint32 {
	var m uint32
	for i := 0; i < len(s); i++ {
		m |= bit(s[i])
	}
	return m
}

func bit(c byte) uint32 {
	if c < 'a' || c > 'z' {
		return 0
	}
	return 1 << (c - 'a')
}
