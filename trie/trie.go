// Package trie implements the prefix index used to prune the grid search.
//
// A Trie is built once by inserting dictionary words and is read-only after
// that. Every edge is labeled by a single rune, and a node reached by a path
// that spells a complete dictionary entry carries that entry.
package trie

import "slices"

// Node is one rune position shared by every word that has the same prefix.
type Node struct {
	value    rune // 0 for the root, which stands for the empty prefix.
	children map[rune]*Node

	word     string // Valid only if complete.
	complete bool
}

func newNode(value rune) *Node {
	return &Node{value: value}
}

// Value returns the rune labeling the edge into n. The root returns 0.
func (n *Node) Value() rune {
	return n.value
}

// Child returns the child of n reached by r.
// A missing child is not an error, it means no word continues with r.
func (n *Node) Child(r rune) (*Node, bool) {
	child, ok := n.children[r]
	return child, ok
}

// IsWord reports whether the path from the root to n spells a dictionary word.
func (n *Node) IsWord() bool {
	return n.complete
}

// Word returns the dictionary word completed at n, if any.
func (n *Node) Word() (string, bool) {
	return n.word, n.complete
}

// NumChildren returns how many distinct runes continue the prefix of n.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// sortedKeys returns the child runes in increasing order, so walks are repeatable.
func (n *Node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

// Trie is a prefix tree over a dictionary.
type Trie struct {
	root     *Node
	numWords int
}

// New creates a Trie containing words.
func New(words ...string) *Trie {
	t := &Trie{root: newNode(0)}
	t.InsertAll(words)
	return t
}

// Root returns the node for the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of distinct words in t.
func (t *Trie) Len() int {
	return t.numWords
}

// InsertAll inserts every word in words.
func (t *Trie) InsertAll(words []string) {
	for _, w := range words {
		t.Insert(w)
	}
}

// Insert adds word to t. Inserting a word that is already present changes nothing.
// The empty string is a valid entry and marks the root.
func (t *Trie) Insert(word string) {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			if cur.children == nil {
				cur.children = make(map[rune]*Node, 4)
			}
			next = newNode(r)
			cur.children[r] = next
		}
		cur = next
	}

	if !cur.complete {
		t.numWords++
	}
	cur.word = word
	cur.complete = true
}

// Lookup returns the node reached by following prefix from the root.
func (t *Trie) Lookup(prefix string) (*Node, bool) {
	cur := t.root
	for _, r := range prefix {
		next, ok := cur.children[r]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Contains reports whether word was inserted into t.
func (t *Trie) Contains(word string) bool {
	n, ok := t.Lookup(word)
	return ok && n.complete
}

// HasPrefix reports whether some word in t starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.Lookup(prefix)
	return ok
}
