package trie

// EnumFn is called for every prefix stored in the trie.
// final reports whether prefix is itself a word. prefix is reused between
// calls and must be copied if retained.
type EnumFn = func(prefix []rune, final bool) EnumerationResult

// EnumerationResult tells Enumerate how to proceed after a call to an EnumFn.
type EnumerationResult int

const (
	// Continue enumerating all prefixes below this one.
	Continue EnumerationResult = iota

	// Skip all prefixes that extend this one.
	Skip

	// Stop the enumeration immediately.
	Stop
)

// Enumerate calls fn for every prefix in t, depth first, starting with the
// empty prefix. Siblings are visited in increasing rune order.
func (t *Trie) Enumerate(fn EnumFn) {
	enumerate(t.root, make([]rune, 0, 16), fn)
}

func enumerate(n *Node, prefix []rune, fn EnumFn) EnumerationResult {
	result := fn(prefix, n.complete)
	if result != Continue {
		return result
	}

	l := len(prefix)
	prefix = append(prefix, 0)

	for _, r := range n.sortedKeys() {
		prefix[l] = r
		if enumerate(n.children[r], prefix, fn) == Stop {
			return Stop
		}
	}

	return Continue
}

// Words returns every word in t in lexicographic rune order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.numWords)
	t.Enumerate(func(prefix []rune, final bool) EnumerationResult {
		if final {
			words = append(words, string(prefix))
		}
		return Continue
	})
	return words
}
