// internal/dict/trie.go
//
// Prefix trie over dictionary words.
// Each node carries a fixed [26]*node child table (letters a–z), a terminal
// flag, and — on terminal nodes — the literal word, so a match never needs
// to reconstruct its path. The fixed child table also makes traversal order
// deterministic, which keeps query results reproducible for a fixed
// dictionary.

package dict

// node is a single trie node. Children are indexed by letter-'a'.
type node struct {
	children [26]*node
	terminal bool
	word     string
}

// trie is the root of the prefix tree.
type trie struct {
	root node
	size int // number of distinct words inserted
}

// insert walks/creates a child per letter and marks the final node terminal.
// word must already be lowercase a–z. Duplicate inserts are no-ops.
func (t *trie) insert(word string) {
	n := &t.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if n.children[c] == nil {
			n.children[c] = &node{}
		}
		n = n.children[c]
	}
	if !n.terminal {
		n.terminal = true
		n.word = word
		t.size++
	}
}

// contains reports whether word traces a path ending at a terminal node.
func (t *trie) contains(word string) bool {
	n := &t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		n = n.children[c-'a']
		if n == nil {
			return false
		}
	}
	return n.terminal
}

// empty reports whether no word has been inserted.
func (t *trie) empty() bool { return t.size == 0 }
