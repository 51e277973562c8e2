// internal/dict/anagram.go
//
// Anagram search: depth-first trie walk constrained by a letter multiset.
// Yields every dictionary word reachable by consuming a sub-multiset of the
// given letters along a single root-to-node path. Branches whose letter has
// no remaining count are pruned immediately, so work is bounded by the
// achievable trie paths, not by dictionary size.

package dict

import "iter"

// Anagrams returns a one-pass sequence of every dictionary word formable
// from a sub-multiset of counts. The search mutates a private copy of
// counts with decrement/descend/restore backtracking; the caller's multiset
// is never touched. Terminal words are yielded before descending further,
// so a word and its longer prefix-sharing extensions surface in the same
// walk. No output ordering is guaranteed beyond being deterministic for a
// fixed dictionary; callers sort as needed. An empty dictionary yields
// nothing — the fail-fast contract for that case lives on the discovery
// queries in the game package.
func (d *Dictionary) Anagrams(counts Counts) iter.Seq[string] {
	return func(yield func(string) bool) {
		remaining := counts
		walk(&d.trie.root, &remaining, yield)
	}
}

// walk visits n and every child still reachable under the remaining counts.
// Returns false once the consumer stops the sequence.
func walk(n *node, remaining *Counts, yield func(string) bool) bool {
	if n.terminal && !yield(n.word) {
		return false
	}
	for i, child := range n.children {
		if child == nil || remaining[i] == 0 {
			continue
		}
		remaining[i]--
		ok := walk(child, remaining, yield)
		remaining[i]++
		if !ok {
			return false
		}
	}
	return true
}
