// internal/dict/dict.go
//
// Dictionary: the load-once, read-only word index queried by the game.
//
// Responsibilities:
//   - Insert words into the prefix trie, caching each word's letter mask.
//   - Memoize masks for arbitrary letter pools in a bounded LRU (pools are
//     drawn from a tiny alphabet and the same pool string recurs across
//     many candidate checks).
//   - Answer exact membership lookups (diagnostics/tests only; the hot path
//     walks the trie directly via Anagrams).
//
// Lifecycle: built once from a wordlist, then immutable. The mask caches
// are owned here and live and die with the dictionary.

package dict

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maskCacheSize bounds the memoized pool-mask cache.
const maskCacheSize = 1024

// Dictionary indexes a wordlist for anagram search.
type Dictionary struct {
	trie      trie
	wordMasks map[string]Mask
	poolMasks *lru.Cache[string, Mask]
}

// New returns an empty Dictionary.
func New() *Dictionary {
	cache, _ := lru.New[string, Mask](maskCacheSize)
	return &Dictionary{
		wordMasks: make(map[string]Mask),
		poolMasks: cache,
	}
}

// Insert adds one word: trimmed, lowercased, and indexed with its mask.
// Words containing anything outside a–z are skipped — they can neither be
// walked by the trie nor summarized by a 26-bit mask.
func (d *Dictionary) Insert(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !isAlpha(word) {
		return
	}
	d.trie.insert(word)
	d.wordMasks[word] = maskOf(word)
}

// Contains reports exact membership of word in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.contains(strings.ToLower(strings.TrimSpace(word)))
}

// WordMask returns the cached mask of a dictionary word.
func (d *Dictionary) WordMask(word string) (Mask, bool) {
	m, ok := d.wordMasks[word]
	return m, ok
}

// Mask computes (and memoizes) the mask of an arbitrary letter string.
func (d *Dictionary) Mask(letters string) Mask {
	if m, ok := d.poolMasks.Get(letters); ok {
		return m
	}
	m := maskOf(letters)
	d.poolMasks.Add(letters, m)
	return m
}

// Len returns the number of distinct words indexed.
func (d *Dictionary) Len() int { return d.trie.size }

// Empty reports whether the dictionary was never loaded.
func (d *Dictionary) Empty() bool { return d.trie.empty() }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
