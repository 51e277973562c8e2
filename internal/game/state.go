// internal/game/state.go
//
// Game state: the letter pool plus the words already placed.
// Responsibilities:
//   - Own the pool multiset and the indexed list of existing words.
//   - Keep each existing word's letter counts and mask caches in lock-step
//     with the list (every insertion/removal touches all three).
//   - Mutations: add letters, delete letters, claim a discovered word.
//
// The discovery queries live in discover.go, serialization in serialize.go.

package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/grabble/internal/dict"
)

// ErrDictionaryEmpty is returned by the discovery queries when the
// dictionary was never loaded — a setup bug, distinct from a loaded
// dictionary that legitimately yields zero candidates.
var ErrDictionaryEmpty = errors.New("dictionary is empty: no wordlist loaded")

// State holds one player's pool and existing words against a shared,
// read-only dictionary. It is not safe for concurrent use; callers
// serialize access (the HTTP layer holds a per-session lock).
type State struct {
	dict     *dict.Dictionary
	pool     []byte   // ordered for stable display, semantically a multiset
	existing []string // indexed collection of placed words

	// Derived caches, keyed by word text. Evicted only when the last
	// occurrence of a word leaves the existing list.
	existingCounts map[string]dict.Counts
	existingMasks  map[string]dict.Mask

	// ProbeLimit bounds the potential-words scan; zero means
	// DefaultProbeLimit.
	ProbeLimit int
}

// NewState constructs an empty game state over d.
func NewState(d *dict.Dictionary) *State {
	return &State{
		dict:           d,
		existingCounts: make(map[string]dict.Counts),
		existingMasks:  make(map[string]dict.Mask),
	}
}

// Dict exposes the backing dictionary.
func (s *State) Dict() *dict.Dictionary { return s.dict }

// Pool returns the pool letters in their stored order.
func (s *State) Pool() string { return string(s.pool) }

// ExistingWords returns a copy of the placed-word list.
func (s *State) ExistingWords() []string {
	out := make([]string, len(s.existing))
	copy(out, s.existing)
	return out
}

// AddLetters appends each letter of letters (lowercased) to the pool.
// Alphabetic input is the caller's contract; anything else is dropped so a
// bad byte can never poison the pool invariant.
func (s *State) AddLetters(letters string) {
	for _, c := range []byte(strings.ToLower(letters)) {
		if c >= 'a' && c <= 'z' {
			s.pool = append(s.pool, c)
		}
	}
}

// DeleteLetters removes one pool occurrence per letter of letters.
// Letters not present are silently skipped.
func (s *State) DeleteLetters(letters string) {
	lowered := strings.ToLower(letters)
	for i := 0; i < len(lowered); i++ {
		s.removeOnePoolLetter(lowered[i])
	}
}

// removeOnePoolLetter deletes the first occurrence of c, if any.
func (s *State) removeOnePoolLetter(c byte) {
	for i, p := range s.pool {
		if p == c {
			s.pool = append(s.pool[:i], s.pool[i+1:]...)
			return
		}
	}
}

// AddExistingWord places a word on the board, caching its counts and mask.
func (s *State) AddExistingWord(word string) {
	s.existing = append(s.existing, word)
	s.existingCounts[word] = dict.CountLetters(word)
	s.existingMasks[word] = s.dict.Mask(word)
}

// AddExistingWords places each word in turn.
func (s *State) AddExistingWords(words []string) {
	for _, w := range words {
		s.AddExistingWord(w)
	}
}

// Claim moves a candidate from "possible" to "existing".
//
// If the candidate builds on an existing word, that entry is removed (first
// matching occurrence) and replaced by the longer word. The pool is then
// reduced by exactly the candidate's PoolLetters — not the word's full
// multiset — so letters already spoken for by the prior word stay where
// they are. Net effect: pool ∪ existing-word letters is conserved; letters
// are reassigned, never created or destroyed.
func (s *State) Claim(c Candidate) error {
	if c.Word == "" {
		return errors.New("claim: empty word")
	}
	if c.ExistingWord != "" {
		if !s.removeExistingWord(c.ExistingWord) {
			return errors.New("claim: unknown existing word " + c.ExistingWord)
		}
	}
	s.AddExistingWord(c.Word)

	consume := dict.CountLetters(c.PoolLetters)
	kept := s.pool[:0]
	for _, letter := range s.pool {
		if consume.Get(letter) > 0 {
			consume[letter-'a']--
			continue
		}
		kept = append(kept, letter)
	}
	s.pool = kept
	return nil
}

// removeExistingWord deletes the first occurrence of word from the indexed
// list, evicting the derived caches only when no other occurrence remains.
// Reports whether the word was found.
func (s *State) removeExistingWord(word string) bool {
	idx := -1
	for i, w := range s.existing {
		if w == word {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.existing = append(s.existing[:idx], s.existing[idx+1:]...)
	for _, w := range s.existing {
		if w == word {
			return true // another occurrence keeps the caches alive
		}
	}
	delete(s.existingCounts, word)
	delete(s.existingMasks, word)
	return true
}

// poolCounts returns the pool as a letter multiset.
func (s *State) poolCounts() dict.Counts {
	return dict.CountLetters(string(s.pool))
}

// probeLimit resolves the configured potential-words bound.
func (s *State) probeLimit() int {
	if s.ProbeLimit > 0 {
		return s.ProbeLimit
	}
	return DefaultProbeLimit
}
