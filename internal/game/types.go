// internal/game/types.go
//
// Core type definitions for the word-discovery engine.
// Defines:
//   - Candidate: a discoverable word with its letter provenance.
//   - The Scrabble tile distribution and the fixed probe order derived
//     from it (highest tile count first).

package game

// Candidate is a dictionary word the player can form right now (or could
// form with one more letter, when returned from PotentialWords).
//
// Invariants when ExistingWord is set: the candidate's letter multiset is a
// strict superset (by count) of the existing word's, the candidate is
// strictly longer, and PoolLetters is non-empty — a pure rearrangement of
// an existing word is not a discovery.
type Candidate struct {
	Word         string `json:"word"`                   // the dictionary word (lowercase)
	ExistingWord string `json:"existingWord,omitempty"` // word it builds on; empty if pool-only
	PoolLetters  string `json:"poolLetters"`            // pool letters consumed, in word order
}

// TileFrequency is the classic Scrabble tile distribution. It weights the
// daily tile draw and orders the potential-words probe.
var TileFrequency = map[byte]int{
	'e': 12, 'a': 9, 'i': 9, 'o': 8, 'n': 6, 'r': 6, 't': 6, 'l': 4, 's': 4,
	'u': 4, 'd': 4, 'g': 3, 'b': 2, 'c': 2, 'm': 2, 'p': 2, 'f': 2, 'h': 2,
	'v': 2, 'w': 2, 'y': 2, 'k': 1, 'j': 1, 'x': 1, 'q': 1, 'z': 1,
}

// probeOrder lists all 26 letters by descending tile count. The order is
// fixed (ties keep the table's historical order) because the probe cutoff
// makes it observable in results.
const probeOrder = "eaionrtlsudgbcmpfhvwykjxqz"

// DefaultProbeLimit bounds how many missing letters PotentialWords tries:
// the first 11 distinct letters, in probe order, that are not already in
// the pool. A deliberate completeness/performance trade-off — raising it
// changes observable results.
const DefaultProbeLimit = 11
