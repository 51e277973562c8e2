// internal/dict/mask.go
//
// 26-bit letter masks. A mask records which distinct letters occur in a
// word or pool — it is multiplicity-blind, so every mask check is a cheap
// pre-filter that must be confirmed by an exact letter-count comparison
// whenever duplicate letters matter.

package dict

import "math/bits"

// Mask is a 26-bit letter-set summary: bit i is set iff letter 'a'+i
// appears one or more times.
type Mask uint32

// maskOf computes the mask of an arbitrary letter string.
// Non a–z bytes are ignored.
func maskOf(letters string) Mask {
	var m Mask
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c >= 'a' && c <= 'z' {
			m |= 1 << (c - 'a')
		}
	}
	return m
}

// LetterBit returns the mask bit for a single letter.
func LetterBit(c byte) Mask {
	if c < 'a' || c > 'z' {
		return 0
	}
	return 1 << (c - 'a')
}

// Superset reports whether m contains every letter bit present in other.
// Necessary but not sufficient: it ignores letter multiplicity.
func (m Mask) Superset(other Mask) bool { return m&other == other }

// Has reports whether the letter's bit is set.
func (m Mask) Has(c byte) bool { return m&LetterBit(c) != 0 }

// MissingOne checks whether m (a word's mask) is missing exactly one
// distinct letter from avail, and returns that letter. A word missing two
// different letters fails; a word missing only a second copy of a letter
// already present shows no missing bit at all and also fails — the check is
// an identity heuristic, not a formability proof.
func (m Mask) MissingOne(avail Mask) (byte, bool) {
	diff := uint32(m &^ avail)
	if bits.OnesCount32(diff) != 1 {
		return 0, false
	}
	return 'a' + byte(bits.TrailingZeros32(diff)), true
}
