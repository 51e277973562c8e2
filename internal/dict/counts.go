// internal/dict/counts.go
//
// Letter multisets as fixed [26]int count arrays. This is the exact
// companion to Mask: where the mask answers "which letters", Counts answers
// "how many of each".

package dict

// Counts is a letter→count multiset over a–z.
type Counts [26]int

// CountLetters builds the multiset of an arbitrary letter string.
// Non a–z bytes are ignored.
func CountLetters(s string) Counts {
	var c Counts
	c.Add(s)
	return c
}

// Add increments the count of every a–z byte in s.
func (c *Counts) Add(s string) {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b >= 'a' && b <= 'z' {
			c[b-'a']++
		}
	}
}

// AddLetter increments a single letter's count.
func (c *Counts) AddLetter(b byte) {
	if b >= 'a' && b <= 'z' {
		c[b-'a']++
	}
}

// Get returns the count for a letter.
func (c Counts) Get(b byte) int {
	if b < 'a' || b > 'z' {
		return 0
	}
	return c[b-'a']
}

// Contains reports whether c has at least other's count for every letter,
// i.e. other is a sub-multiset of c.
func (c Counts) Contains(other Counts) bool {
	for i := range c {
		if c[i] < other[i] {
			return false
		}
	}
	return true
}

// Total returns the number of letters in the multiset, duplicates included.
func (c Counts) Total() int {
	n := 0
	for i := range c {
		n += c[i]
	}
	return n
}
