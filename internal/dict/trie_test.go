package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrieRoundTrip(t *testing.T) {
	d := New()
	inserted := []string{"cat", "dog", "bird"}
	for _, w := range inserted {
		d.Insert(w)
	}

	for _, w := range inserted {
		require.True(t, d.Contains(w), "inserted word %q must be found", w)
	}
	for _, w := range []string{"elephant", "catfish", "dogfish"} {
		require.False(t, d.Contains(w), "never-inserted word %q must not be found", w)
	}

	// A proper prefix of an inserted word is not a word.
	require.False(t, d.Contains("ca"))
	require.False(t, d.Contains("do"))
}

func TestTrieNormalizesInput(t *testing.T) {
	d := New()
	d.Insert("  CaT \n")
	require.True(t, d.Contains("cat"))
	require.True(t, d.Contains("CAT"))
}

func TestTrieDuplicateInsertIsNoop(t *testing.T) {
	d := New()
	d.Insert("cat")
	d.Insert("cat")
	require.Equal(t, 1, d.Len())
}

func TestTrieSkipsNonAlphabeticWords(t *testing.T) {
	d := New()
	d.Insert("it's")
	d.Insert("héllo")
	d.Insert("abc1")
	require.True(t, d.Empty())
}

func TestWordMaskCachedOnInsert(t *testing.T) {
	d := New()
	d.Insert("fish")

	m, ok := d.WordMask("fish")
	require.True(t, ok)
	require.Equal(t, d.Mask("fish"), m)

	_, ok = d.WordMask("squid")
	require.False(t, ok)
}
