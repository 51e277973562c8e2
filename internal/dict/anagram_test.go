package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(d *Dictionary, letters string) []string {
	var out []string
	for w := range d.Anagrams(CountLetters(letters)) {
		out = append(out, w)
	}
	return out
}

func TestAnagramsSoundness(t *testing.T) {
	d := New()
	for _, w := range []string{"cat", "act", "at", "tack", "dog", "zoo"} {
		d.Insert(w)
	}

	pool := CountLetters("cata")
	for w := range d.Anagrams(pool) {
		require.True(t, d.Contains(w), "yielded word %q must be in the dictionary", w)
		require.True(t, pool.Contains(CountLetters(w)),
			"yielded word %q must be a sub-multiset of the pool", w)
	}
}

func TestAnagramsCompleteness(t *testing.T) {
	d := New()
	dictionary := []string{"cat", "act", "at", "tack", "dog", "zoo", "cats"}
	for _, w := range dictionary {
		d.Insert(w)
	}

	pool := CountLetters("catsa")
	got := collect(d, "catsa")

	seen := map[string]int{}
	for _, w := range got {
		seen[w]++
	}
	for _, w := range dictionary {
		if pool.Contains(CountLetters(w)) {
			require.Equal(t, 1, seen[w], "formable word %q must be yielded exactly once", w)
		} else {
			require.Zero(t, seen[w], "unformable word %q must not be yielded", w)
		}
	}
}

func TestAnagramsRespectsMultiplicity(t *testing.T) {
	d := New()
	d.Insert("zoo")
	require.Empty(t, collect(d, "zo"), "one o cannot make zoo")
	require.Equal(t, []string{"zoo"}, collect(d, "zoo"))
}

func TestAnagramsYieldsWordBeforeExtension(t *testing.T) {
	d := New()
	d.Insert("cat")
	d.Insert("cats")
	got := collect(d, "stac")
	require.Equal(t, []string{"cat", "cats"}, got,
		"a word is yielded before its longer prefix-sharing extension")
}

func TestAnagramsDoesNotMutateCallerCounts(t *testing.T) {
	d := New()
	d.Insert("cat")
	counts := CountLetters("cat")
	before := counts
	for range d.Anagrams(counts) {
	}
	require.Equal(t, before, counts)
}

func TestAnagramsEarlyStop(t *testing.T) {
	d := New()
	for _, w := range []string{"cat", "act", "tac"} {
		d.Insert(w)
	}
	n := 0
	for range d.Anagrams(CountLetters("cat")) {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestAnagramsEmptyDictionaryYieldsNothing(t *testing.T) {
	d := New()
	require.Empty(t, collect(d, "abcdefg"))
}

func TestAnagramsDeterministicOrder(t *testing.T) {
	d := New()
	for _, w := range []string{"dog", "god", "do", "go"} {
		d.Insert(w)
	}
	first := collect(d, "dog")
	for i := 0; i < 5; i++ {
		require.Equal(t, first, collect(d, "dog"))
	}
}
