package game

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/grabble/internal/dict"
)

func newTestState(t *testing.T, dictionary ...string) *State {
	t.Helper()
	d := dict.New()
	for _, w := range dictionary {
		d.Insert(w)
	}
	return NewState(d)
}

// allLetters gathers pool + existing-word letters as one sorted string, the
// conserved quantity across claims.
func allLetters(s *State) string {
	var b strings.Builder
	b.WriteString(s.Pool())
	for _, w := range s.ExistingWords() {
		b.WriteString(w)
	}
	letters := []byte(b.String())
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func TestAddLetters(t *testing.T) {
	s := newTestState(t)
	s.AddLetters("a")
	s.AddLetters("B")
	require.Equal(t, "ab", s.Pool())

	// Non-alphabetic bytes never enter the pool.
	s.AddLetters("c1!?")
	require.Equal(t, "abc", s.Pool())
}

func TestDeleteLetters(t *testing.T) {
	s := newTestState(t)
	s.AddLetters("abcde")

	s.DeleteLetters("abc")
	require.Equal(t, "de", s.Pool())

	// Absent letters are silently skipped.
	s.DeleteLetters("xyz")
	require.Equal(t, "de", s.Pool())

	// Only one occurrence is removed per requested letter.
	s.AddLetters("dd")
	s.DeleteLetters("d")
	require.Equal(t, "edd", s.Pool())
}

func TestClaimFromPool(t *testing.T) {
	s := newTestState(t, "cat", "dog")
	s.AddLetters("catat")

	err := s.Claim(Candidate{Word: "cat", PoolLetters: "cat"})
	require.NoError(t, err)

	require.Equal(t, []string{"cat"}, s.ExistingWords())
	require.Equal(t, "at", s.Pool(), "only the consumed letters leave the pool")
}

func TestClaimReplacesExistingWord(t *testing.T) {
	s := newTestState(t, "cat", "catfish")
	s.AddExistingWord("fish")
	s.AddLetters("catdoz")

	before := allLetters(s)
	err := s.Claim(Candidate{Word: "catfish", ExistingWord: "fish", PoolLetters: "cat"})
	require.NoError(t, err)

	require.Equal(t, []string{"catfish"}, s.ExistingWords(), "fish is replaced, not kept")
	require.Equal(t, "doz", s.Pool())
	require.Equal(t, before, allLetters(s), "claiming conserves letters")
}

func TestClaimConservesLetters(t *testing.T) {
	s := newTestState(t, "tea", "team")
	s.AddExistingWord("tea")
	s.AddLetters("mnop")

	before := allLetters(s)
	require.NoError(t, s.Claim(Candidate{Word: "team", ExistingWord: "tea", PoolLetters: "m"}))
	require.Equal(t, before, allLetters(s))
	require.Equal(t, "nop", s.Pool())
}

func TestClaimUnknownExistingWordFails(t *testing.T) {
	s := newTestState(t, "catfish")
	s.AddLetters("catfish")

	err := s.Claim(Candidate{Word: "catfish", ExistingWord: "fish", PoolLetters: "cat"})
	require.Error(t, err)
	require.Empty(t, s.ExistingWords(), "a rejected claim must not corrupt state")
	require.Equal(t, "catfish", s.Pool())
}

func TestClaimEmptyWordFails(t *testing.T) {
	s := newTestState(t)
	require.Error(t, s.Claim(Candidate{}))
}

func TestClaimKeepsDuplicateWordCaches(t *testing.T) {
	s := newTestState(t, "tea", "team")
	s.AddExistingWord("tea")
	s.AddExistingWord("tea")
	s.AddLetters("m")

	require.NoError(t, s.Claim(Candidate{Word: "team", ExistingWord: "tea", PoolLetters: "m"}))
	require.Equal(t, []string{"tea", "team"}, s.ExistingWords())

	// The remaining "tea" still has live caches: extending it must work.
	s.AddLetters("m")
	possible, err := s.PossibleWords()
	require.NoError(t, err)
	require.Contains(t, possible, Candidate{Word: "team", ExistingWord: "tea", PoolLetters: "m"})
}
