package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskOf(t *testing.T) {
	require.Equal(t, Mask(0), maskOf(""))
	require.Equal(t, Mask(1), maskOf("a"))
	require.Equal(t, Mask(1<<25), maskOf("z"))
	// Multiplicity-blind: "miss" and "mis" share a mask.
	require.Equal(t, maskOf("mis"), maskOf("miss"))
	// Non-letters are ignored.
	require.Equal(t, maskOf("cat"), maskOf("c-a-t!"))
}

func TestMaskSuperset(t *testing.T) {
	pool := maskOf("fish")
	assert.True(t, pool.Superset(maskOf("fish")))
	assert.True(t, pool.Superset(maskOf("his")))
	assert.False(t, pool.Superset(maskOf("fishy")))

	// The decoy: "miss" needs two s's but its mask is {m,i,s}. With pool
	// {m,i,s,h} the superset check passes — proof it is necessary, never
	// sufficient, and must be confirmed by a count comparison.
	decoyPool := maskOf("mish")
	assert.True(t, decoyPool.Superset(maskOf("miss")))
	assert.False(t, CountLetters("mish").Contains(CountLetters("miss")))
}

func TestMissingOne(t *testing.T) {
	avail := maskOf("catdoz")

	letter, ok := maskOf("dog").MissingOne(avail)
	require.True(t, ok)
	require.Equal(t, byte('g'), letter)

	// Two distinct missing letters fail.
	_, ok = maskOf("fish").MissingOne(avail)
	require.False(t, ok)

	// Nothing missing fails.
	_, ok = maskOf("cat").MissingOne(avail)
	require.False(t, ok)

	// Blind spot: a second copy of a letter already present shows no
	// missing bit, so the heuristic cannot report it.
	_, ok = maskOf("zoo").MissingOne(avail)
	require.False(t, ok)
}

func TestMaskMemoization(t *testing.T) {
	d := New()
	m1 := d.Mask("catdoz")
	m2 := d.Mask("catdoz")
	require.Equal(t, m1, m2)
	require.Equal(t, maskOf("catdoz"), m1)
}
