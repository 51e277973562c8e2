package game

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func token(t *testing.T, jsonBody string) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte(jsonBody))
}

func TestSerializeRoundTrip(t *testing.T) {
	s := newTestState(t, "cat", "dog")
	s.AddLetters("abcde")
	s.AddExistingWords([]string{"cat", "dog"})

	tok, err := s.Serialize()
	require.NoError(t, err)

	restored := newTestState(t, "cat", "dog")
	require.NoError(t, restored.Deserialize(tok))

	require.Equal(t, s.Pool(), restored.Pool())
	require.Equal(t, s.ExistingWords(), restored.ExistingWords())
}

func TestSerializeEmptyState(t *testing.T) {
	s := newTestState(t)
	tok, err := s.Serialize()
	require.NoError(t, err)

	restored := newTestState(t)
	require.NoError(t, restored.Deserialize(tok))
	require.Empty(t, restored.Pool())
	require.Empty(t, restored.ExistingWords())
}

func TestDeserializeFiltersPoolToAlpha(t *testing.T) {
	s := newTestState(t)
	tok := token(t, `{"letters": "aBc12!de", "words": ["cat", "dog"]}`)

	require.NoError(t, s.Deserialize(tok))
	require.Equal(t, "abcde", s.Pool(), "non-alphabetic pool characters are dropped, not rejected")
	require.Equal(t, []string{"cat", "dog"}, s.ExistingWords())
}

func TestDeserializeInvalidBase64(t *testing.T) {
	s := newTestState(t)
	err := s.Deserialize("This is not a valid base64 string")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDeserializeInvalidJSON(t *testing.T) {
	s := newTestState(t)
	// Valid base64 of a truncated JSON payload.
	tok := base64.StdEncoding.EncodeToString([]byte(`{"letters": "abcde", "words": ["cat", "dog"`))
	err := s.Deserialize(tok)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDeserializeMissingMembers(t *testing.T) {
	for name, body := range map[string]string{
		"missing words":   `{"letters": "abcde"}`,
		"missing letters": `{"words": ["cat"]}`,
		"empty object":    `{}`,
		"wrong shape":     `["cat", "dog"]`,
	} {
		t.Run(name, func(t *testing.T) {
			s := newTestState(t)
			require.ErrorIs(t, s.Deserialize(token(t, body)), ErrInvalidFormat)
		})
	}
}

func TestDeserializeLeavesStateUsable(t *testing.T) {
	s := newTestState(t, "cat")
	require.Error(t, s.Deserialize("garbage!!!"))

	// A failed import must not have touched anything.
	require.Empty(t, s.Pool())
	require.Empty(t, s.ExistingWords())

	tok := token(t, `{"letters": "cat", "words": []}`)
	require.NoError(t, s.Deserialize(tok))
	possible, err := s.PossibleWords()
	require.NoError(t, err)
	require.Equal(t, []string{"cat"}, words(possible))
}
