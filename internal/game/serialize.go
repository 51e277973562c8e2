// internal/game/serialize.go
//
// Reversible encoding of pool + existing words to a single transport token:
// a JSON object with exactly two members — "letters" (the pool concatenated
// in stored order) and "words" (the existing-word list) — base64-encoded as
// UTF-8. Import reverses both steps, validates the exact shape, filters the
// pool to alphabetic lowercase, and takes words verbatim.

package game

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrInvalidFormat is the uniform import failure: malformed base64,
// malformed JSON, or JSON missing either member all collapse to it. The
// underlying cause is not distinguished to the caller.
var ErrInvalidFormat = errors.New("invalid input format: expected the exported format")

// statePayload is the explicit wire schema. Pointer fields distinguish a
// missing member from a present-but-empty one.
type statePayload struct {
	Letters *string   `json:"letters"`
	Words   *[]string `json:"words"`
}

// Serialize encodes the current pool and existing words.
func (s *State) Serialize() (string, error) {
	letters := string(s.pool)
	words := s.ExistingWords() // non-nil copy, so an empty list encodes as []
	payload := statePayload{Letters: &letters, Words: &words}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Deserialize decodes token into this state: pool letters are filtered to
// a–z and lowercased (non-alphabetic characters are dropped, not rejected),
// existing words are added verbatim. Any malformed token yields
// ErrInvalidFormat.
func (s *State) Deserialize(token string) error {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ErrInvalidFormat
	}
	var payload statePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ErrInvalidFormat
	}
	if payload.Letters == nil || payload.Words == nil {
		return ErrInvalidFormat
	}
	s.AddLetters(*payload.Letters)
	s.AddExistingWords(*payload.Words)
	return nil
}
