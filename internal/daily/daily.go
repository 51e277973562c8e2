// internal/daily/daily.go
//
// Deterministic daily letter pool. Every player who starts the daily game
// on the same date (and server salt) receives the same letters: the
// Scrabble tile bag is shuffled by a ChaCha8 generator seeded with
// HMAC-SHA256(salt, YYYY-MM-DD), and the first n tiles are drawn.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/rand/v2"
	"time"

	"github.com/robalobadob/grabble/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Letters draws n tiles (without replacement) from the standard tile bag,
// deterministically for the given date and salt. n is clamped to the bag
// size.
func Letters(date time.Time, salt string, n int) string {
	bag := tileBag()
	if n <= 0 {
		return ""
	}
	if n > len(bag) {
		n = len(bag)
	}

	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	var seed [32]byte
	copy(seed[:], h.Sum(nil))

	rng := rand.New(rand.NewChaCha8(seed))
	rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
	return string(bag[:n])
}

// tileBag expands the tile distribution into one byte per physical tile,
// in fixed a–z order so the shuffle is the only source of variation.
func tileBag() []byte {
	var bag []byte
	for c := byte('a'); c <= 'z'; c++ {
		for i := 0; i < game.TileFrequency[c]; i++ {
			bag = append(bag, c)
		}
	}
	return bag
}
