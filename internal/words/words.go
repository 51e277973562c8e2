// internal/words/words.go
//
// Wordlist bootstrap for the discovery engine.
//
// Responsibilities:
//   - Load a flat wordlist (one word per line, arbitrary case/whitespace)
//     from an environment-provided file, or fall back to a small embedded
//     default so the server runs with no configuration.
//   - Normalize at the boundary: trim, lowercase, drop lines that are not
//     purely alphabetic or are shorter than three letters. The core
//     Dictionary accepts any alphabetic line; the length filter lives here,
//     where a pre-processing step belongs.
//
// Environment variables:
//   WORDLIST_FILE=/path/to/wordlist.txt
//
// Loading runs once per Dictionary; there is no global state.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/grabble/internal/dict"
)

// minWordLen drops the one- and two-letter noise most raw wordlists carry.
const minWordLen = 3

//go:embed default_wordlist.txt
var embeddedWordlist string

// Load fills d from WORDLIST_FILE if set, otherwise from the embedded
// default list. Returns an error if the dictionary ends up empty.
func Load(d *dict.Dictionary) error {
	if path := os.Getenv("WORDLIST_FILE"); path != "" {
		return LoadFile(d, path)
	}
	loadLines(d, strings.NewReader(embeddedWordlist))
	if d.Empty() {
		return errors.New("words: embedded wordlist is empty")
	}
	return nil
}

// LoadFile fills d from a wordlist file at path.
func LoadFile(d *dict.Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := loadLines(d, f); err != nil {
		return err
	}
	if d.Empty() {
		return errors.New("words: wordlist " + path + " contains no usable words")
	}
	return nil
}

// loadLines inserts every usable line of r into d.
func loadLines(d *dict.Dictionary, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) >= minWordLen && isAlpha(w) {
			d.Insert(w)
		}
	}
	return sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
