// internal/game/discover.go
//
// The two discovery queries.
//
// PossibleWords: everything formable right now, from the pool alone or by
// extending one existing word with pool letters.
//
// PotentialWords: everything that would become formable if exactly one more
// letter joined the pool, grouped by that missing letter. The scan probes
// candidate letters in descending tile-frequency order and stops after the
// first ProbeLimit distinct letters not already in the pool, trading the
// rare-letter tail for query speed.
//
// Every mask check here is a pre-filter: masks are multiplicity-blind, so
// inclusion is only ever decided after an exact letter-count confirmation.

package game

import (
	"sort"
	"strings"

	"github.com/robalobadob/grabble/internal/dict"
)

// PossibleWords returns all currently formable words, sorted by descending
// length (stable, so equal lengths keep the deterministic walk order). The
// same word text may appear twice with different provenance — once from the
// plain pool and once as an extension of an existing word.
func (s *State) PossibleWords() ([]Candidate, error) {
	if s.dict.Empty() {
		return nil, ErrDictionaryEmpty
	}

	poolC := s.poolCounts()
	possible := []Candidate{}

	// Anagrams of the pool alone: the pool contributes every letter.
	for word := range s.dict.Anagrams(poolC) {
		possible = append(possible, Candidate{Word: word, PoolLetters: word})
	}

	// Extensions of each existing word: pool ∪ word letters, filtered down
	// to strictly longer words that keep every letter of the original and
	// draw at least one new letter from the pool.
	for _, existing := range s.existing {
		exMask := s.existingMasks[existing]
		exCounts := s.existingCounts[existing]

		combined := poolC
		combined.Add(existing)
		for word := range s.dict.Anagrams(combined) {
			if len(word) <= len(existing) {
				continue
			}
			wordMask, _ := s.dict.WordMask(word)
			if !wordMask.Superset(exMask) {
				continue
			}
			// Quick check passed; confirm letter frequencies.
			wordCounts := dict.CountLetters(word)
			if !wordCounts.Contains(exCounts) {
				continue
			}
			newLetters := poolContribution(word, wordCounts, exCounts, poolC)
			if newLetters != "" {
				possible = append(possible, Candidate{
					Word:         word,
					ExistingWord: existing,
					PoolLetters:  newLetters,
				})
			}
		}
	}

	sortByLengthDesc(possible)
	return possible, nil
}

// PotentialWords returns, per missing letter, the words that become
// formable when that letter is added to the pool. Each list is sorted by
// descending length.
func (s *State) PotentialWords() (map[string][]Candidate, error) {
	if s.dict.Empty() {
		return nil, ErrDictionaryEmpty
	}

	poolC := s.poolCounts()
	poolMask := s.dict.Mask(string(s.pool))
	potential := make(map[string][]Candidate)

	checked := 0
	for i := 0; i < len(probeOrder) && checked < s.probeLimit(); i++ {
		letter := probeOrder[i]
		if poolC.Get(letter) > 0 {
			continue
		}

		// Probe the pool plus this one letter.
		augmented := poolC
		augmented.AddLetter(letter)
		for word := range s.dict.Anagrams(augmented) {
			s.addPotential(potential, word, poolMask, "")
		}

		// Probe each existing word's combined letters plus this letter.
		for _, existing := range s.existing {
			combined := poolC
			combined.Add(existing)
			if combined.Get(letter) > 0 {
				continue
			}
			combined.AddLetter(letter)
			availMask := poolMask | s.existingMasks[existing]
			for word := range s.dict.Anagrams(combined) {
				if len(word) > len(existing) {
					s.addPotential(potential, word, availMask, existing)
				}
			}
		}

		checked++
	}

	for letter := range potential {
		sortByLengthDesc(potential[letter])
	}
	return potential, nil
}

// addPotential records word under its single missing letter, if the word
// truly reduces to one missing distinct letter against availMask and — for
// existing-word extensions — keeps every letter of the original while
// contributing something new.
func (s *State) addPotential(potential map[string][]Candidate, word string, availMask dict.Mask, existing string) {
	wordMask, _ := s.dict.WordMask(word)
	if existing != "" {
		exMask := s.existingMasks[existing]
		if !wordMask.Superset(exMask) {
			return
		}
		if wordMask == exMask { // no new letter used
			return
		}
	}
	missing, ok := wordMask.MissingOne(availMask)
	if !ok {
		return
	}
	var newLetters []byte
	for j := 0; j < len(word); j++ {
		if existing == "" || strings.IndexByte(existing, word[j]) < 0 {
			newLetters = append(newLetters, word[j])
		}
	}
	if len(newLetters) == 0 {
		return
	}
	key := string(missing)
	potential[key] = append(potential[key], Candidate{
		Word:         word,
		ExistingWord: existing,
		PoolLetters:  string(newLetters),
	})
}

// poolContribution collects the letters of word (in word order) that the
// pool actually supplies on top of the existing word's counts.
func poolContribution(word string, wordCounts, exCounts, poolC dict.Counts) string {
	var out []byte
	for i := 0; i < len(word); i++ {
		l := word[i]
		if poolC.Get(l) > 0 && wordCounts.Get(l) > exCounts.Get(l) {
			out = append(out, l)
		}
	}
	return string(out)
}

// sortByLengthDesc orders candidates longest-first; stable so fixed input
// yields fixed output.
func sortByLengthDesc(list []Candidate) {
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i].Word) > len(list[j].Word)
	})
}
