// Package hangman narrows a lexicon down to the words consistent with
// a partially revealed pattern and a set of rejected letters, and ranks
// the remaining letters by how often they appear among the candidates.
package hangman

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/openwordgames/wordsolver/lexicon"
)

// Unknown marks an unrevealed position in a pattern.
const Unknown = '_'

// Solver filters lexicon words against hangman game state.
type Solver struct {
	byLength map[int][]string
}

// NewSolver indexes the lexicon's words by length. Building the index
// walks the whole trie once.
func NewSolver(lex *lexicon.Lexicon) *Solver {
	byLength := map[int][]string{}
	lex.Walk(func(word string) {
		byLength[len(word)] = append(byLength[len(word)], word)
	})
	return &Solver{byLength: byLength}
}

// A PatternError reports an unusable pattern or excluded-letter set.
type PatternError struct {
	Reason string
}

func (e *PatternError) Error() string {
	return "bad pattern: " + e.Reason
}

// Candidates returns the lexicon words matching the pattern, sorted.
// The pattern holds uppercase letters at revealed positions and
// Unknown elsewhere. A revealed letter must appear at exactly its
// revealed positions: every occurrence is exposed at once during play,
// so it cannot also hide under an Unknown. Excluded letters must not
// appear anywhere.
func (s *Solver) Candidates(pattern string, excluded string) ([]string, error) {
	pattern = strings.ToUpper(pattern)
	if pattern == "" {
		return nil, &PatternError{Reason: "empty pattern"}
	}
	for _, c := range pattern {
		if c != Unknown && (c < 'A' || c > 'Z') {
			return nil, &PatternError{Reason: "pattern holds letters and underscores only"}
		}
	}
	excluded = strings.ToUpper(excluded)
	for _, c := range excluded {
		if c < 'A' || c > 'Z' {
			return nil, &PatternError{Reason: "excluded letters must be letters"}
		}
		if strings.ContainsRune(pattern, c) {
			return nil, &PatternError{Reason: "letter both revealed and excluded"}
		}
	}

	revealed := lo.Uniq(strings.Split(strings.ReplaceAll(pattern, string(Unknown), ""), ""))
	out := lo.Filter(s.byLength[len(pattern)], func(word string, _ int) bool {
		return matches(word, pattern, revealed, excluded)
	})
	sort.Strings(out)
	return out, nil
}

func matches(word, pattern string, revealed []string, excluded string) bool {
	for i := 0; i < len(pattern); i++ {
		switch {
		case pattern[i] != Unknown:
			if word[i] != pattern[i] {
				return false
			}
		default:
			if strings.ContainsRune(excluded, rune(word[i])) {
				return false
			}
			// An unrevealed position cannot hold a revealed letter.
			for _, r := range revealed {
				if word[i] == r[0] {
					return false
				}
			}
		}
	}
	return true
}

// A LetterChance pairs a letter with the fraction of current
// candidates containing it.
type LetterChance struct {
	Letter byte
	Chance float64
}

// Distribution ranks the unguessed letters by the share of candidates
// each appears in, best guess first, ties alphabetical. Guessed
// letters (revealed or excluded) are omitted. With no candidates the
// result is empty.
func (s *Solver) Distribution(pattern string, excluded string) ([]LetterChance, error) {
	candidates, err := s.Candidates(pattern, excluded)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []LetterChance{}, nil
	}
	pattern = strings.ToUpper(pattern)
	excluded = strings.ToUpper(excluded)

	var counts [26]int
	for _, word := range candidates {
		var seen [26]bool
		for i := 0; i < len(word); i++ {
			seen[word[i]-'A'] = true
		}
		for idx, hit := range seen {
			if hit {
				counts[idx]++
			}
		}
	}

	out := []LetterChance{}
	for idx := 0; idx < 26; idx++ {
		letter := byte('A' + idx)
		if strings.ContainsRune(pattern, rune(letter)) ||
			strings.ContainsRune(excluded, rune(letter)) {
			continue
		}
		out = append(out, LetterChance{
			Letter: letter,
			Chance: float64(counts[idx]) / float64(len(candidates)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Chance > out[j].Chance
	})
	return out, nil
}
