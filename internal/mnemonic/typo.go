package mnemonic

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/arcthorne/mnemonix/internal/wordlist"
)

// MaxTypoDistance is the maximum Levenshtein distance to consider a
// suggestion; words further than this are considered too different.
const MaxTypoDistance = 2

// TypoInfo describes one mnemonic word absent from the word list, along
// with the closest match found.
type TypoInfo struct {
	Index      int    // word position in the mnemonic (0-based)
	Word       string // the original, possibly misspelled word
	Suggestion string // closest word list entry, or empty if none close enough
	Distance   int    // Levenshtein distance to Suggestion
}

// SuggestWord finds the closest word list entry to input by Levenshtein
// distance. Returns "" if no entry is within MaxTypoDistance.
func SuggestWord(input string) string {
	input = strings.ToLower(input)

	minDist := math.MaxInt
	var suggestion string

	for i := 0; i < wordlist.Size; i++ {
		word, _ := wordlist.WordAt(i)
		dist := levenshtein.ComputeDistance(input, word)
		if dist == 0 {
			return word
		}
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

// DetectTypos scans already-tokenized mnemonic words and reports each one
// absent from the word list, with its closest suggestion.
func DetectTypos(words []string) []TypoInfo {
	var typos []TypoInfo

	for i, word := range words {
		lower := strings.ToLower(word)
		if _, err := wordlist.IndexOf(lower); err == nil {
			continue
		}

		suggestion := SuggestWord(lower)
		distance := 0
		if suggestion != "" {
			distance = levenshtein.ComputeDistance(lower, suggestion)
		}
		typos = append(typos, TypoInfo{
			Index:      i,
			Word:       word,
			Suggestion: suggestion,
			Distance:   distance,
		})
	}

	return typos
}
