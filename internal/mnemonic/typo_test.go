package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestWord_ExactMatch(t *testing.T) {
	assert.Equal(t, "abandon", SuggestWord("abandon"))
}

func TestSuggestWord_OneTypo(t *testing.T) {
	assert.Equal(t, "abandon", SuggestWord("abandn"))
}

func TestSuggestWord_TooFarReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", SuggestWord("xyzxyzxyzxyz"))
}

func TestDetectTypos_FlagsOnlyUnknownWords(t *testing.T) {
	words := []string{"abandon", "abandn", "about"}
	typos := DetectTypos(words)

	assert.Len(t, typos, 1)
	assert.Equal(t, 1, typos[0].Index)
	assert.Equal(t, "abandn", typos[0].Word)
	assert.Equal(t, "abandon", typos[0].Suggestion)
}

func TestDetectTypos_NoTyposOnValidMnemonic(t *testing.T) {
	words := []string{"abandon", "abandon", "about"}
	assert.Empty(t, DetectTypos(words))
}
