package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordAt_IndexOf_RoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 2047} {
		word, err := WordAt(idx)
		require.NoError(t, err)

		got, err := IndexOf(word)
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
}

func TestWordAt_OutOfRange(t *testing.T) {
	_, err := WordAt(-1)
	require.Error(t, err)

	_, err = WordAt(Size)
	require.Error(t, err)
}

func TestIndexOf_UnknownWord(t *testing.T) {
	_, err := IndexOf("zzznotaword")
	require.Error(t, err)
}

func TestSize_MatchesEnglishList(t *testing.T) {
	assert.Len(t, English, Size)
}
