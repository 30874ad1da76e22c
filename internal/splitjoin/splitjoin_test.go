package splitjoin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcthorne/mnemonix/internal/mnemonic"
	"github.com/arcthorne/mnemonix/internal/transform"
)

const original24 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"

func TestSplitJoin_RoundTripsForInvolutions(t *testing.T) {
	for _, algo := range []transform.Transform{transform.None(), transform.Negative(), transform.Reversal()} {
		algo := algo
		t.Run(algo.Kind().String(), func(t *testing.T) {
			left, right, err := Split(original24, algo)
			require.NoError(t, err)
			assert.Len(t, strings.Fields(left), 12)
			assert.Len(t, strings.Fields(right), 12)

			joined, err := Join(left, right, algo)
			require.NoError(t, err)
			assert.Equal(t, original24, joined)
		})
	}
}

func TestSplit_RejectsPassword(t *testing.T) {
	_, _, err := Split(original24, transform.Password("secret"))
	require.Error(t, err)
}

func TestJoin_RejectsPassword(t *testing.T) {
	left, right, err := Split(original24, transform.None())
	require.NoError(t, err)

	_, err = Join(left, right, transform.Password("secret"))
	require.Error(t, err)
}

func TestSplit_RejectsWrongWordCount(t *testing.T) {
	_, _, err := Split("abandon abandon abandon", transform.None())
	require.Error(t, err)
}

func TestJoin_RejectsWrongWordCount(t *testing.T) {
	_, err := Join("abandon abandon abandon", "abandon abandon abandon", transform.None())
	require.Error(t, err)
}

func TestSplit_HalvesDecodeToValidMnemonics(t *testing.T) {
	left, right, err := Split(original24, transform.Negative())
	require.NoError(t, err)

	_, err = mnemonic.FromMnemonic(left, false)
	require.NoError(t, err)
	_, err = mnemonic.FromMnemonic(right, false)
	require.NoError(t, err)
}
