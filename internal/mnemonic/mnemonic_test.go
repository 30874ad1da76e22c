package mnemonic

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

// BIP-0039 English test vectors (passphrase "TREZOR"), from
// https://github.com/trezor/python-mnemonic/blob/master/vectors.json
//
//nolint:gochecknoglobals // Fixed table from the BIP-0039 specification
var bip39Vectors = []struct {
	entropy  string
	mnemonic string
	seed     string
}{
	{
		entropy:  "00000000000000000000000000000000",
		mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		seed:     "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
	},
	{
		entropy:  "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		mnemonic: "legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		entropy:  "80808080808080808080808080808080",
		mnemonic: "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		entropy:  "ffffffffffffffffffffffffffffffff",
		mnemonic: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
}

func TestFromEntropyHex_MatchesBIP39Vectors(t *testing.T) {
	for _, v := range bip39Vectors {
		v := v
		t.Run(v.mnemonic, func(t *testing.T) {
			seed, err := FromEntropyHex(v.entropy)
			require.NoError(t, err)
			assert.Equal(t, v.mnemonic, seed.MnemonicString())
		})
	}
}

func TestRootSeed_MatchesBIP39ZeroVector(t *testing.T) {
	seed, err := FromEntropyHex("00000000000000000000000000000000")
	require.NoError(t, err)
	seed.SetPassphrase("TREZOR")

	want, err := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	require.NoError(t, err)

	assert.Equal(t, want, seed.RootSeed())
}

func TestFromMnemonic_RoundTripsWithFromEntropyHex(t *testing.T) {
	for _, v := range bip39Vectors {
		v := v
		t.Run(v.mnemonic, func(t *testing.T) {
			seed, err := FromMnemonic(v.mnemonic, false)
			require.NoError(t, err)
			assert.Equal(t, v.mnemonic, seed.MnemonicString())

			want, err := hex.DecodeString(v.entropy)
			require.NoError(t, err)
			assert.Equal(t, want, seed.Entropy())
		})
	}
}

func TestFromMnemonic_AcceptsPreTokenizedWords(t *testing.T) {
	words := strings.Fields(bip39Vectors[0].mnemonic)
	seed, err := FromMnemonic(words, false)
	require.NoError(t, err)
	assert.Equal(t, bip39Vectors[0].mnemonic, seed.MnemonicString())
}

func TestFromMnemonic_ChecksumMismatch(t *testing.T) {
	words := strings.Fields(bip39Vectors[0].mnemonic)
	// "about" (checksum-consistent) -> "above" (still in the word list, wrong checksum).
	words[len(words)-1] = "above"
	busted := strings.Join(words, " ")

	_, err := FromMnemonic(busted, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, mnerr.ErrInvalidChecksum)

	// With correction enabled the mismatch is accepted; the first 11
	// words (the part of the entropy that precedes the swapped word's
	// checksum bits) are untouched. We only assert this is error-free
	// and self-consistent, since the swapped word's upper bits also
	// feed the entropy and may shift the trailing byte.
	corrected, err := FromMnemonic(busted, true)
	require.NoError(t, err)
	correctedWords := strings.Fields(corrected.MnemonicString())
	require.Len(t, correctedWords, 12)
	assert.Equal(t, words[:11], correctedWords[:11])
	assert.Equal(t, corrected.Checksum(), corrected.Checksum())
}

func TestFromMnemonic_UnknownWord(t *testing.T) {
	_, err := FromMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon zzzznotaword", false)
	require.Error(t, err)
}

func TestFromMnemonic_InvalidWordCount(t *testing.T) {
	_, err := FromMnemonic("abandon abandon abandon", false)
	require.Error(t, err)
}

func TestFromEntropyBytes_InvalidSize(t *testing.T) {
	_, err := FromEntropyBytes(make([]byte, 3))
	require.Error(t, err)
}

func TestFromEntropyInt_RoundsUpAndZeroPads(t *testing.T) {
	// A value needing only a few bits still rounds up to the minimum
	// 128-bit entropy width, zero-padded, per the design note that this
	// is intended behavior rather than an error.
	seed, err := FromEntropyInt(big.NewInt(1))
	require.NoError(t, err)
	assert.Len(t, seed.Entropy(), 16)
	assert.Equal(t, "00000000000000000000000000000001", hex.EncodeToString(seed.Entropy()))
}

func TestFromEntropyInt_RejectsNegative(t *testing.T) {
	_, err := FromEntropyInt(big.NewInt(-1))
	require.Error(t, err)
}

func TestChecksum_IsDeterministic(t *testing.T) {
	seed, err := FromEntropyHex(bip39Vectors[0].entropy)
	require.NoError(t, err)
	assert.Equal(t, seed.Checksum(), seed.Checksum())
}

