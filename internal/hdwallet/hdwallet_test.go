package hdwallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcthorne/mnemonix/internal/versions"
)

// BIP-0032 test vector 1 master node, seed = 000102030405060708090a0b0c0d0e0f.
func TestFromSeed_MatchesBIP32TestVector1(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	node, err := FromSeed(seed, versions.Mainnet, versions.P2SH)
	require.NoError(t, err)
	assert.True(t, node.IsPrivate())

	xprv, err := node.Xprv()
	require.NoError(t, err)
	assert.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", xprv)

	xpub, err := node.Xpub()
	require.NoError(t, err)
	assert.Equal(t, "xpub661MyMwAqRbcFtXgS5sYJABqqG9YVUD4oYYJaDGTtA4XFuCAbGedVCuU4SeHZb8gBPBv5skdCpFgGZ5GpiUNuZ64utWBEcoyMtz5Q5jqFvw", xpub)
}

func TestFromSeed_RejectsShortSeed(t *testing.T) {
	_, err := FromSeed(make([]byte, 8), versions.Mainnet, versions.P2WPKH)
	require.Error(t, err)
}

func TestFromSeed_RejectsLongSeed(t *testing.T) {
	_, err := FromSeed(make([]byte, 65), versions.Mainnet, versions.P2WPKH)
	require.Error(t, err)
}

func TestXpub_NeverExposesPrivateMaterial(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	node, err := FromSeed(seed, versions.Mainnet, versions.P2WPKH)
	require.NoError(t, err)

	xpub, err := node.Xpub()
	require.NoError(t, err)
	assert.Contains(t, xpub, "zpub")

	// The node itself still carries private material; only the
	// serialized xpub string is neutered.
	assert.True(t, node.IsPrivate())
}

func TestInfo_ReflectsNodeState(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	node, err := FromSeed(seed, versions.Testnet, versions.P2WPKH)
	require.NoError(t, err)

	info, err := node.Info()
	require.NoError(t, err)
	assert.Equal(t, "testnet", info.Network)
	assert.Equal(t, "p2wpkh", info.AddressType)
	assert.Equal(t, "m/84h/1h", info.Path)
	assert.True(t, info.CanSign)
	assert.NotEmpty(t, info.Xpub)
}
