package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_KnownMainnetP2WPKH(t *testing.T) {
	pub, err := Version(Mainnet, P2WPKH, PubKey)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04b24746), pub)

	prv, err := Version(Mainnet, P2WPKH, PrvKey)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04b2430c), prv)
}

func TestVersion_KnownMainnetP2SH(t *testing.T) {
	pub, err := Version(Mainnet, P2SH, PubKey)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0488b21e), pub)

	prv, err := Version(Mainnet, P2SH, PrvKey)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0488ade4), prv)
}

func TestFindByVersion_RoundTrips(t *testing.T) {
	for _, nt := range []Network{Mainnet, Testnet} {
		for _, at := range []AddressType{P2SH, P2SHP2WPKH, P2WPKH} {
			pub, err := Version(nt, at, PubKey)
			require.NoError(t, err)

			gotNet, gotAddr, gotKey, ok := FindByVersion(pub)
			require.True(t, ok)
			assert.Equal(t, nt, gotNet)
			assert.Equal(t, at, gotAddr)
			assert.Equal(t, PubKey, gotKey)
		}
	}
}

func TestFindByVersion_UnknownValue(t *testing.T) {
	_, _, _, ok := FindByVersion(0xdeadbeef)
	assert.False(t, ok)
}

func TestPath_RoundTripsWithFindByPath(t *testing.T) {
	path, ok := Path(Mainnet, P2WPKH)
	require.True(t, ok)
	assert.Equal(t, "m/84h/0h", path)

	nt, at, ok := FindByPath(path)
	require.True(t, ok)
	assert.Equal(t, Mainnet, nt)
	assert.Equal(t, P2WPKH, at)
}

func TestFindByPath_UnknownPath(t *testing.T) {
	_, _, ok := FindByPath("m/999h/0h")
	assert.False(t, ok)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, P2WPKH, AddressType(DefaultAddressType))
	assert.Equal(t, PubKey, KeyType(DefaultKeyType))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "mainnet", Mainnet.String())
	assert.Equal(t, "testnet", Testnet.String())
	assert.Equal(t, "p2sh", P2SH.String())
	assert.Equal(t, "p2sh-p2wpkh", P2SHP2WPKH.String())
	assert.Equal(t, "p2wpkh", P2WPKH.String())
}
