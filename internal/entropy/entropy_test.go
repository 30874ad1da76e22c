package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw_ReturnsRequestedBitWidth(t *testing.T) {
	v, err := Raw(128)
	require.NoError(t, err)
	assert.LessOrEqual(t, v.BitLen(), 128)
}

func TestRaw_IsNotDeterministic(t *testing.T) {
	a, err := Raw(256)
	require.NoError(t, err)
	b, err := Raw(256)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHardened_Returns32Bytes(t *testing.T) {
	b, err := Hardened()
	require.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestHardened_IsNotDeterministic(t *testing.T) {
	a, err := Hardened()
	require.NoError(t, err)
	b, err := Hardened()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
