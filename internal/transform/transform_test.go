package transform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvolutions_EncryptDecryptAreTheSameOperation(t *testing.T) {
	msg := []byte{0x00, 0x7f, 0x80, 0xff, 0x01, 0xfe}

	for _, algo := range []Transform{None(), Negative(), Reversal()} {
		algo := algo
		t.Run(algo.Kind().String(), func(t *testing.T) {
			enc, err := algo.Encrypt(msg)
			require.NoError(t, err)
			assert.Len(t, enc, len(msg))

			back, err := algo.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, msg, back)

			again, err := algo.Encrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, msg, again)
		})
	}
}

func TestNegative_ComplementsEveryBit(t *testing.T) {
	out, err := Negative().Encrypt([]byte{0x00, 0xff, 0x0f})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x00, 0xf0}, out)
}

func TestReversal_ReversesAcrossWholeBuffer(t *testing.T) {
	// 0x80 0x00 = bit 0 set (MSB of first byte); reversed across 16 bits
	// puts that single set bit at the very end (LSB of last byte).
	out, err := Reversal().Encrypt([]byte{0x80, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01}, out)
}

func TestPassword_RoundTrips(t *testing.T) {
	msg := []byte("correct horse battery staple entropy payload")
	algo := Password("hunter2")

	token, err := algo.Encrypt(msg)
	require.NoError(t, err)
	assert.NotEqual(t, msg, token)

	back, err := algo.Decrypt(token)
	require.NoError(t, err)
	assert.Equal(t, msg, back)
}

func TestPassword_RejectsEmptyPassword(t *testing.T) {
	_, err := Password("").Encrypt([]byte("x"))
	require.Error(t, err)
}

func TestPassword_WrongPasswordFailsAuth(t *testing.T) {
	token, err := Password("correct").Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = Password("wrong").Decrypt(token)
	require.Error(t, err)
}

func TestPassword_TamperedTokenFailsAuth(t *testing.T) {
	token, err := Password("hunter2").Encrypt([]byte("payload payload payload"))
	require.NoError(t, err)

	tampered := bytes.Clone(token)
	// Flip one bit in the base64url body; this perturbs the underlying
	// byte string so the HMAC check below it must fail.
	mid := len(tampered) / 2
	tampered[mid] ^= 0x01

	_, err = Password("hunter2").Decrypt(tampered)
	require.Error(t, err)
}

func TestFromSelector(t *testing.T) {
	cases := []struct {
		n    int
		kind Kind
	}{
		{0, KindNone},
		{1, KindNegative},
		{2, KindReversal},
		{3, KindPassword},
	}
	for _, c := range cases {
		got, err := FromSelector(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.kind, got)
	}

	_, err := FromSelector(4)
	require.Error(t, err)
}
