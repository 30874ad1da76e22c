// Package entropy provides CSPRNG-backed entropy generation: a raw
// integer of a chosen bit width for tests and tooling, and a PBKDF2-"hardened" 32-byte generator used
// as the default source for new 24-word mnemonics.
package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// hardenedPasswordSize is the CSPRNG password length fed to PBKDF2.
	hardenedPasswordSize = 32
	// hardenedSaltSize is the CSPRNG salt length fed to PBKDF2.
	hardenedSaltSize = 16
	// hardenedRounds is the whitening round count. This is not a KDF for
	// user input; it inherits its security from the CSPRNG inputs.
	hardenedRounds = 2048
	// hardenedOutputSize is the number of bytes Hardened() returns.
	hardenedOutputSize = 32
)

// Raw returns nBits of CSPRNG output as an unsigned big integer. Used by
// tests and by callers that want entropy without the whitening pass.
func Raw(nBits int) (*big.Int, error) {
	nBytes := (nBits + 7) / 8
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}

	result := new(big.Int).SetBytes(buf)
	if extra := nBytes*8 - nBits; extra > 0 {
		result.Rsh(result, uint(extra))
	}
	return result, nil
}

// Hardened returns exactly 32 bytes: PBKDF2-HMAC-SHA256 of a freshly
// generated CSPRNG password and salt. This is the default entropy
// producer for new 24-word mnemonics.
func Hardened() ([]byte, error) {
	password := make([]byte, hardenedPasswordSize)
	if _, err := io.ReadFull(rand.Reader, password); err != nil {
		return nil, err
	}

	salt := make([]byte, hardenedSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	return pbkdf2.Key(password, salt, hardenedRounds, hardenedOutputSize, sha256.New), nil
}
