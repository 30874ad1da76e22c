// Package mnemonic implements the BIP-0039 entropy<->mnemonic<->root-seed
// codec. A Seed owns an entropy byte string and an optional passphrase;
// its Mnemonic and RootSeed are both pure derivations of that state.
package mnemonic

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/arcthorne/mnemonix/internal/wordlist"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

const (
	wordBits = 11 // bits per mnemonic word index

	entropySizeMin = 128
	entropySizeMax = 256
	entropySizeDiv = 32 // entropy bit length must be a multiple of this

	rootSeedIterations = 2048 // BIP-0039 PBKDF2 round count
	rootSeedKeyLen     = 64   // BIP-0039 root seed length in bytes
)

// validEntropySizes are the allowed entropy bit lengths.
//
//nolint:gochecknoglobals // Fixed table per BIP-0039
var validEntropySizes = [...]int{128, 160, 192, 224, 256}

// validWordCounts are the allowed mnemonic word counts, corresponding
// 1:1 with validEntropySizes.
//
//nolint:gochecknoglobals // Fixed table per BIP-0039
var validWordCounts = [...]int{12, 15, 18, 21, 24}

//nolint:gochecknoglobals // Compiled once, used for whitespace-splitting string input
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Seed owns a BIP-0039 entropy value and an optional passphrase. Seeds
// are immutable once constructed except for the passphrase, which has no
// default validation requirement (empty is valid).
type Seed struct {
	entropy    []byte
	passphrase string
}

func isValidEntropySize(bits int) bool {
	for _, v := range validEntropySizes {
		if v == bits {
			return true
		}
	}
	return false
}

func isValidWordCount(n int) bool {
	for _, v := range validWordCounts {
		if v == n {
			return true
		}
	}
	return false
}

// FromEntropyBytes constructs a Seed from a raw entropy byte string.
// Fails with ErrInvalidSize if the bit length is not in {128,160,192,224,256}.
func FromEntropyBytes(b []byte) (*Seed, error) {
	bits := len(b) * 8
	if !isValidEntropySize(bits) {
		return nil, mnerr.WithDetails(mnerr.ErrInvalidSize, map[string]string{
			"expected": "128, 160, 192, 224 or 256 bits",
			"obtained": fmt.Sprintf("%d bits", bits),
		})
	}

	cp := make([]byte, len(b))
	copy(cp, b)
	return &Seed{entropy: cp}, nil
}

// FromEntropyInt constructs a Seed from an unsigned integer. The bit
// length used is the integer's natural bit length rounded up to the
// next multiple of 32, and never less than 128, so a value with leading
// zero bytes is treated as the zero-padded entropy of that rounded width.
func FromEntropyInt(v *big.Int) (*Seed, error) {
	if v.Sign() < 0 {
		return nil, mnerr.WithSuggestion(mnerr.ErrInvalidValue, "entropy integer must be non-negative")
	}

	bitLen := v.BitLen()
	rounded := ((bitLen + entropySizeDiv - 1) / entropySizeDiv) * entropySizeDiv
	if rounded < entropySizeMin {
		rounded = entropySizeMin
	}

	b := make([]byte, rounded/8)
	v.FillBytes(b)
	return FromEntropyBytes(b)
}

// FromEntropyHex constructs a Seed from a hexadecimal string.
// Fails with ErrInvalidValue on malformed hex.
func FromEntropyHex(s string) (*Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrInvalidValue, "malformed hex entropy")
	}
	return FromEntropyBytes(b)
}

// Checksum returns the K = L/32 bit BIP-0039 checksum for this seed's
// entropy: the top K bits of SHA-256(entropy).
func (s *Seed) Checksum() int {
	k := len(s.entropy) * 8 / entropySizeDiv
	h := sha256.Sum256(s.entropy)
	return int(h[0] >> (8 - uint(k)))
}

// Entropy returns a copy of the owned entropy bytes.
func (s *Seed) Entropy() []byte {
	cp := make([]byte, len(s.entropy))
	copy(cp, s.entropy)
	return cp
}

// Mnemonic renders the BIP-0039 word sequence for this seed's entropy.
func (s *Seed) Mnemonic() []string {
	l := len(s.entropy) * 8
	k := l / entropySizeDiv
	w := (l + k) / wordBits

	seedInt := new(big.Int).SetBytes(s.entropy)
	seedInt.Lsh(seedInt, uint(k))
	seedInt.Or(seedInt, big.NewInt(int64(s.Checksum())))

	mask := big.NewInt((1 << wordBits) - 1)
	tmp := new(big.Int)
	words := make([]string, w)
	for i := 0; i < w; i++ {
		shift := uint((w - i - 1) * wordBits)
		tmp.Rsh(seedInt, shift)
		tmp.And(tmp, mask)
		word, _ := wordlist.WordAt(int(tmp.Int64())) // index always in range: masked to 11 bits
		words[i] = word
	}
	return words
}

// MnemonicString renders the mnemonic as a single space-joined string.
func (s *Seed) MnemonicString() string {
	return strings.Join(s.Mnemonic(), " ")
}

// FromMnemonic reconstructs a Seed from a mnemonic phrase, given either
// as a whitespace-separated string or a pre-tokenized word slice. When
// correctLastWord is true, a checksum mismatch is accepted and the
// mnemonic effectively renormalized to the checksum-consistent last
// word; otherwise a mismatch fails with ErrInvalidChecksum.
func FromMnemonic(m any, correctLastWord bool) (*Seed, error) {
	words, err := tokenize(m)
	if err != nil {
		return nil, err
	}

	wc := len(words)
	if !isValidWordCount(wc) {
		return nil, mnerr.WithDetails(mnerr.ErrInvalidSize, map[string]string{
			"expected": "12, 15, 18, 21 or 24 words",
			"obtained": fmt.Sprintf("%d words", wc),
		})
	}

	seedInt := new(big.Int)
	for _, word := range words {
		idx, idxErr := wordlist.IndexOf(strings.ToLower(word))
		if idxErr != nil {
			return nil, idxErr
		}
		seedInt.Lsh(seedInt, wordBits)
		seedInt.Or(seedInt, big.NewInt(int64(idx)))
	}

	seedBits := wc * wordBits
	checksumSize := seedBits / 33
	entropySize := seedBits - checksumSize

	entropyInt := new(big.Int).Rsh(seedInt, uint(checksumSize))
	entropyBytes := make([]byte, entropySize/8)
	entropyInt.FillBytes(entropyBytes)

	checksumMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(checksumSize)), big.NewInt(1))
	presentedChecksum := new(big.Int).And(seedInt, checksumMask).Int64()

	seed, err := FromEntropyBytes(entropyBytes)
	if err != nil {
		return nil, err
	}

	if int64(seed.Checksum()) != presentedChecksum {
		if !correctLastWord {
			return nil, mnerr.WithDetails(mnerr.ErrInvalidChecksum, map[string]string{
				"expected": fmt.Sprintf("%0*b", checksumSize, seed.Checksum()),
				"obtained": fmt.Sprintf("%0*b", checksumSize, presentedChecksum),
			})
		}
		// correctLastWord: accept, the returned Seed's own Mnemonic()
		// already carries the checksum-consistent last word.
	}

	return seed, nil
}

func tokenize(m any) ([]string, error) {
	switch v := m.(type) {
	case string:
		norm := whitespaceRegex.ReplaceAllString(strings.TrimSpace(v), " ")
		if norm == "" {
			return nil, nil
		}
		return strings.Split(norm, " "), nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	default:
		return nil, mnerr.WithSuggestion(mnerr.ErrInvalidValue, "mnemonic must be a string or a slice of words")
	}
}

// Passphrase returns the BIP-0039 passphrase (default empty).
func (s *Seed) Passphrase() string {
	return s.passphrase
}

// SetPassphrase sets the BIP-0039 passphrase used by RootSeed.
func (s *Seed) SetPassphrase(p string) {
	s.passphrase = p
}

// RootSeed derives the 64-byte BIP-0039 root seed:
// PBKDF2-HMAC-SHA512(password = mnemonic words joined by spaces,
// salt = "mnemonic" + passphrase, iterations = 2048, dkLen = 64).
func (s *Seed) RootSeed() []byte {
	password := []byte(s.MnemonicString())
	salt := []byte("mnemonic" + s.passphrase)
	return pbkdf2.Key(password, salt, rootSeedIterations, rootSeedKeyLen, sha512.New)
}
