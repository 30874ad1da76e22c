// Package splitjoin implements plausible-deniability splitting of a
// 24-word BIP-0039 mnemonic into two 12-word halves, and the inverse
// join, with an optional reversible entropy transform applied between.
package splitjoin

import (
	"fmt"
	"strings"

	"github.com/arcthorne/mnemonix/internal/mnemonic"
	"github.com/arcthorne/mnemonix/internal/transform"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

const (
	wordCount24 = 24
	wordCount12 = 12
	halfBytes   = 16 // 128-bit entropy half
)

// Split decodes a 24-word mnemonic to its 32-byte entropy, applies algo,
// and splits the result into two 16-byte halves, each re-encoded as a
// 12-word mnemonic. PASSWORD is disallowed here: it is non-involutive
// and length-changing, incompatible with the fixed 256-bit width this
// algorithm requires.
func Split(m24 string, algo transform.Transform) (left, right string, err error) {
	if algo.Kind() == transform.KindPassword {
		return "", "", passwordNotAllowed()
	}

	if wc := wordCount(m24); wc != wordCount24 {
		return "", "", mnerr.WithDetails(mnerr.ErrInvalidSize, map[string]string{
			"expected": fmt.Sprintf("%d words", wordCount24),
			"obtained": fmt.Sprintf("%d words", wc),
		})
	}

	seed, err := mnemonic.FromMnemonic(m24, false)
	if err != nil {
		return "", "", err
	}

	transformed, err := algo.Encrypt(seed.Entropy())
	if err != nil {
		return "", "", err
	}

	leftEntropy := transformed[:halfBytes]
	rightEntropy := transformed[halfBytes:]

	leftSeed, err := mnemonic.FromEntropyBytes(leftEntropy)
	if err != nil {
		return "", "", err
	}
	rightSeed, err := mnemonic.FromEntropyBytes(rightEntropy)
	if err != nil {
		return "", "", err
	}

	return leftSeed.MnemonicString(), rightSeed.MnemonicString(), nil
}

// Join decodes two 12-word mnemonics to 16-byte entropies each,
// concatenates them (left || right), applies algo, and re-encodes the
// resulting 32 bytes as a single 24-word mnemonic.
//
// Join applies algo.Encrypt, not Decrypt: NEGATIVE and REVERSAL are
// self-inverse involutions, so the same operation that Split applied is
// also its own undo. PASSWORD is rejected before this matters.
func Join(m12Left, m12Right string, algo transform.Transform) (string, error) {
	if algo.Kind() == transform.KindPassword {
		return "", passwordNotAllowed()
	}

	var joined []byte
	for _, half := range []string{m12Left, m12Right} {
		if wc := wordCount(half); wc != wordCount12 {
			return "", mnerr.WithDetails(mnerr.ErrInvalidSize, map[string]string{
				"expected": fmt.Sprintf("%d words", wordCount12),
				"obtained": fmt.Sprintf("%d words", wc),
			})
		}

		seed, err := mnemonic.FromMnemonic(half, false)
		if err != nil {
			return "", err
		}
		joined = append(joined, seed.Entropy()...)
	}

	transformed, err := algo.Encrypt(joined)
	if err != nil {
		return "", err
	}

	seed, err := mnemonic.FromEntropyBytes(transformed)
	if err != nil {
		return "", err
	}

	return seed.MnemonicString(), nil
}

func wordCount(m string) int {
	return len(strings.Fields(m))
}

func passwordNotAllowed() error {
	return mnerr.WithSuggestion(mnerr.ErrInvalidArgument,
		"use none, negative, or reversal: password is non-involutive and cannot preserve the 256-bit width split/join requires")
}
