// Package wordlist provides ordered lookup over the BIP-0039 English word
// list. The list itself is external, fixed data (2048 entries); this
// package only adds index<->word accessors over it.
package wordlist

import (
	"github.com/tyler-smith/go-bip39/wordlists"

	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

// Size is the number of entries in the word list.
const Size = 2048

// English is the ordered BIP-0039 English word list.
//
//nolint:gochecknoglobals // Static external word list, read-only after init
var English = wordlists.English

// WordAt returns the word at the given 11-bit index.
func WordAt(index int) (string, error) {
	if index < 0 || index >= len(English) {
		return "", mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{
			"expected": "0..2047",
			"obtained": itoa(index),
		})
	}
	return English[index], nil
}

// IndexOf returns the index of word in the list via linear lookup, as
// BIP-0039 implementations are expected to do (no assumption of sorted
// order in consumer code).
func IndexOf(word string) (int, error) {
	for i, w := range English {
		if w == word {
			return i, nil
		}
	}
	return -1, mnerr.WithDetails(mnerr.ErrInvalidWord, map[string]string{
		"word": word,
	})
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
