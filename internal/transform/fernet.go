package transform

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"io"
	"time"

	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

// Fernet v1 token layout: version(1) || timestamp(8) || IV(16) ||
// ciphertext(n*16) || HMAC-SHA256(32), whole thing base64url-encoded.
const (
	fernetVersion    = 0x80
	fernetIVSize     = 16
	fernetHMACSize   = 32
	fernetHeaderSize = 1 + 8 + fernetIVSize // version + timestamp + IV
)

// deriveFernetKeys derives the 32-byte Fernet secret (SHA-256 of the
// UTF-8 password) and splits it into a signing key and an encryption
// key, exactly as the canonical Fernet key format does once decoded
// from its base64url representation.
func deriveFernetKeys(password string) (signingKey, encryptionKey []byte) {
	digest := sha256.Sum256([]byte(password))
	return digest[0:16], digest[16:32]
}

func fernetEncrypt(plaintext []byte, password string) ([]byte, error) {
	signingKey, encryptionKey := deriveFernetKeys(password)

	iv := make([]byte, fernetIVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, mnerr.Wrap(err, "generating Fernet IV")
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, mnerr.Wrap(err, "initializing AES cipher")
	}
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	header := make([]byte, fernetHeaderSize)
	header[0] = fernetVersion
	binary.BigEndian.PutUint64(header[1:9], uint64(time.Now().Unix()))
	copy(header[9:], iv)

	signed := append(header, ciphertext...)
	mac := hmac.New(sha256.New, signingKey)
	mac.Write(signed)
	tag := mac.Sum(nil)

	token := append(signed, tag...)

	out := make([]byte, base64.URLEncoding.EncodedLen(len(token)))
	base64.URLEncoding.Encode(out, token)
	return out, nil
}

func fernetDecrypt(token []byte, password string) ([]byte, error) {
	signingKey, encryptionKey := deriveFernetKeys(password)

	raw := make([]byte, base64.URLEncoding.DecodedLen(len(token)))
	n, err := base64.URLEncoding.Decode(raw, token)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrAuthFailure, "malformed Fernet token")
	}
	raw = raw[:n]

	if len(raw) < fernetHeaderSize+fernetHMACSize {
		return nil, mnerr.Wrap(mnerr.ErrAuthFailure, "truncated Fernet token")
	}

	signed := raw[:len(raw)-fernetHMACSize]
	gotTag := raw[len(raw)-fernetHMACSize:]

	mac := hmac.New(sha256.New, signingKey)
	mac.Write(signed)
	wantTag := mac.Sum(nil)

	if subtle.ConstantTimeCompare(gotTag, wantTag) != 1 {
		return nil, mnerr.ErrAuthFailure
	}

	if signed[0] != fernetVersion {
		return nil, mnerr.Wrap(mnerr.ErrAuthFailure, "unsupported Fernet version byte")
	}

	iv := signed[9:fernetHeaderSize]
	ciphertext := signed[fernetHeaderSize:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, mnerr.Wrap(mnerr.ErrAuthFailure, "invalid Fernet ciphertext length")
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, mnerr.Wrap(err, "initializing AES cipher")
	}
	plainPadded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plainPadded, ciphertext)

	plaintext, err := pkcs7Unpad(plainPadded, aes.BlockSize)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrAuthFailure, "invalid Fernet padding")
	}

	return plaintext, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, mnerr.ErrAuthFailure
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, mnerr.ErrAuthFailure
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, mnerr.ErrAuthFailure
		}
	}
	return data[:len(data)-padLen], nil
}
