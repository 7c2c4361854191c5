// Package keyutil derives and encodes raw database encryption keys.
package keyutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// RawKeySize is the raw key length SQLCipher expects, in bytes.
const RawKeySize = 32

// DefaultIterations is the PBKDF2 iteration count used when deriving a raw
// key from a passphrase.
const DefaultIterations = 256_000

// Derive stretches a passphrase and salt into a raw key with PBKDF2-SHA256.
func Derive(passphrase, salt []byte, iterations int) []byte {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return pbkdf2.Key(passphrase, salt, iterations, RawKeySize, sha256.New)
}

// Decode parses a hex-encoded key into raw bytes.
func Decode(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex key: %w", err)
	}
	return key, nil
}

// Encode renders a raw key as lowercase hex.
func Encode(key []byte) string {
	return hex.EncodeToString(key)
}
