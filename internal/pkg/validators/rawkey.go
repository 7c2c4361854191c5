package validators

import (
	"encoding/hex"

	"github.com/go-playground/validator/v10"
)

// RawKeyValidation validates that a field holds a hex-encoded raw key of a
// length the cipher accepts (16, 24 or 32 bytes).
func RawKeyValidation(fl validator.FieldLevel) bool {
	key, err := hex.DecodeString(fl.Field().String())
	if err != nil {
		return false
	}

	switch len(key) {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}
