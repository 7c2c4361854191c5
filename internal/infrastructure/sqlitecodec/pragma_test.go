//go:build unit
// +build unit

package sqlitecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPragma(t *testing.T) {
	tests := []struct {
		name     string
		verb     string
		key      []byte
		expected string
	}{
		{
			"set key",
			"key",
			[]byte{0x00, 0x01, 0xab, 0xff},
			`PRAGMA key = "x'0001ABFF'"`,
		},
		{
			"rekey",
			"rekey",
			[]byte{0xde, 0xad, 0xbe, 0xef},
			`PRAGMA rekey = "x'DEADBEEF'"`,
		},
		{
			"empty key",
			"key",
			nil,
			`PRAGMA key = "x''"`,
		},
		{
			"quote bytes stay inert",
			"key",
			[]byte(`'";--`),
			`PRAGMA key = "x'27223B2D2D'"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyPragma(tt.verb, tt.key))
		})
	}
}
