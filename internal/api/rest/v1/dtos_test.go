//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRequest_Validate(t *testing.T) {
	key16 := strings.Repeat("ab", 16)
	key24 := strings.Repeat("cd", 24)
	key32 := strings.Repeat("ef", 32)

	tests := []struct {
		name      string
		request   KeyRequest
		shouldErr bool
	}{
		{"valid 16-byte key", KeyRequest{KeyHex: key16}, false},
		{"valid 24-byte key", KeyRequest{KeyHex: key24}, false},
		{"valid 32-byte key", KeyRequest{KeyHex: key32}, false},
		{"missing key", KeyRequest{}, true},
		{"not hex", KeyRequest{KeyHex: "zz" + key32[2:]}, true},
		{"odd length", KeyRequest{KeyHex: key32 + "a"}, true},
		{"unsupported length", KeyRequest{KeyHex: "abcd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestKeyRequest_Key(t *testing.T) {
	request := KeyRequest{KeyHex: "deadbeef"}

	key, err := request.Key()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, key)
}

func TestRegisterDatabaseRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RegisterDatabaseRequest
		shouldErr bool
	}{
		{"valid request", RegisterDatabaseRequest{Label: "census", Path: "/data/census.db"}, false},
		{"missing label", RegisterDatabaseRequest{Path: "/data/census.db"}, true},
		{"missing path", RegisterDatabaseRequest{Label: "census"}, true},
		{"label too long", RegisterDatabaseRequest{Label: strings.Repeat("x", 256), Path: "/data/census.db"}, true},
		{"valid open key", RegisterDatabaseRequest{Label: "census", Path: "/data/census.db", KeyHex: strings.Repeat("ab", 32)}, false},
		{"open key not hex", RegisterDatabaseRequest{Label: "census", Path: "/data/census.db", KeyHex: "not-hex"}, true},
		{"open key wrong length", RegisterDatabaseRequest{Label: "census", Path: "/data/census.db", KeyHex: "abcd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
