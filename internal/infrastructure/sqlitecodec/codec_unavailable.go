//go:build !sqlcipher
// +build !sqlcipher

package sqlitecodec

import (
	"context"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	// Plain SQLite driver for builds without encryption support.
	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by this build variant.
const DriverName = "sqlite3"

// Available reports whether an encryption codec was compiled into this build.
func Available() bool {
	return false
}

// ConnString builds the DSN for the database at path. This build cannot use
// key material at open time; callers supplying a key get ErrNotEnabled.
func ConnString(path string, key []byte) (string, error) {
	if len(key) != 0 {
		return "", encryption.ErrNotEnabled
	}
	return path, nil
}

// unavailableCodec is the stub selected when no cipher is compiled in. Every
// key operation fails with encryption.ErrNotEnabled; arguments are ignored.
type unavailableCodec struct{}

// New returns the codec selected by the build.
func New() encryption.Codec {
	return unavailableCodec{}
}

func (unavailableCodec) Apply(_ context.Context, _ encryption.Conn, _ []byte) (int, error) {
	return encryption.StatusOK, encryption.ErrNotEnabled
}

func (unavailableCodec) Change(_ context.Context, _ encryption.Conn, _ []byte) (int, error) {
	return encryption.StatusOK, encryption.ErrNotEnabled
}
