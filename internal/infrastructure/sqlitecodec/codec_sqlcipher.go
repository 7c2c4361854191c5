//go:build sqlcipher
// +build sqlcipher

package sqlitecodec

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	sqlite3 "github.com/mutecomm/go-sqlcipher/v4"
)

// DriverName is the database/sql driver registered by this build variant.
// The SQLCipher driver registers under the same name as the plain one.
const DriverName = "sqlite3"

// Available reports whether an encryption codec was compiled into this build.
func Available() bool {
	return true
}

// ConnString builds the DSN for the database at path. A non-empty key is
// handed to the driver at open time via _pragma_key: SQLCipher derives the
// page keys before the first statement runs, which is the only way an
// already encrypted file can be opened.
func ConnString(path string, key []byte) (string, error) {
	if len(key) == 0 {
		return fmt.Sprintf("file:%s", url.PathEscape(path)), nil
	}
	return fmt.Sprintf(
		"file:%s?_pragma_key=%s&_pragma_cipher_page_size=4096&_pragma_kdf_iter=256000",
		url.PathEscape(path),
		url.QueryEscape(keyLiteral(key)),
	), nil
}

// cipherCodec forwards key operations to SQLCipher via PRAGMA statements on
// the connection. Status codes are the driver's and pass through unchanged.
// The pragma acts on a single physical connection, so conn must be pinned to
// one (registry and CLI handles cap the pool at a single connection).
type cipherCodec struct{}

// New returns the codec selected by the build.
func New() encryption.Codec {
	return cipherCodec{}
}

func (cipherCodec) Apply(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	return run(ctx, conn, "key", key)
}

func (cipherCodec) Change(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	return run(ctx, conn, "rekey", key)
}

func run(ctx context.Context, conn encryption.Conn, verb string, key []byte) (int, error) {
	if _, err := conn.ExecContext(ctx, keyPragma(verb, key)); err != nil {
		status := statusOf(err)
		return status, &encryption.CodecError{Op: verb, Status: status, Err: err}
	}
	return encryption.StatusOK, nil
}

// statusOf extracts the SQLite error code when the driver reports one.
func statusOf(err error) int {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return int(sqliteErr.Code)
	}
	return int(sqlite3.ErrError)
}
