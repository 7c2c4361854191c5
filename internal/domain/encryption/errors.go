package encryption

import (
	"errors"
	"fmt"
)

// StatusOK is the codec status code for a successful key operation
// (SQLite convention).
const StatusOK = 0

// NotEnabledMessage is the fixed message reported when a key operation is
// invoked in a build without an encryption codec.
const NotEnabledMessage = "SQLite encryption is not enabled in this build"

// ErrNotEnabled is returned by key operations when no encryption codec was
// compiled in. It signals a build/packaging fact, not a wrong key or a corrupt
// database; callers should surface it distinctly from codec failures.
var ErrNotEnabled = errors.New(NotEnabledMessage)

// ErrUnknownDatabase is returned when a connection registry lookup does not
// match any registered database.
var ErrUnknownDatabase = errors.New("unknown database id")

// CodecError reports a failure raised by the external codec itself. Status
// carries the codec's integer status code unchanged.
type CodecError struct {
	Op     string // "key" or "rekey"
	Status int
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec %s failed with status %d: %v", e.Op, e.Status, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
