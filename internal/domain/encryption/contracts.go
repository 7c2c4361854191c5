package encryption

import (
	"context"
	"database/sql"
)

// Conn is an opaque handle to an open database connection. The connection is
// owned and lifecycle-managed by the caller (or the registry); key operations
// only execute against it. Both *sql.DB and *sql.Conn satisfy it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Codec is the external encryption primitive. Implementations forward to
// whichever cipher the build carries; the stub implementation reports every
// call as unavailable. The integer result follows the codec's own status-code
// convention (SQLite: 0 means OK) and is passed back to callers unchanged.
type Codec interface {
	// Apply sets the encryption key on conn.
	Apply(ctx context.Context, conn Conn, key []byte) (int, error)

	// Change replaces the existing encryption key on conn with key.
	Change(ctx context.Context, conn Conn, key []byte) (int, error)
}

// KeyService gates key management behind the build capability.
type KeyService interface {
	// IsEnabled reports whether an encryption codec was compiled into this
	// build. Read-only, decided once at startup.
	IsEnabled() bool

	// SetKey applies an encryption key to conn. When no codec is available it
	// returns ErrNotEnabled without inspecting conn or key; otherwise conn and
	// key are forwarded verbatim and the codec's status is returned unchanged.
	SetKey(ctx context.Context, conn Conn, key []byte) (int, error)

	// ReKey replaces the existing encryption key on conn. Identical contract
	// to SetKey, forwarding to the codec's re-key primitive.
	ReKey(ctx context.Context, conn Conn, key []byte) (int, error)
}

// KeyChangeRepository defines the interface for key-change audit record operations.
type KeyChangeRepository interface {
	Create(ctx context.Context, event *KeyChangeEvent) error
	List(ctx context.Context, query *KeyChangeQuery) ([]*KeyChangeEvent, error)
	GetByID(ctx context.Context, eventID string) (*KeyChangeEvent, error)
	DeleteByID(ctx context.Context, eventID string) error
}

// KeyChangeAuditService records and serves key-change audit events. Events
// carry metadata only; key material is never persisted.
type KeyChangeAuditService interface {
	// Record stores a key-change audit event.
	Record(ctx context.Context, event *KeyChangeEvent) error

	// List retrieves key-change events considering a query filter when set.
	List(ctx context.Context, query *KeyChangeQuery) ([]*KeyChangeEvent, error)

	// GetByID retrieves a key-change event by its unique ID.
	GetByID(ctx context.Context, eventID string) (*KeyChangeEvent, error)

	// DeleteByID deletes a key-change event by ID.
	DeleteByID(ctx context.Context, eventID string) error
}

// ConnectionRegistry tracks open database connections by ID so API callers can
// reference a handle without owning its lifecycle.
type ConnectionRegistry interface {
	// Register opens the database at path and tracks it under a fresh ID.
	// A non-nil key is handed to the driver at open time so an already
	// encrypted database can be opened; in builds without a codec a key
	// yields ErrNotEnabled. Key material is used for the open only and is
	// never retained.
	Register(ctx context.Context, label, path string, key []byte) (*DatabaseRef, error)

	// Conn returns the open connection handle and metadata for id.
	Conn(id string) (Conn, *DatabaseRef, error)

	// List returns metadata for every registered database.
	List() []*DatabaseRef

	// Close closes and forgets the database registered under id.
	Close(id string) error

	// CloseAll closes every registered database.
	CloseAll() error
}
