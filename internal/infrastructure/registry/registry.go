// Package registry tracks open SQLite connections by ID so API callers can
// reference a handle without owning its lifecycle.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/infrastructure/sqlitecodec"
	"github.com/sealkit/sqlseal/internal/pkg/logger"

	"github.com/google/uuid"
)

type entry struct {
	db  *sql.DB
	ref *encryption.DatabaseRef
}

type sqliteRegistry struct {
	mu     sync.Mutex
	open   map[string]*entry
	logger logger.Logger
}

// NewSQLiteRegistry creates a registry that opens databases with the
// build-selected SQLite driver.
func NewSQLiteRegistry(logger logger.Logger) (encryption.ConnectionRegistry, error) {
	return &sqliteRegistry{
		open:   make(map[string]*entry),
		logger: logger,
	}, nil
}

func (r *sqliteRegistry) Register(ctx context.Context, label, path string, key []byte) (*encryption.DatabaseRef, error) {
	dsn, err := sqlitecodec.ConnString(path, key)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(sqlitecodec.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// Key pragmas act on a single physical connection. One connection per
	// handle keeps every later statement on the keyed connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	ref := &encryption.DatabaseRef{
		ID:                 uuid.New().String(),
		Label:              label,
		Path:               path,
		DateTimeRegistered: time.Now().UTC(),
	}
	if err := ref.Validate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("validation error: %w", err)
	}

	r.mu.Lock()
	r.open[ref.ID] = &entry{db: db, ref: ref}
	r.mu.Unlock()

	r.logger.Info("Registered database ", label, " with id ", ref.ID)
	return ref, nil
}

func (r *sqliteRegistry) Conn(id string) (encryption.Conn, *encryption.DatabaseRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.open[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", encryption.ErrUnknownDatabase, id)
	}
	return e.db, e.ref, nil
}

func (r *sqliteRegistry) List() []*encryption.DatabaseRef {
	r.mu.Lock()
	defer r.mu.Unlock()

	refs := make([]*encryption.DatabaseRef, 0, len(r.open))
	for _, e := range r.open {
		refs = append(refs, e.ref)
	}
	return refs
}

func (r *sqliteRegistry) Close(id string) error {
	r.mu.Lock()
	e, ok := r.open[id]
	if ok {
		delete(r.open, id)
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", encryption.ErrUnknownDatabase, id)
	}

	if err := e.db.Close(); err != nil {
		return fmt.Errorf("failed to close database %s: %w", id, err)
	}

	r.logger.Info("Closed database with id ", id)
	return nil
}

func (r *sqliteRegistry) CloseAll() error {
	r.mu.Lock()
	entries := make([]*entry, 0, len(r.open))
	for _, e := range r.open {
		entries = append(entries, e)
	}
	r.open = make(map[string]*entry)
	r.mu.Unlock()

	var firstErr error
	for _, e := range entries {
		if err := e.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close database %s: %w", e.ref.ID, err)
		}
	}
	return firstErr
}
