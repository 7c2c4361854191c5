package app

import (
	"context"
	"fmt"

	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/pkg/logger"
)

// encryptionService implements the KeyService interface, gating key operations
// behind the build capability. It holds no per-call state: each operation is a
// capability check followed by a verbatim forward to the codec.
type encryptionService struct {
	codec   encryption.Codec
	enabled bool
	logger  logger.Logger
}

// NewEncryptionService creates a new encryptionService instance. enabled is
// decided once at startup from the build capability and never changes.
func NewEncryptionService(codec encryption.Codec, enabled bool, logger logger.Logger) (encryption.KeyService, error) {
	if codec == nil {
		return nil, fmt.Errorf("codec must not be nil")
	}
	return &encryptionService{
		codec:   codec,
		enabled: enabled,
		logger:  logger,
	}, nil
}

// IsEnabled reports whether an encryption codec was compiled into this build.
func (s *encryptionService) IsEnabled() bool {
	return s.enabled
}

// SetKey applies an encryption key to conn. Without a codec it fails with
// ErrNotEnabled before conn or key are touched.
func (s *encryptionService) SetKey(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	if !s.enabled {
		return 0, encryption.ErrNotEnabled
	}
	return s.codec.Apply(ctx, conn, key)
}

// ReKey replaces the existing encryption key on conn. Without a codec it
// fails with ErrNotEnabled before conn or key are touched.
func (s *encryptionService) ReKey(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	if !s.enabled {
		return 0, encryption.ErrNotEnabled
	}
	return s.codec.Change(ctx, conn, key)
}

// keyChangeAuditService implements the KeyChangeAuditService interface to
// manage key-change audit records.
type keyChangeAuditService struct {
	keyChangeRepo encryption.KeyChangeRepository
	logger        logger.Logger
}

// NewKeyChangeAuditService creates a new keyChangeAuditService instance
func NewKeyChangeAuditService(keyChangeRepo encryption.KeyChangeRepository, logger logger.Logger) (encryption.KeyChangeAuditService, error) {
	return &keyChangeAuditService{
		keyChangeRepo: keyChangeRepo,
		logger:        logger,
	}, nil
}

// Record stores a key-change audit event.
func (s *keyChangeAuditService) Record(ctx context.Context, event *encryption.KeyChangeEvent) error {
	if err := s.keyChangeRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Recorded ", event.Operation, " event with id ", event.ID)
	return nil
}

// List retrieves key-change events based on a query.
func (s *keyChangeAuditService) List(ctx context.Context, query *encryption.KeyChangeQuery) ([]*encryption.KeyChangeEvent, error) {
	events, err := s.keyChangeRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return events, nil
}

// GetByID retrieves a key-change event by its ID.
func (s *keyChangeAuditService) GetByID(ctx context.Context, eventID string) (*encryption.KeyChangeEvent, error) {
	event, err := s.keyChangeRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return event, nil
}

// DeleteByID deletes a key-change event by its ID.
func (s *keyChangeAuditService) DeleteByID(ctx context.Context, eventID string) error {
	if err := s.keyChangeRepo.DeleteByID(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete key-change event: %w", err)
	}

	return nil
}
