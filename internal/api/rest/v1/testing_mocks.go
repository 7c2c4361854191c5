//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) IsEnabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockKeyService) SetKey(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	args := m.Called(ctx, conn, key)
	return args.Int(0), args.Error(1)
}

func (m *MockKeyService) ReKey(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	args := m.Called(ctx, conn, key)
	return args.Int(0), args.Error(1)
}

// MockConnectionRegistry is a mock implementation of ConnectionRegistry
type MockConnectionRegistry struct {
	mock.Mock
}

func (m *MockConnectionRegistry) Register(ctx context.Context, label, path string, key []byte) (*encryption.DatabaseRef, error) {
	args := m.Called(ctx, label, path, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encryption.DatabaseRef), args.Error(1)
}

func (m *MockConnectionRegistry) Conn(id string) (encryption.Conn, *encryption.DatabaseRef, error) {
	args := m.Called(id)
	var conn encryption.Conn
	if args.Get(0) != nil {
		conn = args.Get(0).(encryption.Conn)
	}
	var ref *encryption.DatabaseRef
	if args.Get(1) != nil {
		ref = args.Get(1).(*encryption.DatabaseRef)
	}
	return conn, ref, args.Error(2)
}

func (m *MockConnectionRegistry) List() []*encryption.DatabaseRef {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*encryption.DatabaseRef)
}

func (m *MockConnectionRegistry) Close(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockConnectionRegistry) CloseAll() error {
	args := m.Called()
	return args.Error(0)
}

// MockKeyChangeAuditService is a mock implementation of KeyChangeAuditService
type MockKeyChangeAuditService struct {
	mock.Mock
}

func (m *MockKeyChangeAuditService) Record(ctx context.Context, event *encryption.KeyChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKeyChangeAuditService) List(ctx context.Context, query *encryption.KeyChangeQuery) ([]*encryption.KeyChangeEvent, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*encryption.KeyChangeEvent), args.Error(1)
}

func (m *MockKeyChangeAuditService) GetByID(ctx context.Context, eventID string) (*encryption.KeyChangeEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encryption.KeyChangeEvent), args.Error(1)
}

func (m *MockKeyChangeAuditService) DeleteByID(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
