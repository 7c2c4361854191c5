//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/stretchr/testify/mock"
)

// MockCodec is a mock implementation of the Codec interface
type MockCodec struct {
	mock.Mock
}

func (m *MockCodec) Apply(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	args := m.Called(ctx, conn, key)
	return args.Int(0), args.Error(1)
}

func (m *MockCodec) Change(ctx context.Context, conn encryption.Conn, key []byte) (int, error) {
	args := m.Called(ctx, conn, key)
	return args.Int(0), args.Error(1)
}

// MockKeyChangeRepository is a mock implementation of KeyChangeRepository
type MockKeyChangeRepository struct {
	mock.Mock
}

func (m *MockKeyChangeRepository) Create(ctx context.Context, event *encryption.KeyChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKeyChangeRepository) List(ctx context.Context, query *encryption.KeyChangeQuery) ([]*encryption.KeyChangeEvent, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*encryption.KeyChangeEvent), args.Error(1)
}

func (m *MockKeyChangeRepository) GetByID(ctx context.Context, eventID string) (*encryption.KeyChangeEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encryption.KeyChangeEvent), args.Error(1)
}

func (m *MockKeyChangeRepository) DeleteByID(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
