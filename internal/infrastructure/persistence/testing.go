//go:build integration
// +build integration

package persistence

import (
	"testing"
	"time"

	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/infrastructure/persistence/models"
	"github.com/sealkit/sqlseal/internal/pkg/config"
	"github.com/sealkit/sqlseal/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB            *gorm.DB
	KeyChangeRepo encryption.KeyChangeRepository
}

// SetupTestDB initializes an in-memory test database with automatic cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.KeyChangeModel{}))

	repo, err := NewGormKeyChangeRepository(db, testutil.NewNoopLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	return &TestContext{
		DB:            db,
		KeyChangeRepo: repo,
	}
}

// CreateTestKeyChange builds a valid key-change event for tests.
func CreateTestKeyChange(t *testing.T, databaseID, operation string) *encryption.KeyChangeEvent {
	t.Helper()

	return &encryption.KeyChangeEvent{
		ID:              uuid.NewString(),
		DatabaseID:      databaseID,
		DatabaseLabel:   "test-db",
		Operation:       operation,
		Status:          encryption.StatusOK,
		DateTimeApplied: time.Now().UTC(),
	}
}
