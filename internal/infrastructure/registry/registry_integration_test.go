//go:build integration
// +build integration

package registry

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRegistry(t *testing.T) encryption.ConnectionRegistry {
	t.Helper()

	reg, err := NewSQLiteRegistry(testutil.NewNoopLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = reg.CloseAll()
	})
	return reg
}

func TestSQLiteRegistry_RegisterAndConn(t *testing.T) {
	reg := setupRegistry(t)

	path := filepath.Join(t.TempDir(), "households.db")
	ref, err := reg.Register(context.Background(), "households", path, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, ref.ID)
	assert.Equal(t, "households", ref.Label)

	conn, gotRef, err := reg.Conn(ref.ID)
	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, ref.ID, gotRef.ID)

	// The handle is usable.
	_, err = conn.ExecContext(context.Background(), "CREATE TABLE households (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
}

func TestSQLiteRegistry_Conn_Unknown(t *testing.T) {
	reg := setupRegistry(t)

	_, _, err := reg.Conn("00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, encryption.ErrUnknownDatabase))
}

func TestSQLiteRegistry_List(t *testing.T) {
	reg := setupRegistry(t)

	dir := t.TempDir()
	_, err := reg.Register(context.Background(), "one", filepath.Join(dir, "one.db"), nil)
	require.NoError(t, err)
	_, err = reg.Register(context.Background(), "two", filepath.Join(dir, "two.db"), nil)
	require.NoError(t, err)

	assert.Len(t, reg.List(), 2)
}

func TestSQLiteRegistry_Close(t *testing.T) {
	reg := setupRegistry(t)

	ref, err := reg.Register(context.Background(), "ephemeral", filepath.Join(t.TempDir(), "e.db"), nil)
	require.NoError(t, err)

	require.NoError(t, reg.Close(ref.ID))

	_, _, err = reg.Conn(ref.ID)
	assert.True(t, errors.Is(err, encryption.ErrUnknownDatabase))

	err = reg.Close(ref.ID)
	assert.True(t, errors.Is(err, encryption.ErrUnknownDatabase))
}

func TestSQLiteRegistry_CloseAll(t *testing.T) {
	reg := setupRegistry(t)

	dir := t.TempDir()
	ref1, err := reg.Register(context.Background(), "one", filepath.Join(dir, "one.db"), nil)
	require.NoError(t, err)
	ref2, err := reg.Register(context.Background(), "two", filepath.Join(dir, "two.db"), nil)
	require.NoError(t, err)

	require.NoError(t, reg.CloseAll())
	assert.Empty(t, reg.List())

	_, _, err = reg.Conn(ref1.ID)
	assert.Error(t, err)
	_, _, err = reg.Conn(ref2.ID)
	assert.Error(t, err)
}
