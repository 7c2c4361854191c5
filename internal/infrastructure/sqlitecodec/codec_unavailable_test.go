//go:build unit && !sqlcipher
// +build unit,!sqlcipher

package sqlitecodec

import (
	"context"
	"errors"
	"testing"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable_DefaultBuild(t *testing.T) {
	assert.False(t, Available())
}

func TestUnavailableCodec_Apply(t *testing.T) {
	codec := New()

	_, err := codec.Apply(context.Background(), nil, []byte("irrelevant"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, encryption.ErrNotEnabled))
}

func TestUnavailableCodec_Change(t *testing.T) {
	codec := New()

	_, err := codec.Change(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, encryption.ErrNotEnabled))
}

func TestConnString_DefaultBuild(t *testing.T) {
	dsn, err := ConnString("census.db", nil)
	require.NoError(t, err)
	assert.Equal(t, "census.db", dsn)
}

func TestConnString_DefaultBuild_KeyRejected(t *testing.T) {
	_, err := ConnString("census.db", []byte{0xAB, 0xCD})
	require.Error(t, err)
	assert.True(t, errors.Is(err, encryption.ErrNotEnabled))
}
