package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	err := store.Save(ctx, "1/100_a.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)

	obj, err := store.Get(ctx, "1/100_a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), obj.Body)
	assert.Equal(t, "text/plain", obj.ContentType)
}

func TestMemoryStorageGetNotFound(t *testing.T) {
	store := NewMemoryStorage()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStorageSaveOverwrites(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", strings.NewReader("first"), ""))
	require.NoError(t, store.Save(ctx, "k", strings.NewReader("second"), ""))

	obj, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), obj.Body)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStorageDeleteAbsentKeyIsNoError(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	assert.NoError(t, store.Delete(ctx, "missing"))

	require.NoError(t, store.Save(ctx, "k", strings.NewReader("x"), ""))
	require.NoError(t, store.Delete(ctx, "k"))
	assert.Zero(t, store.Len())
}
