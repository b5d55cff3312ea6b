package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store := New(NewMemoryBackend())

	require.NoError(t, store.Store("token", "secret1"))

	value, err := store.Retrieve("token")
	require.NoError(t, err)
	assert.Equal(t, "secret1", value)
}

func TestStoreDuplicate(t *testing.T) {
	store := New(NewMemoryBackend())

	require.NoError(t, store.Store("token", "secret1"))

	err := store.Store("token", "secret2")
	assert.ErrorIs(t, err, ErrDuplicate)

	// Original value is untouched
	value, err := store.Retrieve("token")
	require.NoError(t, err)
	assert.Equal(t, "secret1", value)
}

func TestMissingKey(t *testing.T) {
	store := New(NewMemoryBackend())

	t.Run("retrieve", func(t *testing.T) {
		_, err := store.Retrieve("ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		err := store.Update("ghost", "value")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		err := store.Delete("ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateReplacesValue(t *testing.T) {
	store := New(NewMemoryBackend())

	require.NoError(t, store.Store("token", "secret1"))
	require.NoError(t, store.Update("token", "secret2"))

	value, err := store.Retrieve("token")
	require.NoError(t, err)
	assert.Equal(t, "secret2", value)
}

func TestDeleteRemovesEntry(t *testing.T) {
	store := New(NewMemoryBackend())

	require.NoError(t, store.Store("token", "secret1"))
	require.NoError(t, store.Delete("token"))

	_, err := store.Retrieve("token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFullLifecycle(t *testing.T) {
	store := New(NewMemoryBackend())

	require.NoError(t, store.Store("token", "secret1"))

	value, err := store.Retrieve("token")
	require.NoError(t, err)
	assert.Equal(t, "secret1", value)

	require.NoError(t, store.Update("token", "secret2"))

	value, err = store.Retrieve("token")
	require.NoError(t, err)
	assert.Equal(t, "secret2", value)

	require.NoError(t, store.Delete("token"))

	_, err = store.Retrieve("token")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "token", nf.Key)
}

func TestInvalidUTF8Value(t *testing.T) {
	store := New(NewMemoryBackend())

	bad := string([]byte{0xff, 0xfe, 0xfd})

	err := store.Store("token", bad)
	assert.ErrorIs(t, err, ErrInternal)

	require.NoError(t, store.Store("token", "ok"))
	err = store.Update("token", bad)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestInvalidUTF8StoredBytes(t *testing.T) {
	backend := NewMemoryBackend()
	store := New(backend)

	// Simulate another producer writing raw bytes into the same namespace.
	require.Equal(t, CodeOK, backend.Store("binary", []byte{0xff, 0xfe}).Code)

	_, err := store.Retrieve("binary")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestKeys(t *testing.T) {
	store := New(NewMemoryBackend())

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, store.Store("b_key", "2"))
	require.NoError(t, store.Store("a_key", "1"))

	keys, err = store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a_key", "b_key"}, keys)
}

func TestEmptyValueRoundTrip(t *testing.T) {
	store := New(NewMemoryBackend())

	require.NoError(t, store.Store("empty", ""))

	value, err := store.Retrieve("empty")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
