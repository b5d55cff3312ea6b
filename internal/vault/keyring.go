package vault

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/99designs/keyring"
	"github.com/adrg/xdg"
)

// KeyringBackend stores entries in the OS keyring (macOS Keychain, Secret
// Service, wincred, KWallet) via 99designs/keyring.
type KeyringBackend struct {
	ring keyring.Keyring
}

// NewKeyringBackend opens the OS keyring for the given service namespace.
// Returns an error if no keyring is available on this platform so callers
// can fall back to the encrypted file backend.
func NewKeyringBackend(service string) (*KeyringBackend, error) {
	cfg := keyring.Config{
		ServiceName:              service,
		KeychainTrustApplication: true, // macOS: don't prompt every access
		FileDir:                  filepath.Join(xdg.DataHome, "lockbox", "keyring"),
		FilePasswordFunc:         keyring.TerminalPrompt,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	return &KeyringBackend{ring: ring}, nil
}

// Store inserts a new entry. The keyring drivers overwrite on Set, so the
// duplicate check is a probe before the write; a concurrent insert between
// probe and write is delegated to the platform's own atomicity.
func (b *KeyringBackend) Store(key string, data []byte) Status {
	if _, err := b.ring.Get(key); err == nil {
		return statusf(CodeDuplicate, "entry exists: %s", key)
	} else if !errors.Is(err, keyring.ErrKeyNotFound) {
		return statusf(CodeUnknown, "keyring get failed: %v", err)
	}
	return b.set(key, data)
}

// Retrieve returns the payload for key.
func (b *KeyringBackend) Retrieve(key string) ([]byte, Status) {
	item, err := b.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, statusf(CodeNotFound, "no entry: %s", key)
		}
		return nil, statusf(CodeUnknown, "keyring get failed: %v", err)
	}
	return item.Data, StatusOK
}

// Update overwrites an existing entry.
func (b *KeyringBackend) Update(key string, data []byte) Status {
	if _, err := b.ring.Get(key); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return statusf(CodeNotFound, "no entry: %s", key)
		}
		return statusf(CodeUnknown, "keyring get failed: %v", err)
	}
	return b.set(key, data)
}

// Delete removes the entry for key.
func (b *KeyringBackend) Delete(key string) Status {
	if err := b.ring.Remove(key); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return statusf(CodeNotFound, "no entry: %s", key)
		}
		return statusf(CodeUnknown, "keyring delete failed: %v", err)
	}
	return StatusOK
}

// List returns all keys in the service namespace.
func (b *KeyringBackend) List() ([]string, Status) {
	keys, err := b.ring.Keys()
	if err != nil {
		return nil, statusf(CodeUnknown, "keyring list failed: %v", err)
	}
	return keys, StatusOK
}

func (b *KeyringBackend) set(key string, data []byte) Status {
	item := keyring.Item{
		Key:  key,
		Data: data,
	}
	if err := b.ring.Set(item); err != nil {
		return statusf(CodeUnknown, "keyring set failed: %v", err)
	}
	return StatusOK
}
