package vault

import (
	"sort"
	"sync"
)

// MemoryBackend keeps entries in a mutex-guarded map. It implements the same
// duplicate/not-found contract as the platform backends, which makes it the
// fake backend for unit tests. Entries do not survive the process.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string][]byte)}
}

func (b *MemoryBackend) Store(key string, data []byte) Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entries[key]; ok {
		return statusf(CodeDuplicate, "entry exists: %s", key)
	}
	b.entries[key] = append([]byte(nil), data...)
	return StatusOK
}

func (b *MemoryBackend) Retrieve(key string) ([]byte, Status) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.entries[key]
	if !ok {
		return nil, statusf(CodeNotFound, "no entry: %s", key)
	}
	return append([]byte(nil), data...), StatusOK
}

func (b *MemoryBackend) Update(key string, data []byte) Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entries[key]; !ok {
		return statusf(CodeNotFound, "no entry: %s", key)
	}
	b.entries[key] = append([]byte(nil), data...)
	return StatusOK
}

func (b *MemoryBackend) Delete(key string) Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entries[key]; !ok {
		return statusf(CodeNotFound, "no entry: %s", key)
	}
	delete(b.entries, key)
	return StatusOK
}

func (b *MemoryBackend) List() ([]string, Status) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, StatusOK
}
