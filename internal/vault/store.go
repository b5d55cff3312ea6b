package vault

import "unicode/utf8"

// Backend is the capability interface over a platform secret store. Each
// method is a single call into the platform driver; the driver owns locking
// and atomicity. Implementations report outcomes as Status values rather
// than errors so the status-to-error mapping stays in one place (Classify).
type Backend interface {
	// Store inserts a new entry. Reports CodeDuplicate if key exists.
	Store(key string, data []byte) Status
	// Retrieve returns the payload for key, or CodeNotFound.
	Retrieve(key string) ([]byte, Status)
	// Update overwrites an existing entry. Reports CodeNotFound if absent.
	Update(key string, data []byte) Status
	// Delete removes the entry for key, or reports CodeNotFound.
	Delete(key string) Status
	// List returns all keys in this service's namespace.
	List() ([]string, Status)
}

// CredentialStore is a stateless facade over a Backend. It validates string
// encoding at the boundary and translates backend statuses into the typed
// errors in errors.go. Safe for concurrent use to the extent the backend is.
type CredentialStore struct {
	backend Backend
}

// New wraps a backend in a CredentialStore.
func New(backend Backend) *CredentialStore {
	return &CredentialStore{backend: backend}
}

// Store inserts value under a fresh key. Returns DuplicateError if the key
// already has an entry, InternalError if value is not valid UTF-8.
func (s *CredentialStore) Store(key, value string) error {
	if !utf8.ValidString(value) {
		return &InternalError{Detail: "value is not valid UTF-8"}
	}
	return Classify(s.backend.Store(key, []byte(value)), key)
}

// Retrieve returns the value stored under key. Returns NotFoundError if the
// key has no entry, InternalError if the stored bytes do not decode as UTF-8.
func (s *CredentialStore) Retrieve(key string) (string, error) {
	data, st := s.backend.Retrieve(key)
	if err := Classify(st, key); err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &InternalError{Detail: "stored bytes are not valid UTF-8"}
	}
	return string(data), nil
}

// Update overwrites the value for an existing key. Returns NotFoundError if
// the key has no entry.
func (s *CredentialStore) Update(key, value string) error {
	if !utf8.ValidString(value) {
		return &InternalError{Detail: "value is not valid UTF-8"}
	}
	return Classify(s.backend.Update(key, []byte(value)), key)
}

// Delete removes the entry for key. Returns NotFoundError if absent.
func (s *CredentialStore) Delete(key string) error {
	return Classify(s.backend.Delete(key), key)
}

// Keys lists every key in the vault namespace.
func (s *CredentialStore) Keys() ([]string, error) {
	keys, st := s.backend.List()
	if err := Classify(st, ""); err != nil {
		return nil, err
	}
	return keys, nil
}
