package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/flock"
)

// FileBackend stores entries in an AES-256-GCM encrypted JSON file. This is
// the fallback for environments where no OS keyring is reachable (WSL,
// headless, Docker). A flock around every operation keeps concurrent lockbox
// processes from interleaving read-modify-write cycles.
type FileBackend struct {
	path string
	key  []byte
	lock *flock.Flock
}

// DefaultFilePath is where the encrypted vault lives unless overridden.
func DefaultFilePath() string {
	return filepath.Join(xdg.DataHome, "lockbox", "vault.enc")
}

// NewFileBackend creates a file-backed vault at path (DefaultFilePath when
// empty). If password is empty the key derives from a machine-specific
// identity, which is weaker than a user password.
// TODO: offer scrypt/argon2 derivation once a password flow lands in the CLI.
func NewFileBackend(path, password string) (*FileBackend, error) {
	if path == "" {
		path = DefaultFilePath()
	}

	var key []byte
	if password == "" {
		hostname, _ := os.Hostname()
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME") // Windows fallback
		}
		machineID := fmt.Sprintf("%s@%s", username, hostname)
		hash := sha256.Sum256([]byte(machineID))
		key = hash[:]
	} else {
		hash := sha256.Sum256([]byte(password))
		key = hash[:]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	return &FileBackend{
		path: path,
		key:  key,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (b *FileBackend) Store(key string, data []byte) Status {
	return b.mutate(func(entries map[string][]byte) Status {
		if _, ok := entries[key]; ok {
			return statusf(CodeDuplicate, "entry exists: %s", key)
		}
		entries[key] = data
		return StatusOK
	})
}

func (b *FileBackend) Retrieve(key string) ([]byte, Status) {
	var data []byte
	st := b.withLock(func() Status {
		entries, err := b.readVault()
		if err != nil {
			return statusf(CodeUnknown, "%v", err)
		}
		var ok bool
		if data, ok = entries[key]; !ok {
			return statusf(CodeNotFound, "no entry: %s", key)
		}
		return StatusOK
	})
	if st.Code != CodeOK {
		return nil, st
	}
	return data, StatusOK
}

func (b *FileBackend) Update(key string, data []byte) Status {
	return b.mutate(func(entries map[string][]byte) Status {
		if _, ok := entries[key]; !ok {
			return statusf(CodeNotFound, "no entry: %s", key)
		}
		entries[key] = data
		return StatusOK
	})
}

func (b *FileBackend) Delete(key string) Status {
	return b.mutate(func(entries map[string][]byte) Status {
		if _, ok := entries[key]; !ok {
			return statusf(CodeNotFound, "no entry: %s", key)
		}
		delete(entries, key)
		return StatusOK
	})
}

func (b *FileBackend) List() ([]string, Status) {
	var keys []string
	st := b.withLock(func() Status {
		entries, err := b.readVault()
		if err != nil {
			return statusf(CodeUnknown, "%v", err)
		}
		keys = make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		return StatusOK
	})
	if st.Code != CodeOK {
		return nil, st
	}
	return keys, StatusOK
}

// mutate runs a read-modify-write cycle under the file lock and persists the
// map only when fn reports success.
func (b *FileBackend) mutate(fn func(entries map[string][]byte) Status) Status {
	return b.withLock(func() Status {
		entries, err := b.readVault()
		if err != nil {
			return statusf(CodeUnknown, "%v", err)
		}
		if st := fn(entries); st.Code != CodeOK {
			return st
		}
		if err := b.writeVault(entries); err != nil {
			return statusf(CodeUnknown, "%v", err)
		}
		return StatusOK
	})
}

// withLock holds the cross-process flock for the duration of fn. Acquisition
// retries with exponential backoff so a briefly-held lock from another
// lockbox process doesn't fail the operation outright.
func (b *FileBackend) withLock(fn func() Status) Status {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond
	policy.MaxElapsedTime = 5 * time.Second

	err := backoff.Retry(func() error {
		locked, err := b.lock.TryLock()
		if err != nil {
			return backoff.Permanent(err)
		}
		if !locked {
			return fmt.Errorf("vault locked by another process")
		}
		return nil
	}, policy)
	if err != nil {
		return statusf(CodeUnavailable, "failed to acquire vault lock: %v", err)
	}
	defer b.lock.Unlock()

	return fn()
}

// readVault decrypts and parses the vault file. A missing or empty file is
// an empty vault.
func (b *FileBackend) readVault() (map[string][]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]byte), nil
		}
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}

	if len(data) == 0 {
		return make(map[string][]byte), nil
	}

	plaintext, err := b.decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt vault: %w", err)
	}

	var entries map[string][]byte
	if err := json.Unmarshal(plaintext, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse vault: %w", err)
	}

	return entries, nil
}

// writeVault encrypts and writes the entry map to disk.
func (b *FileBackend) writeVault(entries map[string][]byte) error {
	plaintext, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize vault: %w", err)
	}

	ciphertext, err := b.encrypt(plaintext)
	if err != nil {
		return err
	}

	if err := os.WriteFile(b.path, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}

	return nil
}

// encrypt seals plaintext with AES-256-GCM, prepending the random nonce.
func (b *FileBackend) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// decrypt opens ciphertext produced by encrypt, extracting the leading nonce.
func (b *FileBackend) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
