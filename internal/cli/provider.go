package cli

import (
	"errors"
	"fmt"
	"sync"

	"github.com/semmy-space/lockbox/internal/config"
	"github.com/semmy-space/lockbox/internal/output"
	"github.com/semmy-space/lockbox/internal/vault"
)

// StoreProvider lazily opens the credential store. Opening the keyring can
// prompt the user (macOS) or hit D-Bus, so it only happens when a command
// actually touches the vault, and at most once per invocation.
type StoreProvider struct {
	cfg *config.Config

	once     sync.Once
	store    *vault.CredentialStore
	storeErr error
}

// NewStoreProvider creates a StoreProvider with the given config.
func NewStoreProvider(cfg *config.Config) *StoreProvider {
	return &StoreProvider{cfg: cfg}
}

// Store returns the CredentialStore, creating it on first call.
func (sp *StoreProvider) Store() (*vault.CredentialStore, error) {
	sp.once.Do(func() {
		backend, err := sp.openBackend()
		if err != nil {
			sp.storeErr = &output.CLIError{
				ExitCode: output.ExitStoreError,
				Message:  fmt.Sprintf("Failed to open credential store: %v", err),
				Hint:     "Run: lockbox info",
			}
			return
		}
		sp.store = vault.New(backend)
	})

	return sp.store, sp.storeErr
}

func (sp *StoreProvider) openBackend() (vault.Backend, error) {
	service := sp.cfg.ResolvedService()

	switch sp.cfg.Backend {
	case "keyring":
		return vault.NewKeyringBackend(service)
	case "file":
		return vault.OpenFile()
	default:
		return vault.Open(service)
	}
}

// vaultError maps typed vault errors onto CLI errors with exit codes and
// hints. Errors that are not vault errors pass through unchanged.
func vaultError(err error) error {
	if err == nil {
		return nil
	}

	var nf *vault.NotFoundError
	if errors.As(err, &nf) {
		return &output.CLIError{
			ExitCode: output.ExitNotFound,
			Message:  fmt.Sprintf("No entry for key: %s", nf.Key),
			Hint:     "Run: lockbox ls",
		}
	}

	var dup *vault.DuplicateError
	if errors.As(err, &dup) {
		return &output.CLIError{
			ExitCode: output.ExitConflict,
			Message:  fmt.Sprintf("An entry already exists for key: %s", dup.Key),
			Hint:     fmt.Sprintf("Run: lockbox update %s", dup.Key),
		}
	}

	if errors.Is(err, vault.ErrInternal) {
		return &output.CLIError{
			ExitCode: output.ExitInternal,
			Message:  err.Error(),
		}
	}

	return err
}
