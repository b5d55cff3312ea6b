package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semmy-space/lockbox/internal/output"
	"github.com/semmy-space/lockbox/internal/vault"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "plain key", key: "api_token", want: "api_token"},
		{name: "surrounding whitespace trimmed", key: "  api_token ", want: "api_token"},
		{name: "empty", key: "", wantErr: true},
		{name: "whitespace only", key: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				var cliErr *output.CLIError
				require.ErrorAs(t, err, &cliErr)
				assert.Equal(t, output.ExitUsage, cliErr.ExitCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVaultErrorMapping(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, vaultError(nil))
	})

	t.Run("not found", func(t *testing.T) {
		err := vaultError(&vault.NotFoundError{Key: "token"})
		var cliErr *output.CLIError
		require.ErrorAs(t, err, &cliErr)
		assert.Equal(t, output.ExitNotFound, cliErr.ExitCode)
		assert.Contains(t, cliErr.Message, "token")
	})

	t.Run("duplicate", func(t *testing.T) {
		err := vaultError(&vault.DuplicateError{Key: "token"})
		var cliErr *output.CLIError
		require.ErrorAs(t, err, &cliErr)
		assert.Equal(t, output.ExitConflict, cliErr.ExitCode)
		assert.Contains(t, cliErr.Hint, "lockbox update token")
	})

	t.Run("internal", func(t *testing.T) {
		err := vaultError(&vault.InternalError{Detail: "driver exploded"})
		var cliErr *output.CLIError
		require.ErrorAs(t, err, &cliErr)
		assert.Equal(t, output.ExitInternal, cliErr.ExitCode)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := assert.AnError
		assert.Same(t, plain, vaultError(plain))
	})
}
