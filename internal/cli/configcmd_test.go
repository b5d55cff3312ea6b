package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semmy-space/lockbox/internal/config"
	"github.com/semmy-space/lockbox/internal/output"
)

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown backend", key: "backend", value: "vault9000"},
		{name: "unknown output mode", key: "default_output", value: "xml"},
		{name: "auto is flag-only, not a formatter", key: "default_output", value: "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ConfigSetCmd{Key: tt.key, Value: tt.value}
			err := cmd.Run(&config.Config{}, nil)

			var cliErr *output.CLIError
			require.ErrorAs(t, err, &cliErr)
			assert.Equal(t, output.ExitUsage, cliErr.ExitCode)
		})
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	cmd := &ConfigSetCmd{Key: "colour", Value: "blue"}
	err := cmd.Run(&config.Config{}, nil)

	var cliErr *output.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, output.ExitUsage, cliErr.ExitCode)
}
