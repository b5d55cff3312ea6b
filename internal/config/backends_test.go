package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBackend(t *testing.T) {
	for _, name := range []string{"auto", "keyring", "file"} {
		t.Run("valid_"+name, func(t *testing.T) {
			info, err := GetBackend(name)
			require.NoError(t, err)
			assert.NotEmpty(t, info.Description)
			assert.True(t, info.Persistent)
		})
	}

	t.Run("invalid backend returns error", func(t *testing.T) {
		_, err := GetBackend("tpm")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown backend")
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := GetBackend("")
		assert.Error(t, err)
	})
}

func TestValidBackends(t *testing.T) {
	backends := ValidBackends()

	assert.Equal(t, []string{"auto", "file", "keyring"}, backends)

	// Verify sorted
	for i := 1; i < len(backends); i++ {
		assert.Less(t, backends[i-1], backends[i], "backends should be sorted")
	}
}

func TestConfigGet(t *testing.T) {
	cfg := &Config{Service: "myapp", Backend: "file", DefaultOutput: "json"}

	tests := []struct {
		key      string
		expected string
	}{
		{key: "service", expected: "myapp"},
		{key: "backend", expected: "file"},
		{key: "default_output", expected: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			value, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := cfg.Get("region")
		assert.Error(t, err)
	})
}

func TestConfigKeys(t *testing.T) {
	assert.Equal(t, []string{"service", "backend", "default_output"}, Keys())
}

func TestResolvedService(t *testing.T) {
	assert.Equal(t, DefaultService, (&Config{}).ResolvedService())
	assert.Equal(t, "myapp", (&Config{Service: "myapp"}).ResolvedService())
}
