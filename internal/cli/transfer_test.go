package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntries(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		filename string
		expected map[string]string
		wantErr  bool
	}{
		{
			name:     "json by extension",
			data:     `{"token": "secret1", "api_key": "secret2"}`,
			filename: "creds.json",
			expected: map[string]string{"token": "secret1", "api_key": "secret2"},
		},
		{
			name:     "yaml by extension",
			data:     "token: secret1\napi_key: secret2\n",
			filename: "creds.yaml",
			expected: map[string]string{"token": "secret1", "api_key": "secret2"},
		},
		{
			name:     "yml by extension",
			data:     "token: secret1\n",
			filename: "creds.yml",
			expected: map[string]string{"token": "secret1"},
		},
		{
			name:     "stdin json",
			data:     `{"token": "secret1"}`,
			filename: "",
			expected: map[string]string{"token": "secret1"},
		},
		{
			name:     "stdin yaml fallback",
			data:     "token: secret1\n",
			filename: "",
			expected: map[string]string{"token": "secret1"},
		},
		{
			name:     "garbage",
			data:     "{not valid: in any codec",
			filename: "",
			wantErr:  true,
		},
		{
			name:     "yaml data with json extension fails",
			data:     "token: secret1\n",
			filename: "creds.json",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := decodeEntries([]byte(tt.data), tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entries)
		})
	}
}
