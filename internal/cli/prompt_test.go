package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeStdin swaps os.Stdin for a pipe carrying data, restoring it on cleanup.
func pipeStdin(t *testing.T, data string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
	})
}

func TestReadValueExplicitWinsOverStdin(t *testing.T) {
	pipeStdin(t, "from-stdin\n")

	explicit := "from-arg"
	got, err := readValue(&explicit, false, &Globals{})
	require.NoError(t, err)
	assert.Equal(t, "from-arg", got)
}

// An explicit empty positional (`lockbox set key ""`) stores the empty
// string; only a nil (omitted) value falls through to stdin.
func TestReadValueExplicitEmptyString(t *testing.T) {
	pipeStdin(t, "from-stdin\n")

	empty := ""
	got, err := readValue(&empty, false, &Globals{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReadValueOmittedFallsThroughToStdin(t *testing.T) {
	pipeStdin(t, "from-stdin\n")

	got, err := readValue(nil, false, &Globals{})
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", got)
}

func TestReadValueTrimsSingleTrailingNewline(t *testing.T) {
	pipeStdin(t, "secret\r\n")

	got, err := readValue(nil, true, &Globals{})
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}
