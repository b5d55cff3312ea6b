package vault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		key      string
		sentinel error
	}{
		{name: "ok maps to nil", status: StatusOK, key: "token", sentinel: nil},
		{name: "not found", status: Status{Code: CodeNotFound}, key: "token", sentinel: ErrNotFound},
		{name: "duplicate", status: Status{Code: CodeDuplicate}, key: "token", sentinel: ErrDuplicate},
		{name: "access denied", status: Status{Code: CodeAccessDenied, Detail: "keychain locked"}, key: "token", sentinel: ErrInternal},
		{name: "unavailable", status: Status{Code: CodeUnavailable}, key: "token", sentinel: ErrInternal},
		{name: "unknown", status: Status{Code: CodeUnknown, Detail: "driver exploded"}, key: "token", sentinel: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.status, tt.key)
			if tt.sentinel == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestClassifyCarriesKey(t *testing.T) {
	err := Classify(Status{Code: CodeNotFound}, "refresh_token")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "refresh_token", nf.Key)

	err = Classify(Status{Code: CodeDuplicate}, "api_key")
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "api_key", dup.Key)
}

func TestClassifyCarriesDiagnostic(t *testing.T) {
	err := Classify(Status{Code: CodeUnknown, Detail: "errSec -25293"}, "token")
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "errSec -25293", internal.Detail)
	assert.Contains(t, err.Error(), "errSec -25293")
}

func TestClassifyUnknownWithoutDetail(t *testing.T) {
	// The diagnostic is synthesized from the code and key when the backend
	// gave none.
	err := Classify(Status{Code: CodeUnavailable}, "token")
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Detail, "unavailable")
	assert.Contains(t, internal.Detail, "token")
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "ok", CodeOK.String())
	assert.Equal(t, "not found", CodeNotFound.String())
	assert.Equal(t, "duplicate", CodeDuplicate.String())
	assert.Equal(t, "access denied", CodeAccessDenied.String())
	assert.Equal(t, "unavailable", CodeUnavailable.String())
	assert.Equal(t, "unknown", Code(99).String())
}

func TestErrorUnwrapping(t *testing.T) {
	assert.True(t, errors.Is(&NotFoundError{Key: "k"}, ErrNotFound))
	assert.True(t, errors.Is(&DuplicateError{Key: "k"}, ErrDuplicate))
	assert.True(t, errors.Is(&InternalError{Detail: "d"}, ErrInternal))
	assert.False(t, errors.Is(&NotFoundError{Key: "k"}, ErrDuplicate))
}
