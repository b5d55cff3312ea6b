package vault

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. The typed errors below carry the
// offending key or a diagnostic and unwrap to these.
var (
	ErrNotFound  = errors.New("item not found")
	ErrDuplicate = errors.New("duplicate item")
	ErrInternal  = errors.New("internal vault error")
)

// NotFoundError is returned when a retrieve, update, or delete targets a key
// with no entry in the vault.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item not found: %s", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateError is returned when a store targets a key that already has an
// entry. Use Update to overwrite.
type DuplicateError struct {
	Key string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate item: %s", e.Key)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// InternalError covers encoding/decoding failures and any platform status
// this layer does not recognize. It carries the backend diagnostic verbatim.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal vault error: %s", e.Detail)
}

func (e *InternalError) Unwrap() error { return ErrInternal }
