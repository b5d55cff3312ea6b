package vault

import "fmt"

// Code is a normalized platform status code. Backends translate whatever
// their driver reports (Keychain OSStatus, Secret Service D-Bus errors,
// wincred error codes) into one of these before it reaches the store.
type Code int

const (
	CodeOK Code = iota
	CodeNotFound
	CodeDuplicate
	CodeAccessDenied
	CodeUnavailable
	CodeUnknown
)

// String returns the lowercase name used in diagnostics.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNotFound:
		return "not found"
	case CodeDuplicate:
		return "duplicate"
	case CodeAccessDenied:
		return "access denied"
	case CodeUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Status is what a backend operation reports: a normalized code plus an
// optional driver-level diagnostic for the codes that need one.
type Status struct {
	Code   Code
	Detail string
}

// StatusOK is the zero status shared by all successful operations.
var StatusOK = Status{Code: CodeOK}

// statusf builds a non-OK status with a formatted diagnostic.
func statusf(code Code, format string, args ...any) Status {
	return Status{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// classifiers maps each code to the error it surfaces. Codes without a
// dedicated error kind collapse into InternalError with the diagnostic.
var classifiers = map[Code]func(key string, st Status) error{
	CodeOK:        func(string, Status) error { return nil },
	CodeNotFound:  func(key string, _ Status) error { return &NotFoundError{Key: key} },
	CodeDuplicate: func(key string, _ Status) error { return &DuplicateError{Key: key} },
}

// Classify maps a backend status to the typed error for the operation on
// key. Success maps to nil. Pure function; see status_test.go.
func Classify(st Status, key string) error {
	if fn, ok := classifiers[st.Code]; ok {
		return fn(key, st)
	}
	detail := st.Detail
	if detail == "" {
		detail = fmt.Sprintf("%s (key %q)", st.Code, key)
	}
	return &InternalError{Detail: detail}
}
