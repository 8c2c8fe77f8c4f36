package reconcile

import (
	"errors"
	"fmt"
)

// Kind classifies a reconciliation error for the caller.
type Kind string

const (
	// KindValidation marks malformed input (missing name, bad identifier).
	KindValidation Kind = "validation"
	// KindConflict marks slug or category-name collisions.
	KindConflict Kind = "conflict"
	// KindNotFound marks entities that do not exist or do not belong to the caller.
	KindNotFound Kind = "not_found"
	// KindUnresolved marks a dish whose category reference never became durable.
	// Surfaced per dish in SaveResult.Skipped, not as a save-level error.
	KindUnresolved Kind = "unresolved_reference"
	// KindStorage marks failures of the underlying store.
	KindStorage Kind = "storage"
)

// Error is a classified reconciliation error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found/unauthorized error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Storagef wraps an underlying store failure.
func Storagef(err error, format string, args ...any) error {
	return &Error{Kind: KindStorage, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// treated as storage failures: they abort and roll back unconditionally.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}
