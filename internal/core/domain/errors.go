package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the failure kinds a caller can distinguish.
// Adapters wrap low-level failures into an *Error carrying one of these kinds.
var (
	// ErrValidation indicates a missing or malformed field, caught before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a lookup or update referenced a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a uniqueness violation.
	ErrDuplicate = errors.New("already exists")

	// ErrStore indicates an I/O, connection or constraint failure in the store.
	ErrStore = errors.New("store failure")

	// ErrSchema indicates the schema could not be created or upgraded.
	// It is only raised at startup and is fatal.
	ErrSchema = errors.New("schema initialisation failed")

	// ErrNotImplemented indicates a service was built without the store it needs.
	ErrNotImplemented = errors.New("not implemented")
)

// Error is a domain error with the operation that failed and a human-readable message.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Op names the operation, e.g. "insert resident".
	Op string

	// Msg is the human-readable detail.
	Msg string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Op != "" && msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Validationf builds a validation error.
func Validationf(op, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(op, format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Duplicatef builds a duplicate error.
func Duplicatef(op, format string, args ...any) error {
	return &Error{Kind: ErrDuplicate, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// StoreError wraps a store failure.
func StoreError(op string, err error) error {
	return &Error{Kind: ErrStore, Op: op, Err: err}
}

// SchemaError wraps a schema initialisation failure.
func SchemaError(op string, err error) error {
	return &Error{Kind: ErrSchema, Op: op, Err: err}
}

// KindOf returns the sentinel kind of err, or nil when err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrDuplicate, ErrSchema, ErrStore, ErrNotImplemented} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Describe renders err as the single descriptive string handed across the boundary.
// Errors without a domain kind are reported as store failures.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if KindOf(err) == nil {
		return fmt.Sprintf("%s: %s", ErrStore, err)
	}
	return err.Error()
}
