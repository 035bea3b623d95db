// Package errors provides structured error handling for the pull-to-refresh
// layout and its collaborators.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a setup-time misconfiguration.
	KindConfig
	// KindContent indicates a failing content adapter.
	KindContent
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindContent:
		return "content"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Configuration errors. They are returned wrapped in a *RefreshError of
// kind KindConfig; match them with errors.Is.
var (
	// ErrHeaderNotIndicator is returned when a header view does not
	// implement the indicator callbacks.
	ErrHeaderNotIndicator = stderrors.New("header view must implement Indicator")
	// ErrContentAlreadySet is returned when a second content is registered.
	ErrContentAlreadySet = stderrors.New("layout can host only one content besides the header")
	// ErrInvalidConfig is returned when tuning values are out of range.
	ErrInvalidConfig = stderrors.New("invalid refresh config")
)

// RefreshError represents a structured error.
type RefreshError struct {
	// Op is the operation that failed (e.g., "refresh.SetHeader").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// Config returns a KindConfig error for op.
func Config(op string, err error) *RefreshError {
	return &RefreshError{Op: op, Kind: KindConfig, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "refresh.content.FlingBy").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorHandler receives errors reported by the layout.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RefreshError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
