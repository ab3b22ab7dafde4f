// Package errors provides structured error handling for the Glacier toolkit.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindStateMismatch indicates a widget state downcast to the wrong type.
	KindStateMismatch
	// KindBuild indicates a failure while building a widget view.
	KindBuild
	// KindLayout indicates a layout computation error.
	KindLayout
	// KindTheme indicates a theme or palette loading error.
	KindTheme
	// KindClipboard indicates a clipboard access error.
	KindClipboard
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindStateMismatch:
		return "state-mismatch"
	case KindBuild:
		return "build"
	case KindLayout:
		return "layout"
	case KindTheme:
		return "theme"
	case KindClipboard:
		return "clipboard"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Glacier toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "core.StateOf").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "runtime.Build").
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

// StateMismatchError reports a widget reading its persistent state with the
// wrong type. This always indicates a reconciliation bug: the state tree
// node no longer belongs to the widget reading it.
type StateMismatchError struct {
	// Want is the type the widget asked for.
	Want string
	// Got is the type actually stored in the tree node.
	Got string
}

func (e *StateMismatchError) Error() string {
	return fmt.Sprintf("widget state holds %s, downcast to %s", e.Got, e.Want)
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
