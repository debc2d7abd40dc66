// Package errors provides structured error handling for the fern framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a failure during a reconciliation pass.
	KindRender
	// KindHook indicates a hook protocol violation.
	KindHook
	// KindScene indicates a scene file parsing failure.
	KindScene
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindHook:
		return "hook"
	case KindScene:
		return "scene"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FernError represents a structured error in the fern framework.
type FernError struct {
	// Op is the operation that failed (e.g., "core.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FernError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FernError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.runRender").
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

// HookError reports a hook protocol violation: a component called its hooks
// in a different order or kind sequence than on a previous render. The hook
// store fails fast with this error instead of silently corrupting slot state.
type HookError struct {
	// Path is the component occurrence whose slot table was violated.
	Path string
	// Slot is the cursor position at which the mismatch was detected.
	Slot int
	// Got is the slot kind requested by the current render.
	Got string
	// Want is the slot kind persisted from the previous render.
	Want string
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook order violation at %q slot %d: called %s, previous render stored %s (hooks must be called in the same order every render)", e.Path, e.Slot, e.Got, e.Want)
}

// ErrorHandler receives errors reported by the fern framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FernError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
