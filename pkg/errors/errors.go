// Package errors provides structured error handling for quicklook.
//
// Two failures exist in the library. An unsupported type is returned to the
// caller immediately as an [*UnsupportedTypeError]. A missing resource is
// recovered locally by the renderer and only reported to the global
// [ErrorHandler] as a [*LookError] of kind [KindResourceUnavailable].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnsupportedType indicates a value whose type has no registered rule.
	KindUnsupportedType
	// KindResourceUnavailable indicates a named image or sound that could not be found.
	KindResourceUnavailable
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedType:
		return "unsupported_type"
	case KindResourceUnavailable:
		return "resource_unavailable"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupportedType matches every [*UnsupportedTypeError] via errors.Is.
	ErrUnsupportedType = stderrors.New("unsupported type")
	// ErrResourceUnavailable matches every [*ResourceError] via errors.Is.
	ErrResourceUnavailable = stderrors.New("resource unavailable")
)

// LookError represents a structured error reported by quicklook.
type LookError struct {
	// Op is the operation that failed (e.g., "preview.ImageFor").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Type is the Go type involved, if applicable.
	Type string
	// Resource is the resource name involved, if applicable.
	Resource string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LookError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s [%s] resource=%s: %v", e.Op, e.Kind, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LookError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError is returned when a value's type has no rule for the
// requested capability.
type UnsupportedTypeError struct {
	// Capability names the operation set, e.g. "truthiness" or "preview".
	Capability string
	// Type is the dynamic type name of the rejected value.
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: no %s rule registered for %s", ErrUnsupportedType, e.Capability, e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Unsupported builds an [*UnsupportedTypeError] for the dynamic type of v.
func Unsupported(capability string, v any) *UnsupportedTypeError {
	return &UnsupportedTypeError{Capability: capability, Type: fmt.Sprintf("%T", v)}
}

// ResourceError describes a named resource the loader could not supply.
type ResourceError struct {
	// Resource is the resource class ("image", "sound").
	Resource string
	// Name is the name that was looked up.
	Name string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

func (e *ResourceError) Unwrap() error {
	return ErrResourceUnavailable
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.RenderAny").
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

// ErrorHandler receives errors reported by quicklook.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *LookError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
