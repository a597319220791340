package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pool lifecycle the error occurred
type Phase string

const (
	PhaseCreate   Phase = "create"   // slot allocation
	PhaseAccess   Phase = "access"   // handle lookup
	PhaseRelease  Phase = "release"  // ref-count decrement / removal
	PhaseRegistry Phase = "registry" // type-keyed pool registry
)

// Kind categorizes the error
type Kind string

const (
	KindCapacityExhausted Kind = "capacity_exhausted"
	KindInvalidHandle     Kind = "invalid_handle"
	KindRefCountUnderflow Kind = "refcount_underflow"
	KindNotFound          Kind = "not_found"
)

// Error is the structured error type used throughout slotpool
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// CapacityExhausted creates a capacity refusal error
func CapacityExhausted(count, maxCapacity int) *Error {
	return &Error{
		Phase:  PhaseCreate,
		Kind:   KindCapacityExhausted,
		Detail: fmt.Sprintf("pool full: %d of %d slots in use", count, maxCapacity),
		Value:  count,
	}
}

// InvalidHandle creates an invalid handle error
func InvalidHandle(phase Phase, handle any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("handle %v does not reference a live slot", handle),
		Value:  handle,
	}
}

// RefCountUnderflow creates a ref-count underflow error.
// Used as a panic value for the release-below-zero contract violation,
// never returned from an API.
func RefCountUnderflow(handle any) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindRefCountUnderflow,
		Detail: fmt.Sprintf("release on handle %v whose ref-count is already zero", handle),
		Value:  handle,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s not found", what),
	}
}
