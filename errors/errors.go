package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // layout resolution
	PhaseGenerate Phase = "generate" // sized type emission
	PhaseCollect  Phase = "collect"  // sequence collection
)

// Kind categorizes the error
type Kind string

const (
	KindUnresolvable   Kind = "unresolvable_length"
	KindOverflow       Kind = "overflow"
	KindSizeMismatch   Kind = "size_mismatch"
	KindLengthMismatch Kind = "length_mismatch"
	KindInvalidInput   Kind = "invalid_input"
	KindUnsupported    Kind = "unsupported"
	KindWriteFailed    Kind = "write_failed"
	KindIncompatible   Kind = "incompatible_format"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Elem   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Elem != "" {
		b.WriteString(": element type ")
		b.WriteString(e.Elem)
	}

	if e.Detail != "" {
		if e.Elem != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Elem sets the element type description
func (b *Builder) Elem(t string) *Builder {
	b.err.Elem = t
	return b
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

// Unresolvable creates an error for a length outside the generated range
func Unresolvable(phase Phase, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnresolvable,
		Detail: fmt.Sprintf("length %d has no layout resolution", length),
		Value:  length,
	}
}

// Overflow creates an error for a layout whose byte size exceeds the address space
func Overflow(phase Phase, count int, elem string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Elem:   elem,
		Detail: fmt.Sprintf("layout of %d elements overflows the address space", count),
		Value:  count,
	}
}

// SizeMismatch creates an error for a layout that violates the size law
func SizeMismatch(phase Phase, count int, got, want uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSizeMismatch,
		Detail: fmt.Sprintf("layout of %d elements occupies %d bytes, want %d", count, got, want),
		Value:  got,
	}
}

// LengthMismatch creates an error for a sequence whose count differs from the target
func LengthMismatch(phase Phase, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthMismatch,
		Detail: fmt.Sprintf("sequence yielded %d elements, want exactly %d", got, want),
		Value:  got,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// WriteFailed creates an output write error
func WriteFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindWriteFailed,
		Detail: fmt.Sprintf("write %s", path),
		Cause:  cause,
	}
}

// Incompatible creates a generated format version error
func Incompatible(found, emit string) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindIncompatible,
		Detail: fmt.Sprintf("existing file carries format %s, generator emits %s", found, emit),
		Value:  found,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
