// Package errors provides structured error types for the trivec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element type name, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindOverflow).
//		Elem("[128]byte").
//		Value(1 << 40).
//		Detail("element size times count exceeds uint64").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unresolvable(errors.PhaseResolve, 82)
//	err := errors.LengthMismatch(errors.PhaseCollect, 8, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
