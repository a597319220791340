// Package errors provides structured error types for the slotpool library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Most pool operations deliberately do not return errors at all:
// invalid-handle access yields an empty result and capacity exhaustion yields
// an empty reference. This package covers the surfaces that do report errors
// (the registry, the demo tooling) and supplies the panic value for the one
// hard contract violation, ref-count underflow.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegistry, errors.KindNotFound).
//		Detail("no pool registered for type %s", typeName).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.CapacityExhausted(2, 2)
//	err := errors.InvalidHandle(errors.PhaseAccess, h)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
