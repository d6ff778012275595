// Package errors provides structured error types for the host-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path of the failing element, the verbatim
// human-readable message, and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFromNeutral, errors.KindEmptyKey).
//		Path("[2]", "opts").
//		Detail("Empty dictionary keys aren't allowed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.KeyNotFound(key)
//	err := errors.DictionaryLocked(errors.PhaseDict)
//
// A Channel holds at most one error per logical operation. Once raised it
// keeps the first error; later raises are dropped:
//
//	var ch errors.Channel
//	ch.Raise(errors.Interrupted())
//	ch.Raise(errors.HostException("E605: boom")) // ignored
//	ch.Message() // "Keyboard interrupt"
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
