package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseToNeutral   Phase = "to_neutral"   // host value to API value
	PhaseFromNeutral Phase = "from_neutral" // API value to host value
	PhaseDict        Phase = "dict"         // dictionary access
	PhaseHost        Phase = "host"         // host code execution
)

// Kind categorizes the error
type Kind string

const (
	KindKeyNotFound      Kind = "key_not_found"
	KindDictionaryLocked Kind = "dictionary_locked"
	KindEmptyKey         Kind = "empty_key"
	KindInterrupted      Kind = "interrupted"
	KindHostException    Kind = "host_exception"
	KindHostDiagnostic   Kind = "host_diagnostic"
	KindTooDeep          Kind = "too_deep"
	KindInvalidInput     Kind = "invalid_input"
)

// Messages surfaced verbatim to API callers.
const (
	MsgKeyNotFound      = "Key not found"
	MsgDictionaryLocked = "Dictionary is locked"
	MsgEmptyKey         = "Empty dictionary keys aren't allowed"
	MsgInterrupted      = "Keyboard interrupt"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(JoinPath(e.Path))
	}

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

// Message returns the human-readable message without phase or path decoration.
// This is the text API callers see.
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Kind)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// JoinPath renders a path so that index segments attach without a dot:
// ["opts", "[2]", "name"] becomes "opts[2].name".
func JoinPath(path []string) string {
	var b strings.Builder
	for i, seg := range path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// IndexSegment renders an array index as a path segment.
func IndexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// KeySegment renders a dictionary key as a path segment. A key that would
// read as an index or contains a separator is quoted in brackets, so
// ["[0]"] and [0] stay distinct.
func KeySegment(key string) string {
	if key == "" || strings.HasPrefix(key, "[") || strings.Contains(key, ".") {
		return "[" + strconv.Quote(key) + "]"
	}
	return key
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
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

// KeyNotFound creates a missing dictionary key error
func KeyNotFound(key string) *Error {
	return New(PhaseDict, KindKeyNotFound).
		Value(key).
		Detail(MsgKeyNotFound).
		Build()
}

// DictionaryLocked creates a locked dictionary error
func DictionaryLocked(phase Phase) *Error {
	return New(phase, KindDictionaryLocked).Detail(MsgDictionaryLocked).Build()
}

// EmptyKey creates an empty dictionary key error
func EmptyKey(phase Phase, path []string) *Error {
	return New(phase, KindEmptyKey).
		Path(path...).
		Detail(MsgEmptyKey).
		Build()
}

// TooDeep creates a nesting limit error
func TooDeep(phase Phase, path []string, limit int) *Error {
	return New(phase, KindTooDeep).
		Path(path...).
		Value(limit).
		Detail("nesting exceeds %d levels", limit).
		Build()
}

// Interrupted creates a keyboard interrupt error
func Interrupted() *Error {
	return New(PhaseHost, KindInterrupted).Detail(MsgInterrupted).Build()
}

// HostException creates an error for an exception host code left uncaught
func HostException(text string) *Error {
	return New(PhaseHost, KindHostException).Detail(text).Build()
}

// HostDiagnostic creates an error for a diagnostic message emitted by host code
func HostDiagnostic(text string) *Error {
	return New(PhaseHost, KindHostDiagnostic).Detail(text).Build()
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).Detail(detail).Build()
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
