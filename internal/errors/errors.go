package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an engine error
type Code string

const (
	// CodeUnknown is used when a foreign error is wrapped without a code
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a malformed value
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a class, role or duel does not exist
	CodeNotFound Code = "not_found"

	// CodeUnknownSpell indicates a spell name is not defined for the caster's class and role
	CodeUnknownSpell Code = "unknown_spell"

	// CodeCombatOver indicates a turn was requested after one side was defeated
	CodeCombatOver Code = "combat_over"

	// CodeValidation indicates data loaded from a file failed validation
	CodeValidation Code = "validation"

	// CodeInternal indicates a broken invariant inside the engine
	CodeInternal Code = "internal"
)

// Error is an engine error carrying a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. Codes and metadata of engine errors are preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var engineErr *Error
	if errors.As(err, &engineErr) {
		return &Error{
			Code:    engineErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(engineErr.Meta),
		}
	}

	return &Error{Code: CodeUnknown, Message: message, Cause: err}
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// UnknownSpell reports a spell lookup miss for a class and role
func UnknownSpell(class, spec, spell string) *Error {
	return Newf(CodeUnknownSpell, "%s %s has no spell %q", spec, class, spell).
		WithMeta("class", class).
		WithMeta("spec", spec).
		WithMeta("spell", spell)
}

// CombatOver reports a turn requested on a finished combat
func CombatOver(defeated string) *Error {
	return Newf(CodeCombatOver, "combat is over: %s has been defeated", defeated).
		WithMeta("defeated", defeated)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is reports whether err carries the given code
func Is(err error, code Code) bool {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code == code
	}
	return false
}

// IsNotFound checks for CodeNotFound
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks for CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsUnknownSpell checks for CodeUnknownSpell
func IsUnknownSpell(err error) bool {
	return Is(err, CodeUnknownSpell)
}

// IsCombatOver checks for CodeCombatOver
func IsCombatOver(err error) bool {
	return Is(err, CodeCombatOver)
}

// IsValidation checks for CodeValidation
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the code of err, or CodeUnknown
func GetCode(err error) Code {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of err, if any
func GetMeta(err error) map[string]any {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
