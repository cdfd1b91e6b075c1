package errors

import (
	stderrors "errors"
	"strconv"

	"github.com/louisbranch/dieroll/internal/core/dice"
	"github.com/louisbranch/dieroll/internal/platform/errors/i18n"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Additional context for templating
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Kind returns the failure category of the error code.
func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

// LocalizedMessage renders the user-facing message for the given locale.
func (e *Error) LocalizedMessage(locale string) string {
	return i18n.GetCatalog(locale).Format(string(e.Code), e.Metadata)
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for i18n templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithMetadata creates a domain error with both metadata and a cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// AmountTooLarge reports a batch roll above the configured limit.
func AmountTooLarge(amount, limit int) *Error {
	return WithMetadata(CodeDiceAmountTooLarge, "dice amount exceeds limit", map[string]string{
		"Amount": strconv.Itoa(amount),
		"Limit":  strconv.Itoa(limit),
	})
}

// FromDice converts a dice package error into a domain error.
// Errors already carrying a domain code and unrecognized errors are
// returned as-is; nil stays nil.
func FromDice(err error, amount, faces int) error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return err
	}
	metadata := map[string]string{
		"Amount": strconv.Itoa(amount),
		"Faces":  strconv.Itoa(faces),
	}
	switch {
	case stderrors.Is(err, dice.ErrInvalidFaces):
		return WrapWithMetadata(CodeDiceInvalidFaces, err.Error(), metadata, err)
	case stderrors.Is(err, dice.ErrInvalidAmount):
		return WrapWithMetadata(CodeDiceInvalidAmount, err.Error(), metadata, err)
	default:
		return err
	}
}

// GetCode extracts the domain code from an error chain.
// It returns CodeUnknown when no domain error is present.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// IsInvalidArgument reports whether err carries an InvalidArgument code.
func IsInvalidArgument(err error) bool {
	return GetCode(err).Kind() == KindInvalidArgument
}
