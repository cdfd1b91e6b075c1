package domain

import (
	"errors"

	apperrors "github.com/louisbranch/dieroll/internal/platform/errors"
	"github.com/louisbranch/dieroll/internal/platform/errors/i18n"
)

// toolError shows MCP clients the base-locale message of a domain error.
// The domain error stays in the chain for GetCode and errors.Is.
type toolError struct {
	err *apperrors.Error
}

func (e *toolError) Error() string {
	return e.err.LocalizedMessage(i18n.BaseLocale)
}

func (e *toolError) Unwrap() error {
	return e.err
}

// clientError converts err into the error returned from a tool handler.
func clientError(err error) error {
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		return err
	}
	return &toolError{err: domainErr}
}
