package domain

import "errors"

type Code string

const (
	CodeBadUserInput Code = "BAD_USER_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInternal     Code = "INTERNAL_SERVER_ERROR"
)

// Error is the classified error carried across the whole boundary.
// Once constructed it is never re-wrapped, only propagated.
type Error struct {
	Message string
	Code    Code
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// Classify builds a classified error. An empty code falls back to
// BAD_USER_INPUT so validation errors land in the right bucket.
func Classify(message string, code Code, details ...string) *Error {
	if code == "" {
		code = CodeBadUserInput
	}
	if details == nil {
		details = []string{}
	}
	return &Error{
		Message: message,
		Code:    code,
		Details: details,
	}
}

// AsClassified reports whether err already carries a classification.
func AsClassified(err error) (*Error, bool) {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
