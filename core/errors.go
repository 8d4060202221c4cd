package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// initialization marks a fatal startup failure; the process must not start
// serving with a table in an unknown state.
type initialization struct {
	message string
	cause   error
}

func NewInitializationError(cause error, msg string) error {
	return &initialization{message: msg, cause: cause}
}

func (e *initialization) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func IsInitialization(err error) bool {
	_, ok := errors.Cause(err).(*initialization)
	return ok
}
