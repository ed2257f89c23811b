// Package apperrors holds the error taxonomy shared by the order core and
// the HTTP layer. Callers wrap a sentinel with context and match with errors.Is.
package apperrors

import (
	"github.com/pkg/errors"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrAuthorization     = errors.New("not authorized")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrStorage           = errors.New("storage failure")
)

func Validation(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func Authorization(format string, args ...interface{}) error {
	return errors.Wrapf(ErrAuthorization, format, args...)
}

func InvalidState(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidState, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func AlreadyExists(format string, args ...interface{}) error {
	return errors.Wrapf(ErrAlreadyExists, format, args...)
}

// Storage marks err as a persistence failure while keeping it inspectable
func Storage(err error, op string) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage failure during " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
