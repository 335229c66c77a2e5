package merror

import (
	"fmt"

	"github.com/pkg/errors"
)

// MError is a coded error, optionally wrapping the library error that caused it
type MError struct {
	code    Code
	message string
	cause   error
}

// Error returns the error message
func (e *MError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%v: %v", e.code, e.message)
	}
	return fmt.Sprintf("%v: %v: %v", e.code, e.message, e.cause)
}

// Code returns the error code
func (e *MError) Code() Code {
	return e.code
}

// Cause returns the wrapped error, used by errors.Cause
func (e *MError) Cause() error {
	return e.cause
}

// Unwrap returns the wrapped error
func (e *MError) Unwrap() error {
	return e.cause
}

// New returns a merror with code and a message
func New(code Code, msg string) *MError {
	return &MError{code: code, message: msg}
}

// Newf returns a merror with code and a formatted message
func Newf(code Code, format string, arg ...interface{}) *MError {
	return &MError{code: code, message: fmt.Sprintf(format, arg...)}
}

// Wrap returns a merror with code and message wrapping err, nil if err is nil
func Wrap(code Code, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &MError{code: code, message: msg, cause: errors.WithStack(err)}
}

// Wrapf is Wrap with a formatted message
func Wrapf(code Code, err error, format string, arg ...interface{}) error {
	if err == nil {
		return nil
	}
	return &MError{code: code, message: fmt.Sprintf(format, arg...), cause: errors.WithStack(err)}
}

// CodeOf returns the code of the first merror in err's chain, Unknown if there is none
func CodeOf(err error) Code {
	var merr *MError
	if errors.As(err, &merr) {
		return merr.code
	}
	return Unknown
}

// Is reports whether err carries the given code
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// ExitCode maps err onto a process exit code, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return exitCodes[CodeOf(err)]
}
