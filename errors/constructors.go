package errors

import "fmt"

// New creates a new Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "No such file or directory")
func New(code Code, message string) Error {
	return &codedError{
		code:    code,
		message: message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "indent out of range: %d", n)
func Newf(code Code, format string, args ...interface{}) Error {
	return &codedError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
