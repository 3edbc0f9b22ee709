package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the Code from the outermost Error in err's chain.
// Returns CodeUnknown if err is nil or carries no Error.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeAlreadyExists {
//	    // Handle duplicate
//	}
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// GetMessage returns the message of the outermost Error in err's chain,
// falling back to err.Error(). Returns "" if err is nil.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Message()
	}

	return err.Error()
}
