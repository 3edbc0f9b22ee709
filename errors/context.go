package errors

import "errors"

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", "/docs")
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	coded := asError(err)

	merged := make(map[string]interface{})
	for k, v := range coded.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &codedError{
		code:    coded.Code(),
		message: coded.Message(),
		context: merged,
		cause:   coded.Unwrap(),
	}
}

// asError returns err as an Error, converting plain errors to CodeUnknown.
func asError(err error) Error {
	var coded Error
	if errors.As(err, &coded) {
		return coded
	}
	return &codedError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
