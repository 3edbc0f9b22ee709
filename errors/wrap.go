package errors

import "fmt"

// Wrap wraps err with a code and message while preserving the original error.
// The cause is reachable via Unwrap, errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := seed.Load(ctx, ns, src, "."); err != nil {
//	    return errors.Wrap(err, errors.CodeSeedFailed, "failed to seed namespace")
//	}
func Wrap(err error, code Code, message string) Error {
	if err == nil {
		return nil
	}

	return &codedError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code Code, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeConfigLoadFailed, "failed to parse config", map[string]interface{}{
//	    "file": name,
//	})
func WrapWithContext(err error, code Code, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	return &codedError{
		code:    code,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
