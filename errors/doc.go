// Package errors provides coded error values for the namespace shell.
//
// Every failure surfaced by the namespace and its surrounding layers carries
// an error Code, a human-readable message and optional context metadata.
// Errors stay compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeNotFound, "No such file or directory")
//	err := errors.Newf(errors.CodeInvalidInput, "unexpected argument %q", arg)
//
// Wrapping errors:
//
//	data, err := fsys.ReadFile(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeConfigLoadFailed, "failed to read config")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", "/docs/notes")
//
// Inspecting errors:
//
//	if errors.GetCode(err) == errors.CodeNotADirectory {
//	    // ...
//	}
//
// Errors are immutable once created: WithContext and friends return a new
// value and never modify their argument.
package errors
