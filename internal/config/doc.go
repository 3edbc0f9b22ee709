// Package config loads the shell configuration.
//
// A configuration file is YAML. It is checked against an embedded CUE schema
// which also supplies defaults for every field left out, so an empty file
// yields Default():
//
//	prompt: "nsh> "
//	color: never
//	indent: 2
//	log:
//	  level: debug
//	  format: json
//
// Unknown keys and out-of-range values are rejected with
// errors.CodeInvalidConfig. Failures reading the file carry
// errors.CodeConfigLoadFailed and keep the underlying cause, so
// errors.Is(err, fs.ErrNotExist) works for a missing file.
package config
