package errors

// Code identifies a failure condition.
// Codes are strings so they read well in logs.
type Code string

const (
	// Namespace errors.

	// CodeNotFound indicates a path component does not exist, or ".." was
	// requested at the root.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates a create operation named an existing entry.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeNotADirectory indicates a regular file was found where a directory
	// was required.
	CodeNotADirectory Code = "NOT_A_DIRECTORY"

	// CodeIsADirectory indicates a directory was found where a regular file
	// was required.
	CodeIsADirectory Code = "IS_A_DIRECTORY"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInvalidConfig indicates the configuration failed validation.
	CodeInvalidConfig Code = "INVALID_CONFIGURATION"

	// Infrastructure errors.

	// CodeConfigLoadFailed indicates the configuration file could not be read
	// or parsed.
	CodeConfigLoadFailed Code = "CONFIG_LOAD_FAILED"

	// CodeSeedFailed indicates populating a namespace from a source tree failed.
	CodeSeedFailed Code = "SEED_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown Code = "UNKNOWN"
)
