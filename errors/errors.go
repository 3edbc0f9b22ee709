package errors

// Error extends the standard error interface with a code, a message and
// contextual metadata.
type Error interface {
	error

	// Code returns the code identifying the kind of failure.
	Code() Code

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns attached metadata as a read-only copy.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}
