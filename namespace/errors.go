package namespace

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/nsfs/errors"
)

var (
	// ErrNoSuchEntry means a path segment does not exist, or ".." was
	// requested at the root.
	ErrNoSuchEntry = errors.New(errors.CodeNotFound, "No such file or directory")

	// ErrNotADirectory means a regular file was found where a directory was
	// required.
	ErrNotADirectory = errors.New(errors.CodeNotADirectory, "Not a directory")

	// ErrIsADirectory means a directory was found where a regular file was
	// required.
	ErrIsADirectory = errors.New(errors.CodeIsADirectory, "Is a directory")

	// ErrAlreadyExists means a create operation named an existing entry.
	ErrAlreadyExists = errors.New(errors.CodeAlreadyExists, "File exists")

	// ErrMissingOperand means a command that needs a path was given none.
	ErrMissingOperand = errors.New(errors.CodeInvalidInput, "missing operand")
)

// Operation names recorded in PathError.Op.
const (
	OpMkdir   = "mkdir"
	OpMkfile  = "mkfile"
	OpCd      = "cd"
	OpLs      = "ls"
	OpTree    = "tree"
	OpPut     = "put"
	OpRead    = "read"
	OpResolve = "resolve"
)

// PathError records a failed command together with the path the caller
// supplied.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error renders the failure in shell form, e.g.
// "mkdir: cannot create directory 'a': File exists".
func (e *PathError) Error() string {
	msg := errors.GetMessage(e.Err)
	if errors.Is(e.Err, ErrMissingOperand) {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	switch e.Op {
	case OpMkdir:
		return fmt.Sprintf("%s: cannot create directory '%s': %s", e.Op, e.Path, msg)
	case OpMkfile:
		return fmt.Sprintf("%s: cannot create file '%s': %s", e.Op, e.Path, msg)
	default:
		return fmt.Sprintf("%s: '%s': %s", e.Op, e.Path, msg)
	}
}

// Unwrap returns the underlying sentinel.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is matches the io/fs sentinels with the same meaning, so callers can test
// for fs.ErrNotExist or fs.ErrExist.
func (e *PathError) Is(target error) bool {
	return matchesFS(e.Err, target)
}

func matchesFS(err, target error) bool {
	switch target {
	case fs.ErrNotExist:
		return errors.GetCode(err) == errors.CodeNotFound
	case fs.ErrExist:
		return errors.GetCode(err) == errors.CodeAlreadyExists
	case fs.ErrInvalid:
		return errors.GetCode(err) == errors.CodeInvalidInput
	}
	return false
}

func pathError(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: err}
}
