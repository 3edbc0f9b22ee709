package shell

import "github.com/jmgilman/go/nsfs/errors"

// optionalPath returns the single optional path argument.
func optionalPath(name string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", tooManyArguments(name)
	}
}

func tooManyArguments(name string) error {
	return errors.Newf(errors.CodeInvalidInput, "%s: too many arguments", name)
}
