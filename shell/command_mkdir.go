package shell

import (
	stderrors "errors"
	"io"
)

func init() {
	Commands = append(Commands, &commandMkdir{}, &commandMkfile{})
}

type commandMkdir struct{}

func (c *commandMkdir) Name() string {
	return "mkdir"
}

func (c *commandMkdir) Help() string {
	return `mkdir PATH... create directories

	Every path must name a new entry inside an existing directory.
`
}

func (c *commandMkdir) Do(args []string, env *Env, _ io.Writer) error {
	return createAll(args, env.NS.Mkdir)
}

type commandMkfile struct{}

func (c *commandMkfile) Name() string {
	return "mkfile"
}

func (c *commandMkfile) Help() string {
	return `mkfile PATH... create empty regular files`
}

func (c *commandMkfile) Do(args []string, env *Env, _ io.Writer) error {
	return createAll(args, env.NS.Mkfile)
}

// createAll attempts every path and reports all failures.
func createAll(paths []string, create func(string) error) error {
	if len(paths) == 0 {
		return create("")
	}
	var errs []error
	for _, p := range paths {
		if err := create(p); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

