package shell

import (
	"fmt"
	"io"
)

func init() {
	Commands = append(Commands, &commandLs{})
}

type commandLs struct{}

func (c *commandLs) Name() string {
	return "ls"
}

func (c *commandLs) Help() string {
	return `ls [PATH] list a directory, one entry per line

	Without a path, lists the current directory.
`
}

func (c *commandLs) Do(args []string, env *Env, w io.Writer) error {
	path, err := optionalPath(c.Name(), args)
	if err != nil {
		return err
	}
	entries, err := env.NS.Ls(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, env.Names.DisplayName(e.Name, e.Kind)); err != nil {
			return err
		}
	}
	return nil
}
