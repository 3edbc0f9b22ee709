package shell

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	Commands = append(Commands, &commandTree{})
}

type commandTree struct{}

func (c *commandTree) Name() string {
	return "tree"
}

func (c *commandTree) Help() string {
	return `tree [PATH] print a directory and everything below it

	The first line is the directory's absolute path. Each entry below is
	indented by its depth.
`
}

func (c *commandTree) Do(args []string, env *Env, w io.Writer) error {
	path, err := optionalPath(c.Name(), args)
	if err != nil {
		return err
	}
	seq, err := env.NS.Walk(path)
	if err != nil {
		return err
	}
	for depth, e := range seq {
		line := e.Path()
		if depth > 0 {
			line = strings.Repeat(" ", env.Indent*depth) + env.Names.DisplayName(e.Name(), e.Kind())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
