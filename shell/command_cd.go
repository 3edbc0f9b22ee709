package shell

import (
	"fmt"
	"io"
)

func init() {
	Commands = append(Commands, &commandCd{}, &commandPwd{})
}

type commandCd struct{}

func (c *commandCd) Name() string {
	return "cd"
}

func (c *commandCd) Help() string {
	return `cd [PATH] change the current directory

	Without a path, returns to the root.
`
}

func (c *commandCd) Do(args []string, env *Env, _ io.Writer) error {
	path, err := optionalPath(c.Name(), args)
	if err != nil {
		return err
	}
	return env.NS.Cd(path)
}

type commandPwd struct{}

func (c *commandPwd) Name() string {
	return "pwd"
}

func (c *commandPwd) Help() string {
	return `pwd print the current directory`
}

func (c *commandPwd) Do(args []string, env *Env, w io.Writer) error {
	if len(args) > 0 {
		return tooManyArguments(c.Name())
	}
	_, err := fmt.Fprintln(w, env.NS.Pwd())
	return err
}
