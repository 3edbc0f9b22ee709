package shell

import (
	"io"
	"strings"
)

func init() {
	Commands = append(Commands, &commandPut{})
}

type commandPut struct{}

func (c *commandPut) Name() string {
	return "put"
}

func (c *commandPut) Help() string {
	return `put PATH CONTENT... replace the content of an existing file

	The content words are joined by single spaces. Quote to keep other
	spacing. The file must already exist.
`
}

func (c *commandPut) Do(args []string, env *Env, _ io.Writer) error {
	if len(args) == 0 {
		return env.NS.Put("", nil)
	}
	return env.NS.Put(args[0], []byte(strings.Join(args[1:], " ")))
}
