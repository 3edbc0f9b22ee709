// Package shell runs namespace commands typed at a prompt.
//
// A line holds one or more commands separated by ';'. Each command is a
// name followed by arguments; single or double quotes group words into
// one argument:
//
//	> mkdir docs; cd docs
//	> mkfile readme; put readme "hello world"
//	> tree /
package shell

import (
	"io"

	"github.com/jmgilman/go/nsfs/internal/display"
	"github.com/jmgilman/go/nsfs/namespace"
)

// Command is a single shell command.
type Command interface {
	// Name is the word that invokes the command.
	Name() string

	// Help is a usage line, optionally followed by a longer description on
	// later lines.
	Help() string

	// Do runs the command. Output goes to w; failures are returned.
	Do(args []string, env *Env, w io.Writer) error
}

// Commands is the set of commands every Shell starts with.
var Commands = []Command{}

// Env is the state commands operate on.
type Env struct {
	NS     *namespace.Namespace
	Names  *display.Namer
	Indent int
}
