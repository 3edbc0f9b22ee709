package shell

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/jmgilman/go/nsfs/errors"
	"github.com/jmgilman/go/nsfs/internal/config"
	"github.com/jmgilman/go/nsfs/internal/display"
	"github.com/jmgilman/go/nsfs/namespace"
)

var wordPattern = regexp.MustCompile(`'.*?'|".*?"|\S+`)

// Shell executes command lines against a namespace.
type Shell struct {
	env      *Env
	cfg      config.Config
	commands []Command
	logger   *slog.Logger
	out      io.Writer
	errOut   io.Writer
}

// Option configures a Shell.
type Option func(*Shell)

// WithOutput directs command output to out and error messages to errOut.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Shell) {
		s.out = out
		s.errOut = errOut
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNamer overrides how entry names are displayed. By default the color
// mode from the configuration decides.
func WithNamer(n *display.Namer) Option {
	return func(s *Shell) {
		if n != nil {
			s.env.Names = n
		}
	}
}

// New returns a shell over ns configured by cfg, writing to stdout and
// stderr unless told otherwise.
func New(ns *namespace.Namespace, cfg config.Config, opts ...Option) *Shell {
	commands := slices.Clone(Commands)
	slices.SortFunc(commands, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})

	s := &Shell{
		env: &Env{
			NS:     ns,
			Names:  display.New(cfg.Color),
			Indent: cfg.Indent,
		},
		cfg:      cfg,
		commands: commands,
		logger:   slog.New(slog.DiscardHandler),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs every command on a line. It reports whether one of them
// asked the shell to quit; commands after it are not run.
func (s *Shell) Execute(line string) bool {
	for _, cmd := range strings.Split(line, ";") {
		if s.executeOne(cmd) {
			return true
		}
	}
	return false
}

func (s *Shell) executeOne(input string) bool {
	words := wordPattern.FindAllString(input, -1)
	if len(words) == 0 {
		return false
	}

	name := words[0]
	args := make([]string, len(words)-1)
	for i := range args {
		args[i] = strings.Trim(words[1+i], `"'`)
	}

	switch name {
	case "exit", "quit":
		return true
	case "help", "?":
		s.printHelp(args)
		return false
	}

	c := s.lookup(name)
	if c == nil {
		fmt.Fprintf(s.errOut, "unknown command: %v\n", name)
		return false
	}

	s.logger.Debug("executing command", "cmd", name, "args", args)
	if err := c.Do(args, s.env, s.out); err != nil {
		s.logger.Info("command failed", "cmd", name, "error", err)
		s.printError(err)
	}
	return false
}

func (s *Shell) lookup(name string) Command {
	for _, c := range s.commands {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// printError writes one "error:" line per failure.
func (s *Shell) printError(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			s.printError(e)
		}
		return
	}
	fmt.Fprintf(s.errOut, "error: %s\n", message(err))
}

// message renders err without the error code prefix.
func message(err error) string {
	var pe *namespace.PathError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return errors.GetMessage(err)
}

func (s *Shell) printHelp(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, `Type "help <command>" for help on <command>.`)
		for _, c := range s.commands {
			summary, _, _ := strings.Cut(c.Help(), "\n")
			fmt.Fprintf(s.out, "  %-8s # %s\n", c.Name(), summary)
		}
		fmt.Fprintf(s.out, "  %-8s # %s\n", "exit", "leave the shell")
		return
	}

	for _, arg := range args {
		c := s.lookup(strings.ToLower(arg))
		if c == nil {
			fmt.Fprintf(s.errOut, "unknown command: %v\n", arg)
			continue
		}
		fmt.Fprintf(s.out, "  %s\t# %s\n", c.Name(), strings.TrimRight(c.Help(), "\n"))
	}
}

// complete returns the command names that start with the typed prefix.
func (s *Shell) complete(line string) []string {
	prefix := strings.ToLower(strings.TrimLeft(line, " "))
	var out []string
	for _, c := range s.commands {
		if strings.HasPrefix(c.Name(), prefix) {
			out = append(out, c.Name())
		}
	}
	for _, name := range []string{"exit", "help", "quit"} {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
