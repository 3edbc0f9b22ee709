package shell

import (
	"context"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/jmgilman/go/nsfs/errors"
)

// Run reads lines from the terminal until end of input, an exit command
// or ctx is done. Ctrl-C discards the line being typed.
func (s *Shell) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(s.complete)

	s.loadHistory(line)
	defer s.saveHistory(line)

	// Closing the liner restores the terminal; the pending prompt returns
	// once input arrives.
	stop := context.AfterFunc(ctx, func() { _ = line.Close() })
	defer stop()

	for {
		input, err := line.Prompt(s.cfg.Prompt)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case errors.Is(err, liner.ErrPromptAborted):
				continue
			}
			return errors.Wrap(err, errors.CodeInternal, "failed to read command line")
		}

		if input != "" {
			line.AppendHistory(input)
		}
		if s.Execute(input) {
			return nil
		}
	}
}

func (s *Shell) loadHistory(line *liner.State) {
	if s.cfg.History == "" {
		return
	}
	f, err := os.Open(s.cfg.History)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	if _, err := line.ReadHistory(f); err != nil {
		s.logger.Warn("failed to read history", "path", s.cfg.History, "error", err)
	}
}

func (s *Shell) saveHistory(line *liner.State) {
	if s.cfg.History == "" {
		return
	}
	f, err := os.Create(s.cfg.History)
	if err != nil {
		s.logger.Warn("failed to create history file", "path", s.cfg.History, "error", err)
		return
	}
	defer func() { _ = f.Close() }()
	if _, err := line.WriteHistory(f); err != nil {
		s.logger.Warn("failed to write history", "path", s.cfg.History, "error", err)
	}
}
