// Command nsh is an interactive shell over an in-memory namespace.
//
// Usage:
//
//	nsh [-config FILE] [-seed DIR] [-color MODE] [-log-level LEVEL] [-c "CMD; CMD"]
//
// With -c the commands are run and nsh exits; otherwise it prompts for
// commands until end of input or "exit".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jmgilman/go/nsfs/errors"
	"github.com/jmgilman/go/nsfs/fs/billy"
	"github.com/jmgilman/go/nsfs/internal/config"
	"github.com/jmgilman/go/nsfs/internal/logging"
	"github.com/jmgilman/go/nsfs/internal/seed"
	"github.com/jmgilman/go/nsfs/namespace"
	"github.com/jmgilman/go/nsfs/shell"
)

const defaultConfigName = ".nsh.yaml"

type options struct {
	configPath string
	seedDir    string
	color      string
	logLevel   string
	command    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		fmt.Fprintf(stderr, "nsh: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.Log, stderr)
	ns := namespace.New(namespace.WithLogger(logger))

	if opts.seedDir != "" {
		stats, err := seed.Load(ctx, ns, billy.NewLocal(opts.seedDir), ".")
		if err != nil {
			fmt.Fprintf(stderr, "nsh: %v\n", err)
			return 1
		}
		logger.Info("seeded namespace", "dir", opts.seedDir, "dirs", stats.Dirs, "files", stats.Files)
	}

	sh := shell.New(ns, cfg, shell.WithLogger(logger), shell.WithOutput(stdout, stderr))
	if opts.command != "" {
		sh.Execute(opts.command)
		return 0
	}

	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "nsh: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := flag.NewFlagSet("nsh", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default $HOME/"+defaultConfigName+")")
	flags.StringVar(&opts.seedDir, "seed", "", "populate the namespace from this host directory")
	flags.StringVar(&opts.color, "color", "", "color mode: auto, always or never")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.command, "c", "", "run these ';'-separated commands and exit")
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	if flags.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", flags.Args())
		fmt.Fprintf(stderr, "nsh: %v\n", err)
		flags.Usage()
		return options{}, err
	}
	return opts, nil
}

// loadConfig reads the configuration file and applies flag overrides. A
// missing file is only an error when it was named explicitly.
func loadConfig(ctx context.Context, opts options) (config.Config, error) {
	path := opts.configPath
	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, defaultConfigName)
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(ctx, billy.NewLocal(filepath.Dir(path)), filepath.Base(path))
		switch {
		case err == nil:
			cfg = loaded
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return config.Config{}, err
		}
	}

	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
