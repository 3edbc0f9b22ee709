package namespace

import (
	"log/slog"
)

// RootName is the fixed name of every namespace's root directory.
// It never appears in canonical paths.
const RootName = "simple_root"

// Namespace is an in-memory directory tree with a current working directory.
type Namespace struct {
	root   *Entry
	cwd    *Entry
	logger *slog.Logger
}

// Option configures a Namespace.
type Option func(*Namespace)

// WithLogger sets the logger used for entry creation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(ns *Namespace) {
		if logger != nil {
			ns.logger = logger
		}
	}
}

// New creates a namespace holding only an empty root directory, which is
// also the current directory.
func New(opts ...Option) *Namespace {
	root := newEntry(RootName, KindDirectory, nil)
	ns := &Namespace{
		root:   root,
		cwd:    root,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(ns)
	}
	return ns
}

// Root returns the root directory.
func (ns *Namespace) Root() *Entry {
	return ns.root
}

// Cwd returns the current working directory.
func (ns *Namespace) Cwd() *Entry {
	return ns.cwd
}
