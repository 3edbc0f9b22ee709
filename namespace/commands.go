package namespace

import (
	"bytes"
	"iter"
	"time"
)

// DirEntry is one line of a directory listing.
type DirEntry struct {
	Name string
	Kind Kind
}

// Mkdir creates a directory. Every segment but the last must resolve to an
// existing directory; the last must not exist yet.
func (ns *Namespace) Mkdir(path string) error {
	return ns.create(OpMkdir, path, KindDirectory)
}

// Mkfile creates an empty regular file under the same rules as Mkdir.
func (ns *Namespace) Mkfile(path string) error {
	return ns.create(OpMkfile, path, KindRegularFile)
}

func (ns *Namespace) create(op, path string, kind Kind) error {
	if path == "" {
		return pathError(op, path, ErrMissingOperand)
	}

	tokens := tokenize(path)
	if len(tokens) == 0 {
		// "/" names the root, which always exists.
		return pathError(op, path, ErrAlreadyExists)
	}

	last := len(tokens) - 1
	parent, err := walk(ns.start(path), tokens[:last])
	if err != nil {
		return pathError(op, path, err)
	}
	if !parent.IsDir() {
		return pathError(op, path, ErrNotADirectory)
	}

	name := tokens[last]
	if name == "." || name == ".." {
		return pathError(op, path, ErrAlreadyExists)
	}
	if _, ok := parent.findChild(name); ok {
		return pathError(op, path, ErrAlreadyExists)
	}

	child := parent.insertChild(name, kind)
	ns.logCreated(child)
	return nil
}

func (ns *Namespace) logCreated(e *Entry) {
	attrs := []any{
		"name", e.name,
		"kind", e.kind.String(),
		"parent", e.parent.Path(),
	}
	prev, next := e.neighbors()
	if prev != nil {
		attrs = append(attrs, "after", prev.name)
	}
	if next != nil {
		attrs = append(attrs, "before", next.name)
	}
	ns.logger.Debug("created entry", attrs...)
}

// Cd changes the current directory. An empty path returns to the root.
// On failure the current directory is left unchanged.
func (ns *Namespace) Cd(path string) error {
	if path == "" {
		ns.cwd = ns.root
		return nil
	}
	dir, err := ns.directory(OpCd, path)
	if err != nil {
		return err
	}
	ns.cwd = dir
	return nil
}

// Ls lists the immediate children of a directory in ascending name order.
// An empty path lists the current directory.
func (ns *Namespace) Ls(path string) ([]DirEntry, error) {
	dir, err := ns.directory(OpLs, path)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, dir.Len())
	dir.children.Ascend(func(c *Entry) bool {
		out = append(out, DirEntry{Name: c.name, Kind: c.kind})
		return true
	})
	return out, nil
}

// Pwd returns the canonical path of the current directory.
func (ns *Namespace) Pwd() string {
	return ns.cwd.Path()
}

// Tree returns a lazy rendering of a directory. The sequence first yields
// the directory's canonical path at depth 0, then every descendant in
// pre-order with its depth below the directory. Siblings appear in
// ascending name order. An empty path renders the current directory.
//
// The tree must not be modified while the sequence is being consumed.
func (ns *Namespace) Tree(path string) (iter.Seq2[int, string], error) {
	dir, err := ns.directory(OpTree, path)
	if err != nil {
		return nil, err
	}
	return func(yield func(int, string) bool) {
		if !yield(0, dir.Path()) {
			return
		}
		for _, c := range dir.Children() {
			for depth, name := range renderSubtree(c, 1) {
				if !yield(depth, name) {
					return
				}
			}
		}
	}, nil
}

// Walk returns a lazy pre-order walk of a directory: the directory itself
// at depth 0, then every descendant with its depth below it. An empty path
// walks the current directory. Like Tree, the sequence must not outlive
// modifications to the tree.
func (ns *Namespace) Walk(path string) (iter.Seq2[int, *Entry], error) {
	dir, err := ns.directory(OpTree, path)
	if err != nil {
		return nil, err
	}
	return walkSubtree(dir, 0), nil
}

// Put replaces the content of an existing regular file. It never creates
// entries.
func (ns *Namespace) Put(path string, content []byte) error {
	if path == "" {
		return pathError(OpPut, path, ErrMissingOperand)
	}
	e, err := ns.resolve(path)
	if err != nil {
		return pathError(OpPut, path, err)
	}
	if e.IsDir() {
		return pathError(OpPut, path, ErrIsADirectory)
	}
	e.content = bytes.Clone(content)
	e.modTime = time.Now()
	return nil
}

// ReadFile returns a copy of a regular file's content.
func (ns *Namespace) ReadFile(path string) ([]byte, error) {
	e, err := ns.resolve(path)
	if err != nil {
		return nil, pathError(OpRead, path, err)
	}
	if e.IsDir() {
		return nil, pathError(OpRead, path, ErrIsADirectory)
	}
	return e.Content(), nil
}

// directory resolves path, defaulting to the current directory, and
// requires the result to be a directory.
func (ns *Namespace) directory(op, path string) (*Entry, error) {
	if path == "" {
		return ns.cwd, nil
	}
	e, err := ns.resolve(path)
	if err != nil {
		return nil, pathError(op, path, err)
	}
	if !e.IsDir() {
		return nil, pathError(op, path, ErrNotADirectory)
	}
	return e, nil
}
