package namespace

import "strings"

// tokenize splits a path into its non-empty segments.
func tokenize(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

// start returns the entry resolution begins at: the root for absolute paths,
// the current directory otherwise.
func (ns *Namespace) start(path string) *Entry {
	if strings.HasPrefix(path, "/") {
		return ns.root
	}
	return ns.cwd
}

// walk folds tokens over the tree starting at from. It stops at the first
// failing token.
func walk(from *Entry, tokens []string) (*Entry, error) {
	cur := from
	for _, tok := range tokens {
		if !cur.IsDir() {
			return nil, ErrNotADirectory
		}
		switch tok {
		case ".":
		case "..":
			if cur.parent == nil {
				return nil, ErrNoSuchEntry
			}
			cur = cur.parent
		default:
			child, ok := cur.findChild(tok)
			if !ok {
				return nil, ErrNoSuchEntry
			}
			cur = child
		}
	}
	return cur, nil
}

// resolve resolves a whole path and returns the bare sentinel on failure.
func (ns *Namespace) resolve(path string) (*Entry, error) {
	return walk(ns.start(path), tokenize(path))
}

// Resolve returns the entry a path denotes. An empty path, like any path
// without segments, denotes the directory resolution starts from.
func (ns *Namespace) Resolve(path string) (*Entry, error) {
	e, err := ns.resolve(path)
	if err != nil {
		return nil, pathError(OpResolve, path, err)
	}
	return e, nil
}
