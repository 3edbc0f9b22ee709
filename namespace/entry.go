package namespace

import (
	"bytes"
	"slices"
	"strings"
	"time"

	"github.com/google/btree"
)

// childDegree is the btree degree of each directory's children index.
const childDegree = 8

// Kind distinguishes directories from regular files.
type Kind int

const (
	// KindDirectory is a directory entry.
	KindDirectory Kind = iota
	// KindRegularFile is a regular file entry.
	KindRegularFile
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegularFile:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is a node of the namespace tree.
//
// Directories own their children; the parent reference is only used to walk
// upwards and is nil for the root.
type Entry struct {
	name     string
	kind     Kind
	parent   *Entry
	children *btree.BTreeG[*Entry]
	content  []byte
	modTime  time.Time
}

func lessByName(a, b *Entry) bool {
	return a.name < b.name
}

func newEntry(name string, kind Kind, parent *Entry) *Entry {
	e := &Entry{
		name:    name,
		kind:    kind,
		parent:  parent,
		modTime: time.Now(),
	}
	if kind == KindDirectory {
		e.children = btree.NewG(childDegree, lessByName)
	}
	return e
}

// Name returns the entry's name within its parent.
func (e *Entry) Name() string { return e.name }

// Kind returns the entry's kind.
func (e *Entry) Kind() Kind { return e.kind }

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool { return e.kind == KindDirectory }

// Parent returns the owning directory, or nil for the root.
func (e *Entry) Parent() *Entry { return e.parent }

// ModTime returns the time the entry was created or its content last written.
func (e *Entry) ModTime() time.Time { return e.modTime }

// Content returns a copy of a regular file's content.
// Directories have no content and return nil.
func (e *Entry) Content() []byte {
	if e.kind != KindRegularFile {
		return nil
	}
	return bytes.Clone(e.content)
}

// Size returns the content length of a regular file, and 0 for directories.
func (e *Entry) Size() int64 {
	return int64(len(e.content))
}

// Len returns the number of immediate children.
func (e *Entry) Len() int {
	if e.children == nil {
		return 0
	}
	return e.children.Len()
}

// Children returns the immediate children in ascending name order.
func (e *Entry) Children() []*Entry {
	if e.children == nil {
		return nil
	}
	out := make([]*Entry, 0, e.children.Len())
	e.children.Ascend(func(c *Entry) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Path returns the canonical, root-anchored path of the entry.
// The root is "/".
func (e *Entry) Path() string {
	if e.parent == nil {
		return "/"
	}
	var segs []string
	for cur := e; cur.parent != nil; cur = cur.parent {
		segs = append(segs, cur.name)
	}
	slices.Reverse(segs)
	return "/" + strings.Join(segs, "/")
}

// findChild returns the child of a directory with exactly the given name.
func (e *Entry) findChild(name string) (*Entry, bool) {
	if e.children == nil {
		return nil, false
	}
	return e.children.Get(&Entry{name: name})
}

// insertChild creates a child and inserts it in name order.
// The caller must have checked that no child with this name exists.
func (e *Entry) insertChild(name string, kind Kind) *Entry {
	child := newEntry(name, kind, e)
	e.children.ReplaceOrInsert(child)
	return child
}

// neighbors returns the siblings immediately before and after e.
func (e *Entry) neighbors() (prev, next *Entry) {
	if e.parent == nil {
		return nil, nil
	}
	e.parent.children.DescendLessOrEqual(e, func(c *Entry) bool {
		if c == e {
			return true
		}
		prev = c
		return false
	})
	e.parent.children.AscendGreaterOrEqual(e, func(c *Entry) bool {
		if c == e {
			return true
		}
		next = c
		return false
	})
	return prev, next
}
