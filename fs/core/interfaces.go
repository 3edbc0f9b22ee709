package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a host filesystem (disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	fs.FS

	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WalkFS defines directory tree traversal.
type WalkFS interface {
	// Walk walks the file tree rooted at root in lexical order, calling
	// walkFn for each file or directory, including root.
	// fs.SkipDir and fs.SkipAll behave as in fs.WalkDir.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// SourceFS is a walkable read-only tree that reports its type.
type SourceFS interface {
	ReadFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}
