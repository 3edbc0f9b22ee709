package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/nsfs/fs/core"
)

// FS wraps a billy.Filesystem as a read-only core.SourceFS.
type FS struct {
	bfs   billy.Filesystem
	fsTyp core.FSType
}

// NewLocal creates a filesystem rooted at the host directory dir.
// Names passed to FS methods are resolved relative to dir.
func NewLocal(dir string) *FS {
	return &FS{bfs: osfs.New(dir), fsTyp: core.FSTypeLocal}
}

// NewMemory creates an empty in-memory filesystem.
// Populate it through Unwrap.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), fsTyp: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type reports whether the tree lives on the host or in memory.
func (f *FS) Type() core.FSType {
	return f.fsTyp
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	bf, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = bf.Close() }()
	return io.ReadAll(bf)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root.
func (f *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := f.bfs.Stat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = f.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (f *FS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := f.bfs.ReadDir(path)
	if err != nil {
		err = walkFn(path, d, err)
		if err != nil {
			return err
		}
	}

	for _, entry := range entries {
		newPath := normalize(filepath.Join(path, entry.Name()))
		if err := f.walk(newPath, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.SourceFS = (*FS)(nil)
	_ fs.ReadDirFS  = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
)
