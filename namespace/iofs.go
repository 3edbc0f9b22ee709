package namespace

import (
	"bytes"
	"io"
	"io/fs"
	"time"

	"github.com/jmgilman/go/nsfs/errors"
	"github.com/jmgilman/go/nsfs/fs/core"
)

// FS is a read-only io/fs view of a namespace. Names follow io/fs rules:
// unrooted, slash-separated, "." for the root. The view always resolves from
// the root and never moves the current directory.
type FS struct {
	ns *Namespace
}

// FS returns a read-only io/fs view of the namespace.
func (ns *Namespace) FS() *FS {
	return &FS{ns: ns}
}

// fsError carries a namespace sentinel while matching the io/fs sentinel
// with the same meaning.
type fsError struct {
	err error
}

func (e *fsError) Error() string        { return errors.GetMessage(e.err) }
func (e *fsError) Unwrap() error        { return e.err }
func (e *fsError) Is(target error) bool { return matchesFS(e.err, target) }

func (f *FS) lookup(op, name string) (*Entry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	e, err := walk(f.ns.root, tokenize(name))
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: &fsError{err: err}}
	}
	return e, nil
}

// Open opens the named entry. Files read a snapshot of their content taken
// at open time; directories implement fs.ReadDirFile.
func (f *FS) Open(name string) (fs.File, error) {
	e, err := f.lookup("open", name)
	if err != nil {
		return nil, err
	}
	info := newFileInfo(e)
	if e.IsDir() {
		return &openDir{info: info, entries: dirEntries(e)}, nil
	}
	return &openFile{info: info, r: bytes.NewReader(e.Content())}, nil
}

// Stat returns metadata for the named entry.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	e, err := f.lookup("stat", name)
	if err != nil {
		return nil, err
	}
	return newFileInfo(e), nil
}

// ReadDir returns the named directory's entries sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	e, err := f.lookup("readdir", name)
	if err != nil {
		return nil, err
	}
	if !e.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: &fsError{err: ErrNotADirectory}}
	}
	return dirEntries(e), nil
}

// ReadFile returns a copy of the named file's content.
func (f *FS) ReadFile(name string) ([]byte, error) {
	e, err := f.lookup("read", name)
	if err != nil {
		return nil, err
	}
	if e.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: &fsError{err: ErrIsADirectory}}
	}
	return e.Content(), nil
}

// Exists reports whether the named entry exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.lookup("stat", name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Walk walks the tree rooted at root in name order.
func (f *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	return fs.WalkDir(f, root, walkFn)
}

// Type returns core.FSTypeMemory.
func (f *FS) Type() core.FSType {
	return core.FSTypeMemory
}

func dirEntries(e *Entry) []fs.DirEntry {
	children := e.Children()
	out := make([]fs.DirEntry, len(children))
	for i, c := range children {
		out[i] = fs.FileInfoToDirEntry(newFileInfo(c))
	}
	return out
}

// fileInfo is a snapshot of an entry's metadata.
type fileInfo struct {
	name    string
	dir     bool
	size    int64
	modTime time.Time
}

func newFileInfo(e *Entry) *fileInfo {
	name := e.name
	if e.parent == nil {
		name = "."
	}
	return &fileInfo{
		name:    name,
		dir:     e.IsDir(),
		size:    e.Size(),
		modTime: e.modTime,
	}
}

func (i *fileInfo) Name() string       { return i.name }
func (i *fileInfo) Size() int64        { return i.size }
func (i *fileInfo) ModTime() time.Time { return i.modTime }
func (i *fileInfo) IsDir() bool        { return i.dir }
func (i *fileInfo) Sys() any           { return nil }

func (i *fileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}

// openFile is an open regular file.
type openFile struct {
	info   *fileInfo
	r      *bytes.Reader
	closed bool
}

func (f *openFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *openFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	return f.r.Read(p)
}

func (f *openFile) ReadAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	return f.r.ReadAt(p, off)
}

func (f *openFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	return f.r.Seek(offset, whence)
}

func (f *openFile) Close() error {
	if f.closed {
		return fs.ErrClosed
	}
	f.closed = true
	return nil
}

// openDir is an open directory. Its listing is fixed at open time.
type openDir struct {
	info    *fileInfo
	entries []fs.DirEntry
	offset  int
	closed  bool
}

func (d *openDir) Stat() (fs.FileInfo, error) { return d.info, nil }

func (d *openDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: &fsError{err: ErrIsADirectory}}
}

func (d *openDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.closed {
		return nil, fs.ErrClosed
	}
	rest := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	n = min(n, len(rest))
	d.offset += n
	return rest[:n], nil
}

func (d *openDir) Close() error {
	if d.closed {
		return fs.ErrClosed
	}
	d.closed = true
	return nil
}

// Compile-time interface checks.
var (
	_ core.SourceFS  = (*FS)(nil)
	_ fs.StatFS      = (*FS)(nil)
	_ fs.ReadDirFS   = (*FS)(nil)
	_ fs.ReadFileFS  = (*FS)(nil)
	_ fs.ReadDirFile = (*openDir)(nil)
	_ io.ReaderAt    = (*openFile)(nil)
	_ io.Seeker      = (*openFile)(nil)
)
