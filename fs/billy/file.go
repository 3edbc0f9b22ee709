package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
)

// File wraps billy.File to implement fs.File.
// It keeps the filename and filesystem so Stat can be answered, since
// billy.File has no Stat of its own.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Compile-time interface checks.
var (
	_ fs.File   = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
