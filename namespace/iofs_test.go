package namespace

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/nsfs/fs/core"
	nsfstest "github.com/jmgilman/go/nsfs/fs/fstest"
)

func newFSFixture(t *testing.T) *Namespace {
	t.Helper()
	ns := New()
	require.NoError(t, ns.Mkdir("/docs"))
	require.NoError(t, ns.Mkdir("/docs/notes"))
	require.NoError(t, ns.Mkfile("/docs/readme"))
	require.NoError(t, ns.Put("/docs/readme", []byte("hello")))
	require.NoError(t, ns.Mkfile("/top"))
	return ns
}

func TestFS_Conformance(t *testing.T) {
	ns := newFSFixture(t)
	require.NoError(t, fstest.TestFS(ns.FS(), "docs", "docs/notes", "docs/readme", "top"))
}

func TestFS_Type(t *testing.T) {
	assert.Equal(t, core.FSTypeMemory, New().FS().Type())
}

func TestFS_ReadFile(t *testing.T) {
	fsys := newFSFixture(t).FS()

	data, err := fsys.ReadFile("docs/readme")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = fsys.ReadFile("docs")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIsADirectory)

	_, err = fsys.ReadFile("docs/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrNoSuchEntry)

	var pe *fs.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "read", pe.Op)
	assert.Equal(t, "docs/missing", pe.Path)
}

func TestFS_InvalidNames(t *testing.T) {
	fsys := newFSFixture(t).FS()

	for _, name := range []string{"/docs", "docs/", "docs/../top", "./docs", ""} {
		_, err := fsys.Open(name)
		assert.ErrorIs(t, err, fs.ErrInvalid, name)
	}
}

func TestFS_Exists(t *testing.T) {
	fsys := newFSFixture(t).FS()

	ok, err := fsys.Exists("docs/notes")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fsys.Exists("docs/nope")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = fsys.Exists("top/x")
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestFS_Walk(t *testing.T) {
	ns := newFSFixture(t)
	require.NoError(t, ns.Cd("/docs"))

	var paths []string
	err := ns.FS().Walk(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "docs", "docs/notes", "docs/readme", "top"}, paths)
	assert.Equal(t, "/docs", ns.Pwd())
}

func TestFS_OpenSnapshot(t *testing.T) {
	ns := newFSFixture(t)
	fsys := ns.FS()

	f, err := fsys.Open("docs/readme")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.NoError(t, ns.Put("/docs/readme", []byte("changed")))

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFS_ReadDirInChunks(t *testing.T) {
	fsys := newFSFixture(t).FS()

	f, err := fsys.Open(".")
	require.NoError(t, err)
	dir, ok := f.(fs.ReadDirFile)
	require.True(t, ok)

	first, err := dir.ReadDir(1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "docs", first[0].Name())
	assert.True(t, first[0].IsDir())

	second, err := dir.ReadDir(5)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "top", second[0].Name())

	_, err = dir.ReadDir(1)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, dir.Close())
	assert.ErrorIs(t, dir.Close(), fs.ErrClosed)
}

func TestFS_Stat(t *testing.T) {
	fsys := newFSFixture(t).FS()

	info, err := fsys.Stat(".")
	require.NoError(t, err)
	assert.Equal(t, ".", info.Name())
	assert.True(t, info.IsDir())
	assert.True(t, info.Mode().IsDir())

	info, err = fsys.Stat("docs/readme")
	require.NoError(t, err)
	assert.Equal(t, "readme", info.Name())
	assert.Equal(t, int64(5), info.Size())
	assert.True(t, info.Mode().IsRegular())
}

func TestFS_ProviderConformance(t *testing.T) {
	nsfstest.TestSuite(t, func(t *testing.T, tree []nsfstest.Node) core.SourceFS {
		ns := New()
		for _, n := range tree {
			if n.Dir {
				require.NoError(t, ns.Mkdir(n.Path))
				continue
			}
			require.NoError(t, ns.Mkfile(n.Path))
			require.NoError(t, ns.Put(n.Path, n.Content))
		}
		return ns.FS()
	})
}
