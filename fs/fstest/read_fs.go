package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/nsfs/fs/core"
)

var testContent = []byte("test file content")

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile and
// Exists. The filesystem must contain Tree.
func TestReadFS(t *testing.T, filesystem core.ReadFS) {
	t.Run("Open", func(t *testing.T) {
		testReadFSOpen(t, filesystem)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadFSReadDir(t, filesystem)
	})
	t.Run("ReadDirSorted", func(t *testing.T) {
		testReadFSReadDirSorted(t, filesystem)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem)
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem)
	})
}

// testReadFSOpen tests Open() on an existing file and reads its contents.
func testReadFSOpen(t *testing.T, filesystem core.ReadFS) {
	f, err := filesystem.Open("testdir/testfile.txt")
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(): got %q, want %q", data, testContent)
	}
}

func testReadFSStatFile(t *testing.T, filesystem core.ReadFS) {
	info, err := filesystem.Stat("testdir/testfile.txt")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "testdir/testfile.txt", err)
		return
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", "testdir/testfile.txt")
	}
	if info.Name() != "testfile.txt" {
		t.Errorf("Stat(%q): Name() = %q, want %q", "testdir/testfile.txt", info.Name(), "testfile.txt")
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/testfile.txt", info.Size(), len(testContent))
	}
}

func testReadFSStatDir(t *testing.T, filesystem core.ReadFS) {
	info, err := filesystem.Stat("testdir")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "testdir", err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", "testdir")
	}
}

func testReadFSReadDir(t *testing.T, filesystem core.ReadFS) {
	entries, err := filesystem.ReadDir("testdir")
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", "testdir", err)
		return
	}
	if len(entries) != 1 {
		t.Errorf("ReadDir(%q): got %d entries, want 1", "testdir", len(entries))
		return
	}
	if entries[0].Name() != "testfile.txt" {
		t.Errorf("ReadDir(%q): got entry name %q, want %q", "testdir", entries[0].Name(), "testfile.txt")
	}
	if entries[0].IsDir() {
		t.Errorf("ReadDir(%q): entry IsDir() = true, want false", "testdir")
	}

	entries, err = filesystem.ReadDir("emptydir")
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", "emptydir", err)
		return
	}
	if len(entries) != 0 {
		t.Errorf("ReadDir(%q): got %d entries, want 0", "emptydir", len(entries))
	}
}

// testReadFSReadDirSorted tests ReadDir() returns entries in name order.
func testReadFSReadDirSorted(t *testing.T, filesystem core.ReadFS) {
	entries, err := filesystem.ReadDir("walkroot")
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", "walkroot", err)
		return
	}
	want := []string{"root.txt", "subdir1", "subdir2"}
	if len(entries) != len(want) {
		t.Errorf("ReadDir(%q): got %d entries, want %d", "walkroot", len(entries), len(want))
		return
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("ReadDir(%q): entry[%d] = %q, want %q", "walkroot", i, e.Name(), want[i])
		}
	}
}

func testReadFSReadFile(t *testing.T, filesystem core.ReadFS) {
	data, err := filesystem.ReadFile("testdir/testfile.txt")
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", "testdir/testfile.txt", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", "testdir/testfile.txt", data, testContent)
	}
}

// testReadFSOpenNotExist tests missing names report fs.ErrNotExist.
func testReadFSOpenNotExist(t *testing.T, filesystem core.ReadFS) {
	for _, name := range []string{"nonexistent", "testdir/nonexistent"} {
		if _, err := filesystem.Open(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", name, err)
		}
		if _, err := filesystem.Stat(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", name, err)
		}
		if _, err := filesystem.ReadFile(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(%q): got error %v, want fs.ErrNotExist", name, err)
		}
	}
}

func testReadFSExists(t *testing.T, filesystem core.ReadFS) {
	tests := map[string]bool{
		"testdir/testfile.txt": true,
		"testdir":              true,
		"nonexistent":          false,
	}
	for name, want := range tests {
		got, err := filesystem.Exists(name)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", name, err)
			continue
		}
		if got != want {
			t.Errorf("Exists(%q): got %v, want %v", name, got, want)
		}
	}
}
