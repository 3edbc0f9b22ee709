package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/nsfs/fs/core"
)

// TestWalkFS tests directory tree traversal with Walk. The filesystem must
// contain Tree.
func TestWalkFS(t *testing.T, filesystem core.SourceFS) {
	t.Run("Subdirectories", func(t *testing.T) {
		testWalkFSWithSubdirectories(t, filesystem)
	})
	t.Run("EmptyDirectory", func(t *testing.T) {
		testWalkFSEmptyDirectory(t, filesystem)
	})
	t.Run("SkipDir", func(t *testing.T) {
		testWalkFSSkipDir(t, filesystem)
	})
	t.Run("PathHandling", func(t *testing.T) {
		testWalkFSPathHandling(t, filesystem)
	})
}

func collectWalk(t *testing.T, filesystem core.SourceFS, root string, skip string) []string {
	t.Helper()
	var visited []string
	err := filesystem.Walk(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		if path == skip && d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk(%s): got error %v, want nil", root, err)
	}
	return visited
}

func checkVisited(t *testing.T, root string, visited, want []string) {
	t.Helper()
	if len(visited) != len(want) {
		t.Errorf("Walk(%s): visited %d paths, want %d. Visited: %v", root, len(visited), len(want), visited)
		return
	}
	for i, expected := range want {
		if visited[i] != expected {
			t.Errorf("Walk(%s): path[%d] = %q, want %q", root, i, visited[i], expected)
		}
	}
}

// testWalkFSWithSubdirectories tests Walk() visits nested entries in lexical
// pre-order.
func testWalkFSWithSubdirectories(t *testing.T, filesystem core.SourceFS) {
	visited := collectWalk(t, filesystem, "walkroot", "")
	checkVisited(t, "walkroot", visited, []string{
		"walkroot",
		"walkroot/root.txt",
		"walkroot/subdir1",
		"walkroot/subdir1/file1.txt",
		"walkroot/subdir2",
		"walkroot/subdir2/file2.txt",
	})
}

func testWalkFSEmptyDirectory(t *testing.T, filesystem core.SourceFS) {
	visited := collectWalk(t, filesystem, "emptydir", "")
	checkVisited(t, "emptydir", visited, []string{"emptydir"})
}

// testWalkFSSkipDir tests fs.SkipDir prunes only the directory returned for.
func testWalkFSSkipDir(t *testing.T, filesystem core.SourceFS) {
	visited := collectWalk(t, filesystem, "walkroot", "walkroot/subdir1")
	checkVisited(t, "walkroot", visited, []string{
		"walkroot",
		"walkroot/root.txt",
		"walkroot/subdir1",
		"walkroot/subdir2",
		"walkroot/subdir2/file2.txt",
	})
}

// testWalkFSPathHandling tests every walked path is accessible via Stat and
// agrees with its DirEntry.
func testWalkFSPathHandling(t *testing.T, filesystem core.SourceFS) {
	err := filesystem.Walk("walkroot", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		info, statErr := filesystem.Stat(path)
		if statErr != nil {
			t.Errorf("Walk provided path %q that cannot be accessed via Stat: %v", path, statErr)
			return nil
		}

		if d.IsDir() != info.IsDir() {
			t.Errorf("Walk path %q: DirEntry.IsDir() = %v, FileInfo.IsDir() = %v (mismatch)",
				path, d.IsDir(), info.IsDir())
		}
		if d.Name() != info.Name() {
			t.Errorf("Walk path %q: DirEntry.Name() = %q, FileInfo.Name() = %q (mismatch)",
				path, d.Name(), info.Name())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk(walkroot): got error %v, want nil", err)
	}
}
