// Package fstest provides a conformance test suite for read-only filesystem
// providers implementing core.SourceFS.
//
// A provider's test builds the fixture tree in whatever way its backend is
// populated and hands the result to the suite:
//
//	func TestConformance(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T, tree []fstest.Node) core.SourceFS {
//	        fsys := myprovider.New()
//	        for _, n := range tree {
//	            // create n.Path as a directory or file with n.Content
//	        }
//	        return fsys
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/nsfs/fs/core"
)

// Node is one entry of the fixture tree. Parents always precede their
// children.
type Node struct {
	Path    string
	Dir     bool
	Content []byte
}

// Builder returns a filesystem containing exactly tree.
type Builder func(t *testing.T, tree []Node) core.SourceFS

// Tree is the fixture every suite test expects.
func Tree() []Node {
	return []Node{
		{Path: "emptydir", Dir: true},
		{Path: "testdir", Dir: true},
		{Path: "testdir/testfile.txt", Content: []byte("test file content")},
		{Path: "walkroot", Dir: true},
		{Path: "walkroot/root.txt", Content: []byte("root")},
		{Path: "walkroot/subdir1", Dir: true},
		{Path: "walkroot/subdir1/file1.txt", Content: []byte("file1")},
		{Path: "walkroot/subdir2", Dir: true},
		{Path: "walkroot/subdir2/file2.txt", Content: []byte("file2")},
	}
}

// TestSuite runs every conformance test against a filesystem built from
// Tree.
func TestSuite(t *testing.T, build Builder) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, build(t, Tree()))
	})
	t.Run("WalkFS", func(t *testing.T) {
		TestWalkFS(t, build(t, Tree()))
	})
}
