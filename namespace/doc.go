// Package namespace implements an in-memory hierarchical namespace of
// directories and regular files, navigated and mutated through shell-like
// path commands.
//
// A Namespace owns a tree rooted at a directory named RootName and a current
// working directory cursor. Every directory keeps its children in ascending
// byte-wise name order, and every entry holds a back-reference to its parent
// so that its canonical path can be reconstructed.
//
// # Paths
//
// Paths are slash-separated. A leading slash resolves from the root,
// anything else from the current directory. Empty segments are ignored, so
// "//a/" and "/a" name the same entry. The segments "." and ".." refer to the
// current and parent directory; ".." at the root is an error.
//
// # Commands
//
//	ns := namespace.New()
//	_ = ns.Mkdir("docs")
//	_ = ns.Mkfile("docs/readme")
//	_ = ns.Put("docs/readme", []byte("hello"))
//	_ = ns.Cd("docs")
//	fmt.Println(ns.Pwd()) // /docs
//
// Every command failure is a *PathError carrying the operation, the path as
// the caller supplied it, and one of ErrNoSuchEntry, ErrNotADirectory,
// ErrIsADirectory, ErrAlreadyExists or ErrMissingOperand. Failed commands
// never modify the tree or the current directory.
//
// # Concurrency
//
// A Namespace is not safe for concurrent use. Callers issuing commands from
// several goroutines must serialize them.
package namespace
