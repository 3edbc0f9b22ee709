// Package billy provides a go-billy-backed, read-only implementation of
// core.SourceFS.
//
// The namespace shell reads two kinds of trees through it: host directories
// (seed trees and config files, via osfs) and in-memory fixture trees (via
// memfs, mostly in tests).
//
// Usage:
//
//	// Read a host directory
//	src := billy.NewLocal("/path/to/seed")
//	data, err := src.ReadFile("docs/readme")
//
//	// Build an in-memory tree
//	mem := billy.NewMemory()
//	_ = util.WriteFile(mem.Unwrap(), "docs/readme", []byte("hello"), 0o644)
//
// # Thread Safety
//
// FS instances are safe for concurrent reads by multiple goroutines.
// File handles are not safe for concurrent use.
package billy
