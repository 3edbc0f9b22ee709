// Package core defines the read-only filesystem contracts shared by the
// namespace shell's providers.
//
// Three kinds of trees are read through these interfaces: a host directory
// (go-billy osfs), an in-memory fixture tree (go-billy memfs), and the
// namespace itself through its io/fs view. Consumers such as the config
// loader and the seeder accept a ReadFS or SourceFS and never care which one
// they were given.
//
// # Interface Hierarchy
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WalkFS: Walk
//   - SourceFS: ReadFS + WalkFS + Type
//
// ReadFS embeds fs.FS, so every provider also works with fs.WalkDir,
// fs.ReadFile and the rest of io/fs.
//
// # Usage Example
//
//	func countFiles(src core.SourceFS) (int, error) {
//	    n := 0
//	    err := src.Walk(".", func(path string, d fs.DirEntry, err error) error {
//	        if err != nil {
//	            return err
//	        }
//	        if !d.IsDir() {
//	            n++
//	        }
//	        return nil
//	    })
//	    return n, err
//	}
package core
