// Package seed populates a namespace from a read-only directory tree.
//
// Seeding is a one-way copy at startup. Nothing is written back to the
// source, and later changes to the source are not observed.
package seed

import (
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/jmgilman/go/nsfs/errors"
	"github.com/jmgilman/go/nsfs/fs/core"
	"github.com/jmgilman/go/nsfs/namespace"
)

// Stats counts what a Load created.
type Stats struct {
	Dirs  int
	Files int
}

// Load copies the tree under root in src into ns, using only the
// namespace's own create and put operations. Entries are placed relative to
// the namespace root. Directories that already exist are merged into and
// files that already exist are overwritten. Entries that are neither
// directories nor regular files are skipped.
func Load(ctx context.Context, ns *namespace.Namespace, src core.SourceFS, root string) (Stats, error) {
	var stats Stats
	root = path.Clean(root)

	err := src.Walk(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		target, ok := relative(root, p)
		if !ok {
			return nil
		}

		switch {
		case d.IsDir():
			created, err := ensureDir(ns, target)
			if err != nil {
				return err
			}
			if created {
				stats.Dirs++
			}
		case d.Type().IsRegular():
			data, err := src.ReadFile(p)
			if err != nil {
				return err
			}
			if err := writeFile(ns, target, data); err != nil {
				return err
			}
			stats.Files++
		}
		return nil
	})
	if err != nil {
		return stats, errors.WrapWithContext(err, errors.CodeSeedFailed, "failed to seed namespace", map[string]interface{}{
			"root": root,
			"type": src.Type().String(),
		})
	}
	return stats, nil
}

// relative maps a walked path to its absolute namespace path. The walk root
// itself maps to nothing.
func relative(root, p string) (string, bool) {
	p = path.Clean(p)
	if p == root {
		return "", false
	}
	if root != "." {
		p = strings.TrimPrefix(p, root+"/")
	}
	return "/" + p, true
}

func ensureDir(ns *namespace.Namespace, target string) (bool, error) {
	err := ns.Mkdir(target)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, namespace.ErrAlreadyExists) {
		if e, rerr := ns.Resolve(target); rerr == nil && e.IsDir() {
			return false, nil
		}
	}
	return false, err
}

func writeFile(ns *namespace.Namespace, target string, data []byte) error {
	if err := ns.Mkfile(target); err != nil && !errors.Is(err, namespace.ErrAlreadyExists) {
		return err
	}
	return ns.Put(target, data)
}
