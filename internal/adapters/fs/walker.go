// Package fs provides file system adapters for walking, copying and hashing trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// DefaultIgnores are directory names never copied or hashed.
var DefaultIgnores = []string{".git", ".Rproj.user"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root, skipping directories whose
// name matches one of ignores and the directories listed in skipPaths.
// Yielded paths include the root prefix.
func (w *Walker) WalkFiles(root string, ignores []string, skipPaths ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(path, d.Name(), ignores, skipPaths) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func (w *Walker) shouldSkipDir(path, name string, ignores, skipPaths []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	for _, skip := range skipPaths {
		if path == skip {
			return true
		}
	}
	return false
}
