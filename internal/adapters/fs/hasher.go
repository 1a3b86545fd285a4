package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	walker *Walker
}

// NewFileSystem creates a FileSystem using walker to enumerate trees.
func NewFileSystem(walker *Walker) *FileSystem {
	return &FileSystem{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (f *FileSystem) ComputeFileHash(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashTree returns a hex digest over the relative path and content of every
// file under root. Files are visited in sorted order so the digest does not
// depend on directory iteration order or on where root lives.
func (f *FileSystem) HashTree(root string) (string, error) {
	var rels []string
	for path, err := range f.walker.WalkFiles(root, DefaultIgnores) {
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to walk tree"), "path", root)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to compute relative path"), "path", path)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	slices.Sort(rels)

	digest := xxhash.New()
	for _, rel := range rels {
		_, _ = digest.WriteString(rel)
		_, _ = digest.Write([]byte{0})

		sum, err := f.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return "", err
		}
		if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
