package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/zerr"
)

// CopyTree copies every file under src into dst, preserving relative paths and
// file permissions. When dst lies inside src it is excluded from the copy.
func (f *FileSystem) CopyTree(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve source path"), "path", src)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve destination path"), "path", dst)
	}

	if err := os.MkdirAll(absDst, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", absDst)
	}

	for path, err := range f.walker.WalkFiles(absSrc, DefaultIgnores, absDst) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk source tree"), "path", absSrc)
		}

		rel, err := filepath.Rel(absSrc, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to compute relative path"), "path", path)
		}

		if err := copyFile(path, filepath.Join(absDst, rel)); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", src)
	}
	if info.IsDir() {
		// Symlinked directories are not followed.
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	in, err := os.Open(src) //nolint:gosec // path comes from walking a validated tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // destination is owned by the pipeline
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	return nil
}
