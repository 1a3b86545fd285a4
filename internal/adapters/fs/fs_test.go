package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/adapters/fs"
	"go.trai.ch/shinyelectron/internal/core/domain"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app.R":             "ui",
		"www/style.css":     "css",
		".git/HEAD":         "ref",
		".Rproj.user/state": "x",
	})

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, fs.DefaultIgnores) {
		require.NoError(t, err)
		rel, _ := filepath.Rel(root, path)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{"app.R", "www/style.css"}, got)
}

func TestWalker_SkipPaths(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "out/b.txt": "b"})

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, nil, filepath.Join(root, "out")) {
		require.NoError(t, err)
		got = append(got, filepath.Base(path))
	}
	assert.Equal(t, []string{"a.txt"}, got)
}

func TestWalker_MissingRoot(t *testing.T) {
	var gotErr error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		gotErr = err
	}
	require.Error(t, gotErr)
}

func TestFileSystem_CopyTree(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		"app.R":          "library(shiny)\nshinyApp(ui, server)\n",
		"data/iris.csv":  "a,b\n1,2\n",
		"www/js/main.js": "console.log(1)",
	}
	writeTree(t, src, files)

	dst := filepath.Join(t.TempDir(), "shiny-app")
	fsys := fs.NewFileSystem(fs.NewWalker())
	require.NoError(t, fsys.CopyTree(src, dst))

	for rel, content := range files {
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, content, string(got))
	}
}

func TestFileSystem_CopyTree_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	src := t.TempDir()
	script := filepath.Join(src, "run.sh")
	//nolint:gosec // test requires an executable file
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o700))

	dst := t.TempDir()
	require.NoError(t, fs.NewFileSystem(fs.NewWalker()).CopyTree(src, dst))

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestFileSystem_CopyTree_DestinationInsideSource(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"app.py": "app"})

	dst := filepath.Join(src, "build", "copy")
	require.NoError(t, fs.NewFileSystem(fs.NewWalker()).CopyTree(src, dst))

	assert.FileExists(t, filepath.Join(dst, "app.py"))
	assert.NoDirExists(t, filepath.Join(dst, "build"))
}

func TestFileSystem_HashTree(t *testing.T) {
	fsys := fs.NewFileSystem(fs.NewWalker())
	files := map[string]string{"app.R": "ui", "www/a.css": "css"}

	a := t.TempDir()
	b := t.TempDir()
	writeTree(t, a, files)
	writeTree(t, b, files)

	hashA, err := fsys.HashTree(a)
	require.NoError(t, err)
	hashB, err := fsys.HashTree(b)
	require.NoError(t, err)

	assert.Len(t, hashA, 16)
	assert.Equal(t, hashA, hashB, "hash must not depend on the tree location")

	writeTree(t, b, map[string]string{"app.R": "changed"})
	hashC, err := fsys.HashTree(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashC)

	writeTree(t, a, map[string]string{".git/HEAD": "ignored"})
	hashD, err := fsys.HashTree(a)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashD, "ignored directories must not affect the hash")
}

func TestFileSystem_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"x": "content"})
	fsys := fs.NewFileSystem(fs.NewWalker())

	h1, err := fsys.ComputeFileHash(filepath.Join(dir, "x"))
	require.NoError(t, err)
	h2, err := fsys.ComputeFileHash(filepath.Join(dir, "x"))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	_, err = fsys.ComputeFileHash(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
