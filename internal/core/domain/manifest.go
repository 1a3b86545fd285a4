package domain

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// LaunchScript is the manifest script that starts the development shell.
const LaunchScript = "electron"

// BuildManifest is the subset of package.json this tool reads.
type BuildManifest struct {
	Name    string            `json:"name"`
	Main    string            `json:"main"`
	Scripts map[string]string `json:"scripts"`
}

// ReadManifest loads package.json from the project directory.
func ReadManifest(projectDir string) (*BuildManifest, error) {
	path := filepath.Join(projectDir, ManifestFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the project directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, ErrManifestInvalid.Error()), "path", path)
	}

	var m BuildManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrManifestInvalid.Error()), "path", path)
	}
	return &m, nil
}

// HasScript reports whether the manifest defines the named script.
func (m *BuildManifest) HasScript(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Scripts[name]
	return ok
}

// ScriptFor returns the build script for a target.
// It prefers build-{platform}-{arch}, falls back to build-{platform},
// and reports false when neither exists.
func (m *BuildManifest) ScriptFor(t Target) (string, bool) {
	specific := "build-" + string(t.Platform) + "-" + string(t.Arch)
	if m.HasScript(specific) {
		return specific, true
	}
	generic := "build-" + string(t.Platform)
	if m.HasScript(generic) {
		return generic, true
	}
	return "", false
}
