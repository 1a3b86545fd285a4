// Package config loads tool settings and per-project configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*ProjectLoader)(nil)

// ProjectLoader reads shinyelectron.yaml from a source directory.
type ProjectLoader struct{}

// NewProjectLoader creates a ProjectLoader.
func NewProjectLoader() *ProjectLoader {
	return &ProjectLoader{}
}

// Load returns the project configuration in dir, or nil, nil when the file does not exist.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func (l *ProjectLoader) Load(dir string) (*domain.ProjectConfig, error) {
	path := filepath.Join(dir, domain.ProjectFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the source directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var cfg domain.ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &cfg, nil
}
