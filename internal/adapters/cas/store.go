// Package cas persists export records next to the artifacts they describe.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore with one JSON file per destination.
type Store struct{}

// NewStore creates a new RecordStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the export record for dest.
func (s *Store) Get(dest string) (*domain.ExportRecord, error) {
	filename := domain.RecordPath(dest)
	//nolint:gosec // Path is built from the destination directory
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordReadFailed.Error()), "path", filename)
	}

	var record domain.ExportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordUnmarshalFailed.Error()), "path", filename)
	}

	return &record, nil
}

// Put stores the export record for dest, replacing any previous one.
func (s *Store) Put(dest string, record domain.ExportRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}

	filename := domain.RecordPath(dest)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRecordWriteFailed.Error()), "path", filename)
	}

	//nolint:gosec // Path is built from the destination directory
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRecordWriteFailed.Error()), "path", filename)
	}

	return nil
}
