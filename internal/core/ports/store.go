package ports

import "go.trai.ch/shinyelectron/internal/core/domain"

// RecordStore persists export records inside a destination directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the export record for dest.
	// Returns nil, nil if not found.
	Get(dest string) (*domain.ExportRecord, error)

	// Put stores the export record for dest.
	Put(dest string, record domain.ExportRecord) error
}
