package ports

import "go.trai.ch/shinyelectron/internal/core/domain"

// ProjectLoader reads the optional per-project configuration.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ProjectLoader interface {
	// Load returns the project configuration found in dir, or nil, nil if there is none.
	Load(dir string) (*domain.ProjectConfig, error)
}
