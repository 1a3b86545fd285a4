package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
)

const (
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
	// ProjectLoaderNodeID is the unique identifier for the project loader Graft node.
	ProjectLoaderNodeID graft.ID = "adapter.config.project_loader"
)

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Settings, error) {
			return NewSettingsLoader(DefaultConfigDir()).Load()
		},
	})

	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        ProjectLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLoader, error) {
			return NewProjectLoader(), nil
		},
	})
}
