package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shinyelectron/internal/adapters/config"
	"go.trai.ch/shinyelectron/internal/adapters/logger"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
)

// NodeID is the unique identifier for the cache manager Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CacheManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheManager, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			root := settings.CacheDir
			if root == "" {
				root, err = DefaultRoot()
				if err != nil {
					return nil, err
				}
			}
			return NewManager(root, log), nil
		},
	})
}
