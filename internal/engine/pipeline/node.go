package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shinyelectron/internal/adapters/cache"
	"go.trai.ch/shinyelectron/internal/adapters/config"
	"go.trai.ch/shinyelectron/internal/adapters/detector"
	"go.trai.ch/shinyelectron/internal/adapters/fs"
	"go.trai.ch/shinyelectron/internal/adapters/logger"
	"go.trai.ch/shinyelectron/internal/adapters/shell"
	"go.trai.ch/shinyelectron/internal/adapters/template"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
)

const (
	// ConverterNodeID is the unique identifier for the conversion stage Graft node.
	ConverterNodeID graft.ID = "engine.pipeline.converter"
	// BuilderNodeID is the unique identifier for the build stage Graft node.
	BuilderNodeID graft.ID = "engine.pipeline.builder"
	// LauncherNodeID is the unique identifier for the run stage Graft node.
	LauncherNodeID graft.ID = "engine.pipeline.launcher"
)

func init() {
	graft.Register(graft.Node[ports.Converter]{
		ID:        ConverterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.FileSystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Converter, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConverter(runner, fsys, log, ""), nil
		},
	})

	graft.Register(graft.Node[ports.Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.FileSystemNodeID,
			template.NodeID,
			cache.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (ports.Builder, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			templates, err := graft.Dep[ports.TemplateRenderer](ctx)
			if err != nil {
				return nil, err
			}
			cacheManager, err := graft.Dep[ports.CacheManager](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, fsys, templates, cacheManager, log, settings.PackageManager, settings.RVersion), nil
		},
	})

	graft.Register(graft.Node[ports.Launcher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Launcher, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(runner, log, settings.PackageManager, detector.Resolve(detector.IsInteractive(), settings.Terminal)), nil
		},
	})
}
