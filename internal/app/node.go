package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shinyelectron/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/opener"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/shinyelectron/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			config.ProjectLoaderNodeID,
			toolchain.NodeID,
			pipeline.ConverterNodeID,
			pipeline.BuilderNodeID,
			pipeline.LauncherNodeID,
			fs.FileSystemNodeID,
			cas.NodeID,
			cache.NodeID,
			opener.NodeID,
			telemetry.TracerNodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	projects, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}
	tools, err := graft.Dep[ports.Toolchain](ctx)
	if err != nil {
		return nil, err
	}
	converter, err := graft.Dep[ports.Converter](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}
	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}
	fileSystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}
	cacheManager, err := graft.Dep[ports.CacheManager](ctx)
	if err != nil {
		return nil, err
	}
	open, err := graft.Dep[ports.Opener](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Settings:  settings,
		Projects:  projects,
		Toolchain: tools,
		Converter: converter,
		Builder:   builder,
		Launcher:  launcher,
		FS:        fileSystem,
		Store:     store,
		Cache:     cacheManager,
		Opener:    open,
		Tracer:    tracer,
		Renderer:  renderer,
		Logger:    log,
	}), nil
}
