// Package app implements the application layer for shinyelectron.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps groups the ports the application layer orchestrates.
type Deps struct {
	Settings  *domain.Settings
	Projects  ports.ProjectLoader
	Toolchain ports.Toolchain
	Converter ports.Converter
	Builder   ports.Builder
	Launcher  ports.Launcher
	FS        ports.FileSystem
	Store     ports.RecordStore
	Cache     ports.CacheManager
	Opener    ports.Opener
	Tracer    ports.Tracer
	Renderer  ports.Renderer
	Logger    ports.Logger
}

// App represents the main application logic.
type App struct {
	settings  domain.Settings
	projects  ports.ProjectLoader
	toolchain ports.Toolchain
	converter ports.Converter
	builder   ports.Builder
	launcher  ports.Launcher
	fs        ports.FileSystem
	store     ports.RecordStore
	cache     ports.CacheManager
	opener    ports.Opener
	tracer    ports.Tracer
	renderer  ports.Renderer
	logger    ports.Logger

	newID func() string
	now   func() time.Time
}

// New creates a new App instance. A nil Settings means domain.DefaultSettings().
func New(d Deps) *App {
	settings := domain.DefaultSettings()
	if d.Settings != nil {
		settings = *d.Settings
	}
	return &App{
		settings:  settings,
		projects:  d.Projects,
		toolchain: d.Toolchain,
		converter: d.Converter,
		builder:   d.Builder,
		launcher:  d.Launcher,
		fs:        d.FS,
		store:     d.Store,
		cache:     d.Cache,
		opener:    d.Opener,
		tracer:    d.Tracer,
		renderer:  d.Renderer,
		logger:    d.Logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// WithClock replaces the run id generator and clock.
// This is primarily used for testing to get stable records.
func (a *App) WithClock(newID func() string, now func() time.Time) *App {
	a.newID = newID
	a.now = now
	return a
}

// Export converts, builds and optionally launches and reveals a Shiny app.
// Every failure is joined with domain.ErrExportFailed.
func (a *App) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	a.logger.SetVerbose(req.Verbose)
	a.renderer.SetVerbose(req.Verbose)

	result, err := a.export(ctx, req)
	if err != nil {
		return nil, errors.Join(domain.ErrExportFailed, err)
	}
	return result, nil
}

//nolint:cyclop // orchestration function
func (a *App) export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	// 1. Resolve the request
	if err := domain.ValidateDirectory("source_dir", req.SourceDir); err != nil {
		return nil, err
	}
	req, err := a.resolve(req)
	if err != nil {
		return nil, err
	}

	// 2. Validate before any side effect
	if err := req.Validate(); err != nil {
		return nil, err
	}
	empty, err := destinationEmpty(req.DestDir)
	if err != nil {
		return nil, err
	}
	if !empty && !req.Overwrite {
		return nil, zerr.With(domain.ErrDestinationExists, "path", req.DestDir)
	}

	// 3. Check external tools
	if err := a.toolchain.CheckConverter(ctx, req.AppType); err != nil {
		return nil, err
	}
	if req.Build {
		if err := a.toolchain.CheckPackager(ctx); err != nil {
			return nil, err
		}
	}

	// 4. Prepare the destination
	if !empty {
		a.logger.Info(fmt.Sprintf("removing %s...", req.DestDir))
		if err := os.RemoveAll(req.DestDir); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to remove destination"), "path", req.DestDir)
		}
	}
	if err := os.MkdirAll(req.DestDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create destination"), "path", req.DestDir)
	}

	sourceHash, err := a.fs.HashTree(req.SourceDir)
	if err != nil {
		return nil, err
	}

	result := &domain.ExportResult{
		RunID:         a.newID(),
		ConvertedPath: domain.ConvertedAppPath(req.DestDir, req.AppType),
		SourceHash:    sourceHash,
	}
	a.logger.Debug(fmt.Sprintf("export %s of %s (source %s)", result.RunID, req.AppName, sourceHash))

	// 5. Run the stages
	if err := a.renderer.Start(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = a.renderer.Stop()
	}()

	a.tracer.EmitPlan(ctx, plan(req))

	if err := a.convert(ctx, req, result); err != nil {
		return nil, err
	}

	if req.Build {
		if err := a.build(ctx, req, result); err != nil {
			return nil, err
		}
		a.saveRecord(req, result)

		if req.RunAfter {
			if err := a.launch(ctx, result.ElectronPath, req.Port, req.DevTools); err != nil {
				return nil, err
			}
			result.Stages = append(result.Stages, domain.StageResult{
				Stage: domain.StageRun, OutputDir: result.ElectronPath, Success: true,
			})
		}
	}

	if req.OpenAfter {
		a.reveal(ctx, req.DestDir, result)
	}

	return result, nil
}

// resolve layers the project configuration and settings under the request.
func (a *App) resolve(req domain.ExportRequest) (domain.ExportRequest, error) {
	project, err := a.projects.Load(req.SourceDir)
	if err != nil {
		return req, err
	}
	req = req.WithProject(project)
	if req.Port == 0 {
		req.Port = a.settings.DevPort
	}
	return req.Normalize(), nil
}

// plan lists the stages an export request will run, in order.
func plan(req domain.ExportRequest) []string {
	stages := []string{string(domain.StageConvert)}
	if req.Build {
		stages = append(stages, string(domain.StageBuild))
		if req.RunAfter {
			stages = append(stages, string(domain.StageRun))
		}
	}
	if req.OpenAfter {
		stages = append(stages, string(domain.StageOpen))
	}
	return stages
}

func (a *App) convert(ctx context.Context, req domain.ExportRequest, result *domain.ExportResult) error {
	return a.stage(ctx, domain.StageConvert, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("app_type", string(req.AppType))
		span.SetAttribute("run_id", result.RunID)

		res, err := a.converter.Convert(ctx, ports.ConvertRequest{
			RunID:     result.RunID,
			SourceDir: req.SourceDir,
			OutputDir: result.ConvertedPath,
			AppType:   req.AppType,
			Output:    span,
		})
		result.Stages = append(result.Stages, res)
		return err
	})
}

func (a *App) build(ctx context.Context, req domain.ExportRequest, result *domain.ExportResult) error {
	projectDir := domain.ElectronAppPath(req.DestDir)

	return a.stage(ctx, domain.StageBuild, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("targets", targetNames(req))

		build, err := a.builder.Build(ctx, ports.BuildRequest{
			AppDir:     result.ConvertedPath,
			ProjectDir: projectDir,
			AppName:    req.AppName,
			AppType:    req.AppType,
			Platforms:  req.Platforms,
			Archs:      req.Archs,
			Icon:       req.Icon,
			Strict:     req.Strict,
			Output:     span,
		})
		if err != nil {
			result.Stages = append(result.Stages, domain.StageResult{
				Stage: domain.StageBuild, OutputDir: projectDir, Message: err.Error(),
			})
			return err
		}

		span.SetAttribute("built", build.Built())
		span.SetAttribute("artifacts", build.Artifacts)
		result.Build = build
		result.ElectronPath = projectDir
		result.Stages = append(result.Stages, domain.StageResult{
			Stage:     domain.StageBuild,
			OutputDir: projectDir,
			Success:   true,
			Message:   fmt.Sprintf("built %d of %d target(s)", build.Built(), len(build.Targets)),
		})
		return nil
	})
}

func (a *App) launch(ctx context.Context, projectDir string, port int, devTools bool) error {
	return a.stage(ctx, domain.StageRun, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("port", port)
		return a.launcher.Launch(ctx, ports.LaunchRequest{
			ProjectDir: projectDir,
			Port:       port,
			DevTools:   devTools,
		})
	})
}

// reveal opens dest in the file browser. Failure only produces a warning.
func (a *App) reveal(ctx context.Context, dest string, result *domain.ExportResult) {
	stage := domain.StageResult{Stage: domain.StageOpen, OutputDir: dest, Success: true}
	_ = a.stage(ctx, domain.StageOpen, func(_ context.Context, _ ports.Span) error {
		if err := a.opener.Open(dest); err != nil {
			a.logger.Warn(fmt.Sprintf("could not open %s: %v", dest, err))
			stage.Success = false
			stage.Message = err.Error()
		}
		return nil
	})
	result.Stages = append(result.Stages, stage)
}

// saveRecord stores the export record. Failure only produces a warning.
func (a *App) saveRecord(req domain.ExportRequest, result *domain.ExportResult) {
	record := domain.ExportRecord{
		RunID:      result.RunID,
		AppName:    req.AppName,
		AppType:    req.AppType,
		Platforms:  toStrings(req.Platforms),
		Archs:      toStrings(req.Archs),
		SourceHash: result.SourceHash,
		Artifacts:  result.Build.Artifacts,
		Warnings:   result.Build.Warnings,
		Timestamp:  a.now().UTC(),
	}
	if err := a.store.Put(req.DestDir, record); err != nil {
		a.logger.Warn(fmt.Sprintf("could not save export record: %v", err))
	}
}

// stage runs fn inside a span named after the stage.
func (a *App) stage(
	ctx context.Context,
	stage domain.Stage,
	fn func(ctx context.Context, span ports.Span) error,
) error {
	ctx, span := a.tracer.Start(ctx, string(stage))
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ProjectDir string
	Port       int
	DevTools   bool
}

// Run launches an existing electron-app project in development mode.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := domain.ValidateDirectory("project_dir", opts.ProjectDir); err != nil {
		return err
	}
	if opts.Port == 0 {
		opts.Port = a.settings.DevPort
	}
	if err := a.toolchain.CheckPackager(ctx); err != nil {
		return err
	}

	if err := a.renderer.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = a.renderer.Stop()
	}()

	a.tracer.EmitPlan(ctx, []string{string(domain.StageRun)})
	return a.launch(ctx, opts.ProjectDir, opts.Port, opts.DevTools)
}

// CacheClear removes the cache subtrees selected by scope.
func (a *App) CacheClear(_ context.Context, scope string) error {
	s, err := domain.ParseCacheScope(scope)
	if err != nil {
		return err
	}
	return a.cache.Clear(s)
}

// CacheDir returns the cache root directory.
func (a *App) CacheDir() string {
	return a.cache.Root()
}

// Info returns the export record stored in dest.
func (a *App) Info(dest string) (*domain.ExportRecord, error) {
	record, err := a.store.Get(dest)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, zerr.With(domain.ErrRecordNotFound, "dest", dest)
	}
	return record, nil
}

// destinationEmpty reports whether dest is missing or an empty directory.
func destinationEmpty(dest string) (bool, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read destination"), "path", dest)
	}
	return len(entries) == 0, nil
}

func targetNames(req domain.ExportRequest) []string {
	targets := domain.Targets(req.Platforms, req.Archs)
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return names
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
