package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Builder)(nil)

// Builder assembles the electron project and runs the packager for each target.
type Builder struct {
	runner         ports.Runner
	fs             ports.FileSystem
	templates      ports.TemplateRenderer
	cache          ports.CacheManager
	logger         ports.Logger
	packageManager []string
	rVersion       string
}

// NewBuilder creates a Builder. packageManager is the split package manager
// command and rVersion the R runtime bundled into r-shiny builds.
func NewBuilder(
	runner ports.Runner,
	fs ports.FileSystem,
	templates ports.TemplateRenderer,
	cache ports.CacheManager,
	logger ports.Logger,
	packageManager []string,
	rVersion string,
) *Builder {
	return &Builder{
		runner:         runner,
		fs:             fs,
		templates:      templates,
		cache:          cache,
		logger:         logger,
		packageManager: packageManager,
		rVersion:       rVersion,
	}
}

// Build scaffolds req.ProjectDir, installs dependencies and runs one build
// script per target. A missing or failing script only produces a warning.
func (b *Builder) Build(ctx context.Context, req ports.BuildRequest) (*domain.BuildResult, error) {
	if len(b.packageManager) == 0 {
		return nil, domain.ErrInvalidPackageManager
	}

	if err := b.scaffold(req); err != nil {
		return nil, err
	}

	if err := b.install(ctx, req); err != nil {
		return nil, err
	}

	manifest, err := domain.ReadManifest(req.ProjectDir)
	if err != nil {
		return nil, err
	}

	result := &domain.BuildResult{ProjectDir: req.ProjectDir}
	for _, target := range domain.Targets(req.Platforms, req.Archs) {
		tr, err := b.buildTarget(ctx, req, manifest, target, result)
		if err != nil {
			return result, err
		}
		if tr.Status != domain.TargetBuilt {
			b.warn(result, tr.Message)
		}
		result.Targets = append(result.Targets, tr)
	}

	if req.Strict && result.Built() == 0 {
		err := zerr.With(domain.ErrNoTargetsBuilt, "targets", len(result.Targets))
		return result, zerr.With(err, "warnings", len(result.Warnings))
	}

	if err := b.collectArtifacts(req, result); err != nil {
		return result, err
	}
	return result, nil
}

// scaffold creates the project skeleton, copies the app into src and renders the templates.
func (b *Builder) scaffold(req ports.BuildRequest) error {
	for _, dir := range domain.ScaffoldDirs {
		path := filepath.Join(req.ProjectDir, dir)
		if err := os.MkdirAll(path, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create project directory"), "path", path)
		}
	}

	src := filepath.Join(req.ProjectDir, domain.SrcDirName)
	if err := os.RemoveAll(src); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove previous app copy"), "path", src)
	}
	if err := b.fs.CopyTree(req.AppDir, src); err != nil {
		return err
	}

	return b.templates.Render(req.ProjectDir, ports.TemplateData{
		AppName: req.AppName,
		AppType: req.AppType,
		Icon:    req.Icon,
	})
}

// install runs the package manager install with its cache redirected into the shinyelectron cache.
func (b *Builder) install(ctx context.Context, req ports.BuildRequest) error {
	depCache, err := b.cache.DependencyCachePath()
	if err != nil {
		return err
	}

	b.logger.Info("installing dependencies")
	cmd := packageManagerCommand(b.packageManager, req.ProjectDir, "install")
	cmd.Env = map[string]string{EnvNpmCache: depCache}
	cmd.Stdout, cmd.Stderr = req.Output, req.Output

	res, err := b.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !res.Success() {
		return subprocessError(b.packageManager[0], res)
	}
	return nil
}

// buildTarget runs the build script for one target. Only errors that stop the
// whole build, such as cancellation, are returned; script failures are reported
// in the TargetResult.
func (b *Builder) buildTarget(
	ctx context.Context,
	req ports.BuildRequest,
	manifest *domain.BuildManifest,
	target domain.Target,
	result *domain.BuildResult,
) (domain.TargetResult, error) {
	tr := domain.TargetResult{Target: target}

	script, ok := manifest.ScriptFor(target)
	if !ok {
		tr.Status = domain.TargetSkipped
		tr.Message = fmt.Sprintf("no build script for %s", target)
		return tr, nil
	}
	tr.Script = script

	cmd := packageManagerCommand(b.packageManager, req.ProjectDir, "run", script)
	cmd.Stdout, cmd.Stderr = req.Output, req.Output
	if req.AppType == domain.AppTypeRShiny {
		runtimePath, err := b.cache.RuntimePath(b.rVersion, target.Platform, target.Arch)
		if err != nil {
			return tr, err
		}
		// The runtime cache is filled outside shinyelectron.
		if info, err := os.Stat(runtimePath); err != nil || !info.IsDir() {
			b.warn(result, fmt.Sprintf("R %s runtime for %s not found at %s; the app will not bundle R",
				b.rVersion, target, runtimePath))
		}
		cmd.Env = map[string]string{EnvRRuntime: runtimePath}
	}

	b.logger.Info(fmt.Sprintf("building %s with %s", target, script))
	res, err := b.runner.Run(ctx, cmd)
	if err != nil {
		if ctx.Err() != nil {
			return tr, err
		}
		tr.Status = domain.TargetFailed
		tr.Message = fmt.Sprintf("build script %s for %s could not run: %v", script, target, err)
		return tr, nil
	}
	if !res.Success() {
		tr.Status = domain.TargetFailed
		tr.Message = fmt.Sprintf("build script %s for %s exited with status %d", script, target, res.ExitCode)
		return tr, nil
	}

	tr.Status = domain.TargetBuilt
	return tr, nil
}

// collectArtifacts lists dist and warns about platforms with no matching file.
func (b *Builder) collectArtifacts(req ports.BuildRequest, result *domain.BuildResult) error {
	dist := filepath.Join(req.ProjectDir, domain.DistDirName)
	entries, err := os.ReadDir(dist)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputValidation.Error()), "path", dist)
	}

	for _, e := range entries {
		result.Artifacts = append(result.Artifacts, e.Name())
	}
	slices.Sort(result.Artifacts)

	for _, p := range req.Platforms {
		found := slices.ContainsFunc(result.Artifacts, func(name string) bool {
			return domain.MatchesPlatform(name, p)
		})
		if !found {
			b.warn(result, fmt.Sprintf("no distributable found for platform %s", p))
		}
	}
	return nil
}

func (b *Builder) warn(result *domain.BuildResult, msg string) {
	result.Warnings = append(result.Warnings, msg)
	b.logger.Warn(msg)
}
