package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Converter = (*Converter)(nil)

// Converter routes a source project to the shinylive exporter or copies it verbatim.
type Converter struct {
	runner  ports.Runner
	fs      ports.FileSystem
	logger  ports.Logger
	tempDir string
}

// NewConverter creates a Converter whose working copies live under tempDir.
// An empty tempDir means os.TempDir().
func NewConverter(runner ports.Runner, fs ports.FileSystem, logger ports.Logger, tempDir string) *Converter {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Converter{
		runner:  runner,
		fs:      fs,
		logger:  logger,
		tempDir: tempDir,
	}
}

// Convert produces req.OutputDir from req.SourceDir according to the application type.
func (c *Converter) Convert(ctx context.Context, req ports.ConvertRequest) (domain.StageResult, error) {
	var err error
	switch req.AppType {
	case domain.AppTypeRShinylive:
		err = c.exportShinylive(ctx, req)
	case domain.AppTypePyShinylive:
		err = zerr.With(domain.ErrNotImplemented, "app_type", string(req.AppType))
	case domain.AppTypeRShiny, domain.AppTypePyShiny:
		err = c.copyApp(req)
	default:
		err = zerr.With(domain.ErrInvalidAppType, "app_type", string(req.AppType))
	}
	if err != nil {
		return failed(domain.StageConvert, req.OutputDir, err), err
	}

	return domain.StageResult{
		Stage:     domain.StageConvert,
		OutputDir: req.OutputDir,
		Success:   true,
		Message:   "converted " + string(req.AppType) + " app",
	}, nil
}

// copyApp copies a server-backed app without modification.
func (c *Converter) copyApp(req ports.ConvertRequest) error {
	c.logger.Info("copying app to " + req.OutputDir)
	return c.fs.CopyTree(req.SourceDir, req.OutputDir)
}

// exportShinylive runs shinylive::export against a private copy of the source
// and checks the bundle it produced.
func (c *Converter) exportShinylive(ctx context.Context, req ports.ConvertRequest) error {
	workDir := filepath.Join(c.tempDir, "shinyelectron-"+req.RunID)

	err := withWorkDir(workDir, func() error {
		if err := c.fs.CopyTree(req.SourceDir, workDir); err != nil {
			return err
		}

		c.logger.Info("exporting with shinylive")
		expr := "shinylive::export(" + rString(workDir) + ", " + rString(req.OutputDir) + ")"
		res, err := c.runner.Run(ctx, ports.Command{
			Name:   "Rscript",
			Args:   []string{"-e", expr},
			Stdout: req.Output,
			Stderr: req.Output,
		})
		if err != nil {
			return err
		}
		if !res.Success() {
			return subprocessError("Rscript", res)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return validateShinyliveOutput(req.OutputDir)
}

// withWorkDir creates dir, runs fn and removes dir whatever fn returns.
func withWorkDir(dir string, fn func() error) (err error) {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear working copy"), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create working copy"), "path", dir)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			err = zerr.With(zerr.Wrap(rmErr, "failed to remove working copy"), "path", dir)
		}
	}()
	return fn()
}

// validateShinyliveOutput checks for the entry page and the runtime assets directory.
func validateShinyliveOutput(outDir string) error {
	entry := filepath.Join(outDir, domain.EntryHTMLFileName)
	if info, err := os.Stat(entry); err != nil || info.IsDir() {
		return zerr.With(zerr.With(domain.ErrConversionOutput, "missing", domain.EntryHTMLFileName), "path", entry)
	}

	assets := filepath.Join(outDir, domain.ShinyliveAssetsDirName)
	if info, err := os.Stat(assets); err != nil || !info.IsDir() {
		return zerr.With(zerr.With(domain.ErrConversionOutput, "missing", domain.ShinyliveAssetsDirName+"/"), "path", assets)
	}
	return nil
}

// rString quotes a path as an R string literal.
func rString(path string) string {
	return strconv.Quote(filepath.ToSlash(path))
}
