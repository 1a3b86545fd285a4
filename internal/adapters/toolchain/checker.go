// Package toolchain verifies that the external tools an export delegates to are installed.
package toolchain

import (
	"context"
	"strings"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

// RscriptTool is the R script front end used for shinylive conversion.
const RscriptTool = "Rscript"

// ShinylivePackage is the R package that performs the conversion.
const ShinylivePackage = "shinylive"

// missingPackageStatus is the exit status of the check script when the package is absent.
const missingPackageStatus = 3

var _ ports.Toolchain = (*Checker)(nil)

// Checker implements ports.Toolchain by probing tools through the Runner.
type Checker struct {
	runner         ports.Runner
	logger         ports.Logger
	packageManager []string
}

// NewChecker creates a Checker. packageManager is the split package manager command.
func NewChecker(runner ports.Runner, logger ports.Logger, packageManager []string) *Checker {
	return &Checker{
		runner:         runner,
		logger:         logger,
		packageManager: packageManager,
	}
}

// CheckConverter verifies that Rscript and the shinylive R package are available
// for r-shinylive apps. py-shinylive has no converter and fails with
// domain.ErrNotImplemented. Other application types need no conversion tool.
func (c *Checker) CheckConverter(ctx context.Context, appType domain.AppType) error {
	switch appType {
	case domain.AppTypeRShinylive:
	case domain.AppTypePyShinylive:
		return zerr.With(domain.ErrNotImplemented, "app_type", string(appType))
	default:
		return nil
	}

	script := `if (!requireNamespace("` + ShinylivePackage + `", quietly = TRUE)) quit(status = 3)`
	res, err := c.runner.Run(ctx, ports.Command{
		Name: RscriptTool,
		Args: []string{"-e", script},
	})
	if err != nil {
		return err
	}

	switch {
	case res.Success():
		c.logger.Debug("found R package " + ShinylivePackage)
		return nil
	case res.ExitCode == missingPackageStatus:
		missing := zerr.With(domain.ErrToolPackageMissing, "package", ShinylivePackage)
		return zerr.With(missing, "hint", `install.packages("shinylive")`)
	default:
		return subprocessError(RscriptTool, res)
	}
}

// CheckPackager verifies that the package manager runs.
func (c *Checker) CheckPackager(ctx context.Context) error {
	if len(c.packageManager) == 0 {
		return domain.ErrInvalidPackageManager
	}

	res, err := c.runner.Run(ctx, ports.Command{
		Name: c.packageManager[0],
		Args: append(c.packageManager[1:len(c.packageManager):len(c.packageManager)], "--version"),
	})
	if err != nil {
		return err
	}
	if !res.Success() {
		return subprocessError(c.packageManager[0], res)
	}

	c.logger.Debug(c.packageManager[0] + " " + strings.TrimSpace(res.Stdout))
	return nil
}

func subprocessError(tool string, res *ports.Result) error {
	err := zerr.With(domain.ErrSubprocessFailed, "tool", tool)
	err = zerr.With(err, "exit_code", res.ExitCode)
	return zerr.With(err, "stderr", res.StderrTail(ports.StderrTailLines))
}
