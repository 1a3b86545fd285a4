package pipeline

import (
	"context"
	"io"
	"os"
	"strconv"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Launcher = (*Launcher)(nil)

// Launcher starts the electron project's development shell.
type Launcher struct {
	runner         ports.Runner
	logger         ports.Logger
	packageManager []string
	interactive    bool
	stdout         io.Writer
	stderr         io.Writer
}

// NewLauncher creates a Launcher that streams to os.Stdout and os.Stderr.
// interactive attaches the shell to a pseudo-terminal.
func NewLauncher(runner ports.Runner, logger ports.Logger, packageManager []string, interactive bool) *Launcher {
	return &Launcher{
		runner:         runner,
		logger:         logger,
		packageManager: packageManager,
		interactive:    interactive,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}
}

// WithOutput redirects the shell output.
func (l *Launcher) WithOutput(stdout, stderr io.Writer) *Launcher {
	l.stdout, l.stderr = stdout, stderr
	return l
}

// Launch runs the electron script and blocks until the shell exits.
// Cancelling ctx stops the shell and is not an error.
func (l *Launcher) Launch(ctx context.Context, req ports.LaunchRequest) error {
	if len(l.packageManager) == 0 {
		return domain.ErrInvalidPackageManager
	}
	if err := domain.ValidatePort(req.Port); err != nil {
		return err
	}

	manifest, err := domain.ReadManifest(req.ProjectDir)
	if err != nil {
		return err
	}
	if !manifest.HasScript(domain.LaunchScript) {
		return zerr.With(domain.ErrLaunchScriptMissing, "path", req.ProjectDir)
	}

	cmd := packageManagerCommand(l.packageManager, req.ProjectDir, "run", domain.LaunchScript)
	cmd.Env = map[string]string{
		EnvDevPort:  strconv.Itoa(req.Port),
		EnvDevTools: strconv.FormatBool(req.DevTools),
	}
	cmd.Stdout, cmd.Stderr = l.stdout, l.stderr
	cmd.Interactive = l.interactive

	l.logger.Info("launching " + manifest.Name + " on port " + strconv.Itoa(req.Port))
	res, err := l.runner.Run(ctx, cmd)
	if ctx.Err() != nil {
		l.logger.Info("electron app stopped")
		return nil
	}
	if err != nil {
		return err
	}
	if !res.Success() {
		launchErr := zerr.With(domain.ErrLaunchFailed, "exit_code", res.ExitCode)
		return zerr.With(launchErr, "stderr", res.StderrTail(ports.StderrTailLines))
	}
	return nil
}
