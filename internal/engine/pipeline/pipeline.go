// Package pipeline implements the conversion, build and run stages of an export.
package pipeline

import (
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EnvDevPort carries the development server port into the electron shell.
	EnvDevPort = "SHINYELECTRON_DEV_PORT"
	// EnvDevTools enables the developer tools in the electron shell.
	EnvDevTools = "SHINYELECTRON_DEVTOOLS"
	// EnvRRuntime points r-shiny build scripts at the cached R runtime for the target.
	EnvRRuntime = "SHINYELECTRON_R_RUNTIME"
	// EnvNpmCache redirects the npm download cache into the shinyelectron cache.
	EnvNpmCache = "npm_config_cache"
)

// packageManagerCommand builds a command from the split package manager and args.
func packageManagerCommand(pm []string, dir string, args ...string) ports.Command {
	full := make([]string, 0, len(pm)-1+len(args))
	full = append(full, pm[1:]...)
	full = append(full, args...)
	return ports.Command{Name: pm[0], Args: full, Dir: dir}
}

// subprocessError reports a non-zero exit with the exit code and the tail of stderr.
func subprocessError(tool string, res *ports.Result) error {
	err := zerr.With(domain.ErrSubprocessFailed, "tool", tool)
	err = zerr.With(err, "exit_code", res.ExitCode)
	return zerr.With(err, "stderr", res.StderrTail(ports.StderrTailLines))
}

// failed returns the StageResult of a stage that stopped with err.
func failed(stage domain.Stage, outputDir string, err error) domain.StageResult {
	return domain.StageResult{Stage: stage, OutputDir: outputDir, Success: false, Message: err.Error()}
}
