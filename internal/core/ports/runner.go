// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
	"strings"
)

// StderrTailLines is the number of stderr lines attached to subprocess errors.
const StderrTailLines = 20

// Command describes a single external tool invocation.
type Command struct {
	// Name is the executable name, resolved against PATH.
	Name string
	// Args are passed to the executable verbatim.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds overrides applied on top of the process environment for this call only.
	Env map[string]string
	// Stdout and Stderr receive output as it is produced, in addition to being captured.
	Stdout io.Writer
	Stderr io.Writer
	// Interactive runs the command inside a pseudo-terminal when the platform supports it.
	Interactive bool
}

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// StderrTail returns at most the last n lines of Stderr.
func (r *Result) StderrTail(n int) string {
	if r == nil || n <= 0 {
		return ""
	}
	s := strings.TrimRight(r.Stderr, "\r\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Runner executes external tools.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run blocks until the command exits. A non-zero exit status is reported in
	// the Result, not as an error. Errors are returned only when the command
	// could not be started or the context was cancelled.
	Run(ctx context.Context, cmd Command) (*Result, error)
}
