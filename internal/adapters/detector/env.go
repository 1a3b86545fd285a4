// Package detector inspects the process environment to choose how subprocesses are attached.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is a terminal and no CI environment is detected.
// The development shell runs inside a pseudo-terminal only when this holds.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && !IsCI()
}

// IsCI reports whether the CI environment variable is set to true or 1.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Resolve applies a user override to auto-detection.
// mode is one of "auto" (or empty), "pty" or "pipe".
func Resolve(autoDetected bool, mode string) bool {
	switch mode {
	case "pty":
		return true
	case "pipe":
		return false
	default:
		return autoDetected
	}
}
