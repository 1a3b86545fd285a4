// Package opener reveals files and directories with the host's default handler.
package opener

import (
	"os"

	"github.com/pkg/browser"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Opener = (*Opener)(nil)

// Opener implements ports.Opener on top of pkg/browser.
type Opener struct {
	openFile func(path string) error
}

// New returns an Opener that uses the system file browser.
func New() *Opener {
	return &Opener{openFile: browser.OpenFile}
}

// NewWithFunc returns an Opener that delegates to fn.
func NewWithFunc(fn func(path string) error) *Opener {
	return &Opener{openFile: fn}
}

// Open reveals path. The path must exist.
func (o *Opener) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return zerr.With(zerr.Wrap(err, "cannot open path"), "path", path)
	}
	if err := o.openFile(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open path in file browser"), "path", path)
	}
	return nil
}
