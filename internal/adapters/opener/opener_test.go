package opener_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/adapters/opener"
)

func TestOpener_Open(t *testing.T) {
	dir := t.TempDir()
	var opened string
	o := opener.NewWithFunc(func(path string) error {
		opened = path
		return nil
	})

	require.NoError(t, o.Open(dir))
	assert.Equal(t, dir, opened)
}

func TestOpener_MissingPath(t *testing.T) {
	called := false
	o := opener.NewWithFunc(func(string) error {
		called = true
		return nil
	})

	err := o.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.False(t, called)
}

func TestOpener_HandlerError(t *testing.T) {
	o := opener.NewWithFunc(func(string) error { return errors.New("xdg-open not found") })

	err := o.Open(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xdg-open not found")
}
