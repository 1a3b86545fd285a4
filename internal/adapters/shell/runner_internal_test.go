package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		sysEnv    []string
		overrides map[string]string
		expected  []string
	}{
		{
			name:     "system only",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			expected: []string{"PATH=/bin", "USER=test"},
		},
		{
			name:      "override wins",
			sysEnv:    []string{"USER=test", "PATH=/bin"},
			overrides: map[string]string{"USER": "shiny", "SHINYELECTRON_DEV_PORT": "3000"},
			expected:  []string{"PATH=/bin", "SHINYELECTRON_DEV_PORT=3000", "USER=shiny"},
		},
		{
			name:     "value containing equals",
			sysEnv:   []string{"OPTS=a=b"},
			expected: []string{"OPTS=a=b"},
		},
		{
			name:     "malformed entries dropped",
			sysEnv:   []string{"NOEQUALS", "=hidden", "A=1"},
			expected: []string{"A=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.overrides))
		})
	}
}

func TestExecutableName(t *testing.T) {
	assert.Equal(t, "npm.cmd", executableName("npm", "windows"))
	assert.Equal(t, "pnpm.cmd", executableName("pnpm", "windows"))
	assert.Equal(t, "npm.exe", executableName("npm.exe", "windows"))
	assert.Equal(t, "Rscript", executableName("Rscript", "windows"))
	assert.Equal(t, "npm", executableName("npm", "linux"))
	assert.Equal(t, "npm", executableName("npm", "darwin"))
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	//nolint:gosec // test requires an executable file
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700))
	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(plain, nil, 0o600))

	got, err := lookPath("tool", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("plain", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("tool", []string{"HOME=/tmp"})
	require.Error(t, err)
}

func TestLogWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Debug("first"),
		log.EXPECT().Debug("second"),
		log.EXPECT().Debug("partial"),
	)

	w := &logWriter{logger: log}
	_, _ = w.Write([]byte("fir"))
	_, _ = w.Write([]byte("st\r\nsecond\n\npar"))
	_, _ = w.Write([]byte("tial"))
	require.NoError(t, w.Close())
}
