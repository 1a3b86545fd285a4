package pipeline_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/shinyelectron/internal/core/ports/mocks"
	"go.trai.ch/shinyelectron/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), domain.FilePerm))
}

func newLauncher(t *testing.T, interactive bool) (*pipeline.Launcher, *mocks.MockRunner, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	var out bytes.Buffer
	l := pipeline.NewLauncher(runner, quietLogger(ctrl), []string{"npm"}, interactive).WithOutput(&out, &out)
	return l, runner, &out
}

func TestLauncher_Launch(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name":"demo","scripts":{"electron":"electron ."}}`)

	l, runner, out := newLauncher(t, true)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c ports.Command) (*ports.Result, error) {
			assert.Equal(t, "npm", c.Name)
			assert.Equal(t, []string{"run", "electron"}, c.Args)
			assert.Equal(t, dir, c.Dir)
			assert.True(t, c.Interactive)
			assert.Equal(t, map[string]string{
				pipeline.EnvDevPort:  "8080",
				pipeline.EnvDevTools: "true",
			}, c.Env)
			_, _ = c.Stdout.Write([]byte("electron started\n"))
			return &ports.Result{}, nil
		})

	err := l.Launch(context.Background(), ports.LaunchRequest{ProjectDir: dir, Port: 8080, DevTools: true})
	require.NoError(t, err)
	assert.Equal(t, "electron started\n", out.String())

	_, set := os.LookupEnv(pipeline.EnvDevPort)
	assert.False(t, set, "launch must not modify the process environment")
}

func TestLauncher_Errors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		port     int
		wantErr  string
	}{
		{name: "no manifest", port: 3000, wantErr: domain.ErrManifestNotFound.Error()},
		{name: "invalid manifest", manifest: "{", port: 3000, wantErr: domain.ErrManifestInvalid.Error()},
		{name: "no electron script", manifest: `{"scripts":{"build-win":"x"}}`, port: 3000, wantErr: domain.ErrLaunchScriptMissing.Error()},
		{name: "bad port", manifest: `{"scripts":{"electron":"x"}}`, port: 0, wantErr: domain.ErrInvalidPort.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.manifest != "" {
				writeManifest(t, dir, tt.manifest)
			}
			l, _, _ := newLauncher(t, false)

			err := l.Launch(context.Background(), ports.LaunchRequest{ProjectDir: dir, Port: tt.port})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLauncher_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"scripts":{"electron":"electron ."}}`)

	l, runner, _ := newLauncher(t, false)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&ports.Result{ExitCode: 2, Stderr: "Error: Cannot find module 'electron'"}, nil)

	err := l.Launch(context.Background(), ports.LaunchRequest{ProjectDir: dir, Port: 3000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLaunchFailed.Error())
}

func TestLauncher_InterruptIsClean(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"scripts":{"electron":"electron ."}}`)

	ctx, cancel := context.WithCancel(context.Background())
	l, runner, _ := newLauncher(t, false)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ports.Command) (*ports.Result, error) {
			cancel()
			return &ports.Result{ExitCode: -1}, context.Canceled
		})

	require.NoError(t, l.Launch(ctx, ports.LaunchRequest{ProjectDir: dir, Port: 3000}))
}
