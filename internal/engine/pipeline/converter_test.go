package pipeline_test

import (
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

type converterFixture struct {
	converter *pipeline.Converter
	runner    *mocks.MockRunner
	fs        *mocks.MockFileSystem
	tempDir   string
}

func newConverterFixture(t *testing.T) *converterFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	fsys := mocks.NewMockFileSystem(ctrl)
	tempDir := t.TempDir()
	return &converterFixture{
		converter: pipeline.NewConverter(runner, fsys, quietLogger(ctrl), tempDir),
		runner:    runner,
		fs:        fsys,
		tempDir:   tempDir,
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestConverter_CopiesServerApps(t *testing.T) {
	for _, appType := range []domain.AppType{domain.AppTypeRShiny, domain.AppTypePyShiny} {
		t.Run(string(appType), func(t *testing.T) {
			f := newConverterFixture(t)
			f.fs.EXPECT().CopyTree("/src", "/dst/shiny-app").Return(nil)

			res, err := f.converter.Convert(context.Background(), ports.ConvertRequest{
				RunID:     "run-1",
				SourceDir: "/src",
				OutputDir: "/dst/shiny-app",
				AppType:   appType,
			})
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, domain.StageConvert, res.Stage)
			assert.Equal(t, "/dst/shiny-app", res.OutputDir)
		})
	}
}

func TestConverter_PyShinyliveNotImplemented(t *testing.T) {
	f := newConverterFixture(t)

	res, err := f.converter.Convert(context.Background(), ports.ConvertRequest{
		SourceDir: "/src",
		OutputDir: "/dst/shinylive-app",
		AppType:   domain.AppTypePyShinylive,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNotImplemented.Error())
	assert.False(t, res.Success)
}

func TestConverter_Shinylive(t *testing.T) {
	tests := []struct {
		name     string
		produce  []string
		exitCode int
		wantErr  string
	}{
		{name: "success", produce: []string{"index.html", "shinylive/"}},
		{name: "missing entry", produce: []string{"shinylive/"}, wantErr: domain.ErrConversionOutput.Error()},
		{name: "missing assets", produce: []string{"index.html"}, wantErr: domain.ErrConversionOutput.Error()},
		{name: "export fails", exitCode: 1, wantErr: domain.ErrSubprocessFailed.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConverterFixture(t)
			src := t.TempDir()
			out := filepath.Join(t.TempDir(), "shinylive-app")
			workDir := filepath.Join(f.tempDir, "shinyelectron-run-42")

			f.fs.EXPECT().CopyTree(src, workDir).DoAndReturn(func(_, dst string) error {
				assert.DirExists(t, dst)
				return nil
			})
			f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c ports.Command) (*ports.Result, error) {
					assert.Equal(t, "Rscript", c.Name)
					require.Len(t, c.Args, 2)
					assert.Contains(t, c.Args[1], "shinylive::export(")
					assert.Contains(t, c.Args[1], filepath.ToSlash(workDir))
					assert.Contains(t, c.Args[1], filepath.ToSlash(out))

					for _, p := range tt.produce {
						path := filepath.Join(out, filepath.FromSlash(p))
						if p[len(p)-1] == '/' {
							require.NoError(t, os.MkdirAll(path, domain.DirPerm))
							continue
						}
						require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
						require.NoError(t, os.WriteFile(path, []byte("<html></html>"), domain.FilePerm))
					}
					return &ports.Result{ExitCode: tt.exitCode, Stderr: "Error in export"}, nil
				})

			res, err := f.converter.Convert(context.Background(), ports.ConvertRequest{
				RunID:     "run-42",
				SourceDir: src,
				OutputDir: out,
				AppType:   domain.AppTypeRShinylive,
			})

			assert.NoDirExists(t, workDir, "working copy must be removed")
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.True(t, res.Success)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.False(t, res.Success)
			assert.Contains(t, res.Message, tt.wantErr)
		})
	}
}

func TestConverter_ShinyliveCopyFailureCleansUp(t *testing.T) {
	f := newConverterFixture(t)
	workDir := filepath.Join(f.tempDir, "shinyelectron-run-7")

	f.fs.EXPECT().CopyTree(gomock.Any(), workDir).Return(assert.AnError)

	_, err := f.converter.Convert(context.Background(), ports.ConvertRequest{
		RunID:     "run-7",
		SourceDir: t.TempDir(),
		OutputDir: filepath.Join(t.TempDir(), "out"),
		AppType:   domain.AppTypeRShinylive,
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.NoDirExists(t, workDir)
}
