package toolchain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/adapters/toolchain"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/shinyelectron/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T, pm ...string) (*toolchain.Checker, *mocks.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return toolchain.NewChecker(runner, log, pm), runner
}

func TestCheckConverter(t *testing.T) {
	tests := []struct {
		name    string
		result  *ports.Result
		runErr  error
		wantErr string
	}{
		{name: "installed", result: &ports.Result{}},
		{name: "package missing", result: &ports.Result{ExitCode: 3}, wantErr: domain.ErrToolPackageMissing.Error()},
		{name: "R fails", result: &ports.Result{ExitCode: 1, Stderr: "boom"}, wantErr: domain.ErrSubprocessFailed.Error()},
		{
			name:    "Rscript missing",
			runErr:  zerr.With(zerr.Wrap(zerr.New("not found"), domain.ErrToolNotFound.Error()), "tool", "Rscript"),
			wantErr: domain.ErrToolNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, runner := setup(t, "npm")
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c ports.Command) (*ports.Result, error) {
					assert.Equal(t, toolchain.RscriptTool, c.Name)
					require.Len(t, c.Args, 2)
					assert.Equal(t, "-e", c.Args[0])
					assert.Contains(t, c.Args[1], `requireNamespace("shinylive"`)
					return tt.result, tt.runErr
				})

			err := checker.CheckConverter(context.Background(), domain.AppTypeRShinylive)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckConverter_NoToolNeeded(t *testing.T) {
	checker, _ := setup(t, "npm")
	for _, at := range []domain.AppType{domain.AppTypeRShiny, domain.AppTypePyShiny} {
		require.NoError(t, checker.CheckConverter(context.Background(), at))
	}
}

func TestCheckConverter_PyShinyliveNotImplemented(t *testing.T) {
	checker, _ := setup(t, "npm")

	err := checker.CheckConverter(context.Background(), domain.AppTypePyShinylive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNotImplemented.Error())
}

func TestCheckPackager(t *testing.T) {
	checker, runner := setup(t, "pnpm", "--silent")
	runner.EXPECT().Run(gomock.Any(), ports.Command{Name: "pnpm", Args: []string{"--silent", "--version"}}).
		Return(&ports.Result{Stdout: "9.1.0\n"}, nil)

	require.NoError(t, checker.CheckPackager(context.Background()))
}

func TestCheckPackager_Failure(t *testing.T) {
	checker, runner := setup(t, "npm")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&ports.Result{ExitCode: 127, Stderr: "bad"}, nil)

	err := checker.CheckPackager(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSubprocessFailed.Error())
}

func TestCheckPackager_Empty(t *testing.T) {
	checker, _ := setup(t)
	err := checker.CheckPackager(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidPackageManager.Error())
}
