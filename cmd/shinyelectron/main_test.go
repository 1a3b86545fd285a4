package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shinyelectron/internal/app"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func provide(a *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(app.Deps{Logger: mockLogger})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provide(application, mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "shinyelectron version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockStore := mocks.NewMockRecordStore(ctrl)

	dest := filepath.Join(t.TempDir(), "out")
	mockStore.EXPECT().Get(dest).Return(nil, nil)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrRecordNotFound.Error())
	})

	application := app.New(app.Deps{Store: mockStore, Logger: mockLogger})

	exitCode := run(context.Background(), []string{"info", dest}, new(bytes.Buffer), new(bytes.Buffer), provide(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_UsageError verifies that argument errors exit with 1.
func TestRun_UsageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any())

	application := app.New(app.Deps{Logger: mockLogger})

	exitCode := run(context.Background(), []string{"export"}, new(bytes.Buffer), new(bytes.Buffer), provide(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}
