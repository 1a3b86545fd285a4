package ports

import (
	"context"
	"io"

	"go.trai.ch/shinyelectron/internal/core/domain"
)

// ConvertRequest is the input of the conversion stage.
type ConvertRequest struct {
	RunID     string
	SourceDir string
	OutputDir string
	AppType   domain.AppType
	// Output receives tool output. Nil means the runner's default.
	Output io.Writer
}

// BuildRequest is the input of the build stage.
type BuildRequest struct {
	AppDir     string
	ProjectDir string
	AppName    string
	AppType    domain.AppType
	Platforms  []domain.Platform
	Archs      []domain.Arch
	Icon       string
	Strict     bool
	// Output receives tool output. Nil means the runner's default.
	Output io.Writer
}

// LaunchRequest is the input of the run stage.
type LaunchRequest struct {
	ProjectDir string
	Port       int
	DevTools   bool
}

// Converter turns a source project into a directory the packager can ship.
//
//go:generate mockgen -source=stages.go -destination=mocks/mock_stages.go -package=mocks
type Converter interface {
	Convert(ctx context.Context, req ConvertRequest) (domain.StageResult, error)
}

// Builder assembles and packages the electron project.
type Builder interface {
	Build(ctx context.Context, req BuildRequest) (*domain.BuildResult, error)
}

// Launcher starts the packaged shell in development mode.
type Launcher interface {
	Launch(ctx context.Context, req LaunchRequest) error
}
