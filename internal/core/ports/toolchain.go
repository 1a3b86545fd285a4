package ports

import (
	"context"

	"go.trai.ch/shinyelectron/internal/core/domain"
)

// Toolchain verifies that the external tools an export needs are installed.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// CheckConverter verifies the conversion tool for the given application type.
	CheckConverter(ctx context.Context, appType domain.AppType) error
	// CheckPackager verifies the package manager used by the build and run stages.
	CheckPackager(ctx context.Context) error
}
