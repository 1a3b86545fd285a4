package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for progress output.
// It decouples telemetry collection from presentation so stage spans can be
// printed without the stages knowing how.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// OnPlan is called once with the stages the export will run, in order.
	OnPlan(stages []string)

	// OnStageStart is called when a stage span begins.
	// spanID: unique identifier for this stage execution
	// parentID: spanID of the parent span (empty if root)
	OnStageStart(spanID, parentID, name string, startTime time.Time)

	// OnStageLog is called when a stage emits tool output.
	// data may contain partial lines.
	OnStageLog(spanID string, data []byte)

	// OnStageComplete is called when a stage span ends. err is nil on success.
	OnStageComplete(spanID string, endTime time.Time, err error)

	// SetVerbose streams stage output as it arrives instead of only on failure.
	SetVerbose(verbose bool)
}
