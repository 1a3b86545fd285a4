package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/shinyelectron/internal/adapters/telemetry"
	"go.trai.ch/shinyelectron/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_ReportsStartAndEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(renderer)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	var startedID string
	gomock.InOrder(
		renderer.EXPECT().OnStageStart(gomock.Any(), "", "convert", gomock.Any()).
			Do(func(spanID, _, _ string, _ any) { startedID = spanID }),
		renderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), nil).
			Do(func(spanID string, _ any, _ error) { assert.Equal(t, startedID, spanID) }),
	)

	_, span := tp.Tracer("test").Start(context.Background(), "convert")
	span.End()
}

func TestBridge_ReportsParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(renderer)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	renderer.EXPECT().OnStageStart(gomock.Any(), "", "export", gomock.Any())
	renderer.EXPECT().OnStageStart(gomock.Any(), gomock.Not(""), "build", gomock.Any())
	renderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), nil).Times(2)

	ctx, parent := tp.Tracer("test").Start(context.Background(), "export")
	_, child := tp.Tracer("test").Start(ctx, "build")
	child.End()
	parent.End()
}

func TestBridge_ReportsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(renderer)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	renderer.EXPECT().OnStageStart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	renderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ any, err error) {
			require.Error(t, err)
			assert.Equal(t, "npm install failed", err.Error())
		})

	_, span := tp.Tracer("test").Start(context.Background(), "build")
	span.SetStatus(codes.Error, "npm install failed")
	span.End()
}

func TestBridge_NilRenderer(_ *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "convert")
	span.End()
}
