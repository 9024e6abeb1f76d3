package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/telemetry"
)

func TestNoOpTracer_Start(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span")
	assert.NotNil(t, newCtx)
	assert.NotNil(t, span)

	span.End()
}

func TestNoOpSpan_Operations(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()

	_, span := tracer.Start(context.Background(), "test-span")
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.RecordError(nil)
	span.End()
	span.End()
}
