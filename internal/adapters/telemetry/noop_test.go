package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/telemetry"
)

func TestNoOpTracer_Start(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "doc.yaml")
	assert.NotNil(t, newCtx)
	require.NotNil(t, span)

	n, err := span.Write([]byte("3 vertices created\n"))
	require.NoError(t, err)
	assert.Equal(t, 19, n)

	span.Cached()
	span.End(nil)
	span.End(errors.New("still a no-op"))

	require.NoError(t, tracer.Close())
}
