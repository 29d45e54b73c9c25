package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	recorder := progrock.New()

	_, span := recorder.Start(context.Background(), "shop.yaml")
	require.NotNil(t, span)

	_, err := span.Write([]byte("3 vertices created, 0 reused, 2 edges created\n"))
	require.NoError(t, err)

	span.End(nil)
	require.NoError(t, recorder.Close())
}
