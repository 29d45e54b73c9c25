package target_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/memgraph"
	"go.grampus.dev/grampus/internal/adapters/target"
)

func TestFactory_EmptyPathIsInMemory(t *testing.T) {
	tgt, err := target.NewFactory().Open(context.Background(), "")
	require.NoError(t, err)
	defer tgt.Close() //nolint:errcheck // Best effort close in test

	assert.IsType(t, &memgraph.Graph{}, tgt)
}

func TestFactory_PathOpensSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")
	tgt, err := target.NewFactory().Open(context.Background(), path)
	require.NoError(t, err)
	defer tgt.Close() //nolint:errcheck // Best effort close in test

	assert.NotNil(t, tgt)

	vertices, edges, err := tgt.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, vertices)
	assert.Zero(t, edges)
}
