package memgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/memgraph"
)

func TestGraph_VertexByIDAbsent(t *testing.T) {
	g := memgraph.New()
	v, err := g.VertexByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGraph_AddVertexIsIdempotentOnID(t *testing.T) {
	g := memgraph.New()
	ctx := context.Background()

	first, err := g.AddVertex(ctx, "app")
	require.NoError(t, err)
	second, err := g.AddVertex(ctx, "app")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_DuplicateEdgesStayDistinct(t *testing.T) {
	g := memgraph.New()
	ctx := context.Background()

	src, err := g.AddVertex(ctx, "src")
	require.NoError(t, err)
	dst, err := g.AddVertex(ctx, "dst")
	require.NoError(t, err)

	_, err = src.AddEdge(ctx, "uses", dst)
	require.NoError(t, err)
	_, err = src.AddEdge(ctx, "uses", dst)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.EdgesBetween("src", "dst"), 2)
}

func TestGraph_Properties(t *testing.T) {
	g := memgraph.New()
	ctx := context.Background()

	v, err := g.AddVertex(ctx, "app")
	require.NoError(t, err)
	require.NoError(t, v.SetProperty(ctx, "tier", "frontend"))

	got, ok := v.(*memgraph.Vertex).Property("tier")
	require.True(t, ok)
	assert.Equal(t, "frontend", got)

	dst, err := g.AddVertex(ctx, "db")
	require.NoError(t, err)
	e, err := v.AddEdge(ctx, "uses", dst)
	require.NoError(t, err)
	require.NoError(t, e.SetProperty(ctx, "weight", 3))

	weight, ok := e.(*memgraph.Edge).Property("weight")
	require.True(t, ok)
	assert.Equal(t, 3, weight)
	assert.Equal(t, "uses", e.Label())
}

func TestGraph_Counts(t *testing.T) {
	g := memgraph.New()
	ctx := context.Background()

	a, err := g.AddVertex(ctx, "a")
	require.NoError(t, err)
	b, err := g.AddVertex(ctx, "b")
	require.NoError(t, err)
	_, err = a.AddEdge(ctx, "e", b)
	require.NoError(t, err)

	vertices, edges, err := g.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, vertices)
	assert.Equal(t, 1, edges)

	require.NoError(t, g.Close())
}
