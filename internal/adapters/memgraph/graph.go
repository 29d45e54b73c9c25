// Package memgraph implements an in-memory property graph target.
package memgraph

import (
	"context"
	"sync"

	"go.grampus.dev/grampus/internal/core/ports"
)

var _ ports.Target = (*Graph)(nil)

// Graph is an in-memory property graph. Vertices are keyed by resolved id;
// edges are kept as an append-only list so duplicate (source, label,
// target) triples stay distinct.
type Graph struct {
	mu       sync.RWMutex
	vertices map[string]*Vertex
	edges    []*Edge
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
	}
}

// VertexByID returns the vertex with the given id, or nil, nil when absent.
func (g *Graph) VertexByID(_ context.Context, id string) (ports.Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// AddVertex creates a vertex with the given id. Adding an id that already
// exists returns the existing vertex, mirroring stores where vertex
// creation is idempotent on identity.
func (g *Graph) AddVertex(_ context.Context, id string) (ports.Vertex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.vertices[id]; ok {
		return v, nil
	}
	v := &Vertex{
		graph: g,
		id:    id,
		props: make(map[string]any),
	}
	g.vertices[id] = v
	return v, nil
}

// Counts reports the number of vertices and edges held.
func (g *Graph) Counts(_ context.Context) (int, int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices), len(g.edges), nil
}

// Close is a no-op; the graph holds no external resources.
func (g *Graph) Close() error { return nil }

// VertexCount returns the number of vertices. Test helper.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns the number of edges. Test helper.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// EdgesBetween returns every edge from source to target, duplicates
// included, in insertion order. Test helper.
func (g *Graph) EdgesBetween(source, target string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for _, e := range g.edges {
		if e.from == source && e.to == target {
			out = append(out, e)
		}
	}
	return out
}

// Vertex is a vertex held by an in-memory Graph.
type Vertex struct {
	graph *Graph
	id    string
	props map[string]any
}

// ID returns the vertex identifier.
func (v *Vertex) ID() string { return v.id }

// AddEdge appends a new edge from this vertex to target.
func (v *Vertex) AddEdge(_ context.Context, label string, target ports.Vertex) (ports.Edge, error) {
	v.graph.mu.Lock()
	defer v.graph.mu.Unlock()

	e := &Edge{
		label: label,
		from:  v.id,
		to:    target.ID(),
		props: make(map[string]any),
	}
	v.graph.edges = append(v.graph.edges, e)
	return e, nil
}

// SetProperty writes a property onto the vertex.
func (v *Vertex) SetProperty(_ context.Context, key string, value any) error {
	v.graph.mu.Lock()
	defer v.graph.mu.Unlock()
	v.props[key] = value
	return nil
}

// Property returns a vertex property. Test helper.
func (v *Vertex) Property(key string) (any, bool) {
	v.graph.mu.RLock()
	defer v.graph.mu.RUnlock()
	val, ok := v.props[key]
	return val, ok
}

// Edge is an edge held by an in-memory Graph.
type Edge struct {
	label string
	from  string
	to    string
	props map[string]any
}

// Label returns the resolved label the edge was created with.
func (e *Edge) Label() string { return e.label }

// SetProperty writes a property onto the edge.
func (e *Edge) SetProperty(_ context.Context, key string, value any) error {
	e.props[key] = value
	return nil
}

// Property returns an edge property. Test helper.
func (e *Edge) Property(key string) (any, bool) {
	val, ok := e.props[key]
	return val, ok
}
