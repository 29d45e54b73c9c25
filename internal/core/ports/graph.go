// Package ports defines the core interfaces for the application.
package ports

import "context"

// Graph is the capability the injector consumes from a backing graph store.
// The store remains the source of truth for vertex identity; the injector
// never deletes or queries edges.
//
//go:generate mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type Graph interface {
	// VertexByID returns the vertex with the given resolved id.
	// Returns nil, nil if no such vertex exists.
	VertexByID(ctx context.Context, id string) (Vertex, error)

	// AddVertex creates a vertex with the given resolved id and returns its handle.
	AddVertex(ctx context.Context, id string) (Vertex, error)
}

// Vertex is a transient handle to a vertex owned by the backing graph store.
type Vertex interface {
	// ID returns the resolved identifier the vertex was created with.
	ID() string

	// AddEdge creates a new edge from this vertex to target with the given
	// resolved label. Duplicate (source, label, target) triples produce
	// distinct edges.
	AddEdge(ctx context.Context, label string, target Vertex) (Edge, error)

	// SetProperty writes a key/value property onto the vertex.
	SetProperty(ctx context.Context, key string, value any) error
}

// Edge is a transient handle to an edge owned by the backing graph store.
type Edge interface {
	// Label returns the resolved label the edge was created with.
	Label() string

	// SetProperty writes a key/value property onto the edge.
	SetProperty(ctx context.Context, key string, value any) error
}
