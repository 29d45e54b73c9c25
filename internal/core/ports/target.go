package ports

import "context"

// Target is a graph store a document can be injected into, plus the
// bookkeeping the CLI summary needs.
//
//go:generate mockgen -source=target.go -destination=mocks/mock_target.go -package=mocks
type Target interface {
	Graph

	// Counts reports the current number of vertices and edges in the store.
	Counts(ctx context.Context) (vertices, edges int, err error)

	// Close releases the store. It must be safe to call on stores that hold
	// no external resources.
	Close() error
}

// TargetFactory opens the graph store the documents are injected into.
type TargetFactory interface {
	// Open returns the target at path. An empty path selects an in-memory
	// store scoped to the process.
	Open(ctx context.Context, path string) (Target, error)
}
