// Package target selects the graph store documents are injected into.
package target

import (
	"context"

	"go.grampus.dev/grampus/internal/adapters/memgraph"
	"go.grampus.dev/grampus/internal/adapters/sqlitegraph"
	"go.grampus.dev/grampus/internal/core/ports"
)

var _ ports.TargetFactory = (*Factory)(nil)

// Factory implements ports.TargetFactory: an empty path yields a fresh
// in-memory graph; anything else opens a SQLite store at that path.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns the target for path.
func (f *Factory) Open(_ context.Context, path string) (ports.Target, error) {
	if path == "" {
		return memgraph.New(), nil
	}
	return sqlitegraph.Open(path)
}
