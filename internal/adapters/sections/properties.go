package sections

import (
	"context"
	"maps"
	"slices"

	"go.grampus.dev/grampus/internal/core/ports"
)

var (
	_ ports.VertexProperties = (*Vertices)(nil)
	_ ports.EdgeProperties   = (*Edges)(nil)
)

// Vertices holds the per-vertex property declarations of a document,
// keyed by the raw vertex name the author wrote.
type Vertices struct {
	props map[string]map[string]any
}

// NewVertices creates a Vertices section. A nil map is valid and applies
// nothing.
func NewVertices(props map[string]map[string]any) *Vertices {
	return &Vertices{props: props}
}

// Apply writes the properties declared for rawName onto v. It is a no-op
// when the section declares nothing for that name.
func (s *Vertices) Apply(ctx context.Context, rawName string, v ports.Vertex) error {
	for _, key := range slices.Sorted(maps.Keys(s.props[rawName])) {
		if err := v.SetProperty(ctx, key, s.props[rawName][key]); err != nil {
			return err
		}
	}
	return nil
}

// Edges holds the per-label property declarations of a document, keyed by
// the raw edge label.
type Edges struct {
	props map[string]map[string]any
}

// NewEdges creates an Edges section. A nil map is valid and applies nothing.
func NewEdges(props map[string]map[string]any) *Edges {
	return &Edges{props: props}
}

// Apply writes the properties declared for rawLabel onto e. It is a no-op
// when the section declares nothing for that label.
func (s *Edges) Apply(ctx context.Context, rawLabel string, e ports.Edge) error {
	for _, key := range slices.Sorted(maps.Keys(s.props[rawLabel])) {
		if err := e.SetProperty(ctx, key, s.props[rawLabel][key]); err != nil {
			return err
		}
	}
	return nil
}
