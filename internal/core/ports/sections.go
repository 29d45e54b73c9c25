package ports

import "context"

// Classmap resolves the symbolic names a document author wrote into the
// canonical identifiers used for graph identity. Implementations must be
// pure and total; unmapped names fall back to themselves.
//
//go:generate mockgen -source=sections.go -destination=mocks/mock_sections.go -package=mocks
type Classmap interface {
	// ResolveVertex maps a raw vertex name to its canonical identifier.
	ResolveVertex(raw string) string

	// ResolveEdge maps a raw edge label to its canonical label.
	ResolveEdge(raw string) string
}

// VertexProperties writes the properties declared for a vertex onto its
// handle. Property declarations are keyed by the raw name the author wrote,
// never the resolved identifier.
type VertexProperties interface {
	// Apply writes zero or more properties onto v. It must be a no-op when
	// no properties are declared for rawName.
	Apply(ctx context.Context, rawName string, v Vertex) error
}

// EdgeProperties is the edge counterpart of VertexProperties, keyed by the
// raw edge label.
type EdgeProperties interface {
	// Apply writes zero or more properties onto e. It must be a no-op when
	// no properties are declared for rawLabel.
	Apply(ctx context.Context, rawLabel string, e Edge) error
}
