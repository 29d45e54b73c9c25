// Package domain contains the core domain model for declarative graph documents.
package domain

import "time"

// GraphSection maps a source vertex name to the edges declared under it.
// It is built once from the parsed document and never mutated afterwards.
// A nil GraphSection means the section was absent from the document, which
// is a configuration error, not an empty graph.
type GraphSection map[string]EdgeMap

// EdgeMap maps an edge label to the target(s) declared for it.
type EdgeMap map[string]TargetSpec

// Document is one parsed graph document: the five sections plus provenance.
type Document struct {
	// Source identifies where the document came from (path or URL).
	Source string
	// Digest is the xxhash64 of the raw document bytes, hex encoded.
	Digest string

	Header   map[string]any
	Classmap map[string]string
	Vertices map[string]map[string]any
	Edges    map[string]map[string]any
	Graph    GraphSection
}

// LoadRecord is one load journal entry for an applied document.
type LoadRecord struct {
	Source   string    `json:"source"`
	Digest   string    `json:"digest"`
	LoadedAt time.Time `json:"loaded_at"`
	Vertices int       `json:"vertices"`
	Edges    int       `json:"edges"`
}

// InjectStats reports what one injection run did to the target graph.
type InjectStats struct {
	// VerticesCreated counts vertices added to the target graph.
	VerticesCreated int
	// VerticesReused counts vertex resolutions satisfied by the target
	// graph or the run's vertex cache instead of a creation.
	VerticesReused int
	// EdgesCreated counts edges added to the target graph. Edges are never
	// deduplicated, so repeated declarations count every time.
	EdgesCreated int
}

// Add accumulates the counters of another run, used when applying several
// documents in sequence against one target.
func (s *InjectStats) Add(o InjectStats) {
	s.VerticesCreated += o.VerticesCreated
	s.VerticesReused += o.VerticesReused
	s.EdgesCreated += o.EdgesCreated
}
