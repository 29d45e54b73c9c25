// Package sections implements the named-value section objects of a graph
// document: header, classmap, and the vertex/edge property tables.
package sections

import "go.grampus.dev/grampus/internal/core/ports"

var _ ports.Classmap = (*Classmap)(nil)

// Classmap resolves symbolic names through the document's classmap section.
// Names without a mapping resolve to themselves, so a document with no
// classmap section at all behaves as identity resolution.
type Classmap struct {
	mapping map[string]string
}

// NewClassmap creates a Classmap over the parsed section. A nil mapping is
// valid and yields identity resolution.
func NewClassmap(mapping map[string]string) *Classmap {
	return &Classmap{mapping: mapping}
}

// ResolveVertex maps a raw vertex name to its canonical identifier.
func (c *Classmap) ResolveVertex(raw string) string {
	return c.resolve(raw)
}

// ResolveEdge maps a raw edge label to its canonical label.
func (c *Classmap) ResolveEdge(raw string) string {
	return c.resolve(raw)
}

func (c *Classmap) resolve(raw string) string {
	if mapped, ok := c.mapping[raw]; ok {
		return mapped
	}
	return raw
}
