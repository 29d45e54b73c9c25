// Package injector materializes a parsed graph section into a backing
// graph store, reusing vertices the store already has.
package injector

import (
	"context"
	"maps"
	"slices"

	"go.grampus.dev/grampus/internal/core/domain"
	"go.grampus.dev/grampus/internal/core/ports"
	"go.trai.ch/zerr"
)

// vertexCacheSize bounds the per-run vertex cache. Eviction only costs a
// store lookup; correctness never depends on what is cached.
const vertexCacheSize = 128

// Injector walks one graph section and turns it into vertex and edge
// mutations against a target graph. One Injector covers one load of one
// section and is not safe for concurrent use: the vertex cache and the
// query-then-create resolution sequence assume a single injection in
// flight per target.
type Injector struct {
	section  domain.GraphSection
	classmap ports.Classmap
	vprops   ports.VertexProperties
	eprops   ports.EdgeProperties
	cache    *domain.LRU[string, ports.Vertex]
}

// New creates an Injector for the given section and collaborators.
// A nil section is a configuration error: nothing is injected and
// domain.ErrMissingGraphSection is returned.
func New(
	section domain.GraphSection,
	classmap ports.Classmap,
	vprops ports.VertexProperties,
	eprops ports.EdgeProperties,
) (*Injector, error) {
	if section == nil {
		return nil, domain.ErrMissingGraphSection
	}
	return &Injector{
		section:  section,
		classmap: classmap,
		vprops:   vprops,
		eprops:   eprops,
		cache:    domain.NewLRU[string, ports.Vertex](vertexCacheSize),
	}, nil
}

// Validate walks the section without touching a target and reports the
// data error an injection would hit: a map-shaped edge target.
func (in *Injector) Validate() error {
	for _, src := range slices.Sorted(maps.Keys(in.section)) {
		for _, target := range in.section[src] {
			if err := validateTarget(src, target); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateTarget(src string, target domain.TargetSpec) error {
	switch target.Kind() {
	case domain.TargetList:
		for _, elem := range target.Elems() {
			if err := validateTarget(src, elem); err != nil {
				return err
			}
		}
		return nil
	case domain.TargetInvalid:
		return zerr.With(domain.ErrInvalidEdgeTarget, "source_vertex", src)
	default:
		return nil
	}
}

// Inject applies the section to target. Source vertices are visited in
// sorted order purely for deterministic logs; the section is a mapping and
// order carries no semantics. On a data error the target keeps whatever
// was already applied; there is no transaction boundary.
func (in *Injector) Inject(ctx context.Context, target ports.Graph) (domain.InjectStats, error) {
	var stats domain.InjectStats
	for _, src := range slices.Sorted(maps.Keys(in.section)) {
		if err := in.injectSource(ctx, target, src, in.section[src], &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (in *Injector) injectSource(
	ctx context.Context,
	g ports.Graph,
	srcName string,
	edges domain.EdgeMap,
	stats *domain.InjectStats,
) error {
	srcVertex, err := in.resolveOrCreate(ctx, g, srcName, stats)
	if err != nil {
		return err
	}

	for _, label := range slices.Sorted(maps.Keys(edges)) {
		if err := in.injectEdge(ctx, g, srcName, srcVertex, label, edges[label], stats); err != nil {
			return err
		}
	}
	return nil
}

// injectEdge handles one declared edge. List targets recurse once per
// element, preserving the label and source vertex, so a single declaration
// fans out to one edge per listed target.
func (in *Injector) injectEdge(
	ctx context.Context,
	g ports.Graph,
	srcName string,
	srcVertex ports.Vertex,
	label string,
	target domain.TargetSpec,
	stats *domain.InjectStats,
) error {
	switch target.Kind() {
	case domain.TargetList:
		for _, elem := range target.Elems() {
			if err := in.injectEdge(ctx, g, srcName, srcVertex, label, elem, stats); err != nil {
				return err
			}
		}
		return nil

	case domain.TargetInvalid:
		return zerr.With(domain.ErrInvalidEdgeTarget, "source_vertex", srcName)

	default:
		targetVertex, err := in.resolveOrCreate(ctx, g, target.Name(), stats)
		if err != nil {
			return err
		}

		edge, err := srcVertex.AddEdge(ctx, in.classmap.ResolveEdge(label), targetVertex)
		if err != nil {
			return zerr.With(err, "source_vertex", srcName)
		}
		stats.EdgesCreated++

		// Edge properties are keyed by the raw label the author wrote,
		// not the resolved one.
		return in.eprops.Apply(ctx, label, edge)
	}
}

// resolveOrCreate returns the vertex handle for rawName. The name is
// resolved through the classmap, then satisfied from the run's cache, then
// from the target graph, and only created when the graph lacks it, so
// repeated loads against one target reuse existing vertices. Vertex
// properties are applied on every resolution, keyed by the raw name.
func (in *Injector) resolveOrCreate(
	ctx context.Context,
	g ports.Graph,
	rawName string,
	stats *domain.InjectStats,
) (ports.Vertex, error) {
	resolved := in.classmap.ResolveVertex(rawName)

	vertex, ok := in.cache.Get(resolved)
	if ok {
		stats.VerticesReused++
	} else {
		var err error
		vertex, err = g.VertexByID(ctx, resolved)
		if err != nil {
			return nil, zerr.With(err, "vertex_id", resolved)
		}
		if vertex == nil {
			vertex, err = g.AddVertex(ctx, resolved)
			if err != nil {
				return nil, zerr.With(err, "vertex_id", resolved)
			}
			stats.VerticesCreated++
		} else {
			stats.VerticesReused++
		}
	}

	if err := in.vprops.Apply(ctx, rawName, vertex); err != nil {
		return nil, zerr.With(err, "vertex_name", rawName)
	}

	in.cache.Put(resolved, vertex)
	return vertex, nil
}
