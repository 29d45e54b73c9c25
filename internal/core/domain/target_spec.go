package domain

// TargetKind discriminates the three shapes an edge target can take.
type TargetKind int

const (
	// TargetScalar is a single vertex name.
	TargetScalar TargetKind = iota
	// TargetList is a sequence of targets, one edge per element.
	TargetList
	// TargetInvalid is a map-shaped value, which is not a legal edge target.
	// Invalid targets survive parsing so the error surfaces during
	// injection, after zero or more prior mutations, matching the
	// no-rollback failure contract.
	TargetInvalid
)

// TargetSpec is the tagged variant for an edge target: a vertex name, a
// list of further specs, or an invalid map-shaped value. Lists may nest;
// only maps are rejected.
type TargetSpec struct {
	kind  TargetKind
	name  string
	elems []TargetSpec
}

// ScalarTarget builds a TargetSpec naming a single target vertex.
func ScalarTarget(name string) TargetSpec {
	return TargetSpec{kind: TargetScalar, name: name}
}

// ListTarget builds a TargetSpec fanning out to the given elements.
func ListTarget(elems []TargetSpec) TargetSpec {
	return TargetSpec{kind: TargetList, elems: elems}
}

// InvalidTarget builds a TargetSpec for a map-shaped value.
func InvalidTarget() TargetSpec {
	return TargetSpec{kind: TargetInvalid}
}

// Kind returns the variant tag.
func (t TargetSpec) Kind() TargetKind { return t.kind }

// Name returns the vertex name of a scalar target. It is empty for the
// other kinds.
func (t TargetSpec) Name() string { return t.name }

// Elems returns the elements of a list target. It is nil for the other kinds.
func (t TargetSpec) Elems() []TargetSpec { return t.elems }
