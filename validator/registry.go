package validator

import "github.com/katalvlaran/dpgraph/core"

// Tag names a component type the way a graph node's wire format would:
// a short, stable string rather than a Go type switch, so that dispatch
// stays a single table lookup regardless of how many node types exist.
type Tag string

const (
	TagClamp           Tag = "clamp"
	TagImpute          Tag = "impute"
	TagRowMin          Tag = "row_min"
	TagRowMax          Tag = "row_max"
	TagMean            Tag = "mean"
	TagLaplace         Tag = "laplace"
	TagGaussian        Tag = "gaussian"
	TagSimpleGeometric Tag = "simple_geometric"
	TagExponential     Tag = "exponential"
	TagSnapping        Tag = "snapping"
)

// Capabilities is the table of interfaces a registered component tag is
// known to implement, resolved once at registration rather than probed
// per node with a type switch.
type Capabilities struct {
	Component Component
	Mechanism Mechanism
	Accuracy  Accuracy
}

// Registry maps a component tag to its capability table. It is populated
// by RegisterDefaults and read by the enginebuilder package to
// resolve a node's behavior without importing every concrete node type.
type Registry map[Tag]Capabilities

// NewRegistry builds an empty Registry.
func NewRegistry() Registry {
	return make(Registry)
}

// Register adds or replaces the capability table for tag.
func (r Registry) Register(tag Tag, caps Capabilities) {
	r[tag] = caps
}

// Lookup returns the capability table for tag.
func (r Registry) Lookup(tag Tag) (Capabilities, error) {
	caps, ok := r[tag]
	if !ok {
		return Capabilities{}, core.Errorf(core.InvalidParameter, "validator: unknown component tag %q", tag)
	}
	return caps, nil
}

// RegisterMechanism registers a node that is both a Component and a
// Mechanism (every mechanism kernel node), optionally also an Accuracy.
func RegisterMechanism(r Registry, tag Tag, m Mechanism) {
	caps := Capabilities{Component: m, Mechanism: m}
	if acc, ok := m.(Accuracy); ok {
		caps.Accuracy = acc
	}
	r.Register(tag, caps)
}

// RegisterComponent registers a plain, non-mechanism component (Clamp,
// Impute, Mean, RowMin/RowMax).
func RegisterComponent(r Registry, tag Tag, c Component) {
	r.Register(tag, Capabilities{Component: c})
}

// RegisterDefaults builds a Registry populated with every known node
// type's capability table, keyed by tag. The registered nodes carry zero
// parameter values (an Epsilon of the zero core.Value, etc.) and exist
// only to answer capability questions ("does exponential expose an
// Accuracy conversion?"); callers that need a parameterized node still
// construct one directly rather than mutating a looked-up instance.
func RegisterDefaults() Registry {
	r := NewRegistry()
	RegisterComponent(r, TagClamp, &ClampNode{})
	RegisterComponent(r, TagMean, &MeanNode{})
	RegisterComponent(r, TagImpute, &ImputeNode{})
	RegisterComponent(r, TagRowMin, NewRowMinNode())
	RegisterComponent(r, TagRowMax, NewRowMaxNode())
	RegisterMechanism(r, TagLaplace, &LaplaceNode{})
	RegisterMechanism(r, TagGaussian, &GaussianNode{})
	RegisterMechanism(r, TagSimpleGeometric, &SimpleGeometricNode{})
	RegisterMechanism(r, TagExponential, &ExponentialNode{})
	RegisterMechanism(r, TagSnapping, &SnappingNode{})
	return r
}
