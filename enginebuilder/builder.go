package enginebuilder

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/engine"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/katalvlaran/dpgraph/validator"
)

// Builder assembles an engine.Graph one validated node at a time. Every
// method below is a Constructor in spirit: it appends exactly one node,
// validates it against the properties of its declared parents, and
// returns the new node's id for use as a later call's parent. Errors and
// warnings accumulate; Build surfaces the first error, and Warnings
// returns every warning collected along the way.
type Builder struct {
	graph    *engine.Graph
	def      core.PrivacyDefinition
	registry validator.Registry
	props    map[core.NodeID]core.ValueProperties
	nextID   core.NodeID

	err      error
	warnings []core.Warning
}

// New returns a Builder configured by opts, defaulting to
// core.DefaultPrivacyDefinition (the strictest posture).
func New(opts ...Option) *Builder {
	b := &Builder{
		graph:    engine.NewGraph(),
		def:      core.DefaultPrivacyDefinition(),
		registry: validator.RegisterDefaults(),
		props:    make(map[core.NodeID]core.ValueProperties),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Capabilities reports which interfaces the node type registered under
// tag implements, without requiring the caller to import the concrete
// validator node type.
func (b *Builder) Capabilities(tag validator.Tag) (validator.Capabilities, error) {
	return b.registry.Lookup(tag)
}

// sourceComponent returns its "data" public argument verbatim; every
// Source node is backed by one of these.
type sourceComponent struct{}

func (sourceComponent) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	return core.ReleaseNode{Value: args["data"], Public: false}, nil
}

// Source registers a constant input edge with the given properties and
// returns its node id. Use it to seed a pipeline with loaded data before
// any transform or mechanism node consumes it.
func (b *Builder) Source(data core.Value, props core.ValueProperties) core.NodeID {
	id := b.nextID
	b.nextID++
	if b.err != nil {
		return id
	}
	b.err = b.graph.AddNode(id, &engine.Node{
		Component:  sourceComponent{},
		PublicArgs: map[string]core.Value{"data": data},
	})
	b.props[id] = props
	return id
}

// propagateMulti runs component.PropagateProperty against the recorded
// properties of every named parent, records the resulting properties and
// any warnings under id, and reports the first error encountered across
// the Builder's lifetime (a sticky-error accumulator, so call chains can
// be written without checking every intermediate error).
func (b *Builder) propagateMulti(id core.NodeID, component validator.Component, parents map[string]core.NodeID) {
	if b.err != nil {
		return
	}
	props := make(core.NodeProperties, len(parents))
	for name, parent := range parents {
		parentProps, ok := b.props[parent]
		if !ok {
			b.err = core.Errorf(core.MissingArgument, "enginebuilder: unknown parent node %d", parent)
			return
		}
		props[name] = parentProps
	}
	out, err := component.PropagateProperty(b.def, nil, props, id)
	if err != nil {
		b.err = err
		return
	}
	b.props[id] = out.Value
	b.warnings = append(b.warnings, out.Warnings...)
}

func (b *Builder) propagate(id core.NodeID, component validator.Component, parent core.NodeID) {
	b.propagateMulti(id, component, map[string]core.NodeID{"data": parent})
}

func (b *Builder) addNodeMulti(id core.NodeID, evaluable engine.Evaluable, parents map[string]core.NodeID) {
	if b.err != nil {
		return
	}
	b.err = b.graph.AddNode(id, &engine.Node{
		Component: evaluable,
		Parents:   parents,
	})
}

func (b *Builder) addNode(id core.NodeID, evaluable engine.Evaluable, parent core.NodeID) {
	b.addNodeMulti(id, evaluable, map[string]core.NodeID{"data": parent})
}

func (b *Builder) nextNodeID() core.NodeID {
	id := b.nextID
	b.nextID++
	return id
}

// Clamp appends a ClampNode over data's output.
func (b *Builder) Clamp(data core.NodeID, lower, upper core.Value) core.NodeID {
	id := b.nextNodeID()
	node := &validator.ClampNode{Lower: lower, Upper: upper}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// Mean appends a MeanNode aggregating numRows rows of data's output.
func (b *Builder) Mean(data core.NodeID, numRows int64) core.NodeID {
	id := b.nextNodeID()
	node := &validator.MeanNode{NumRows: numRows}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// Laplace appends a LaplaceNode releasing data's output under epsilon.
func (b *Builder) Laplace(data core.NodeID, epsilon core.Value, constantTime bool) core.NodeID {
	id := b.nextNodeID()
	node := &validator.LaplaceNode{Epsilon: epsilon, ConstantTime: constantTime}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// Gaussian appends a GaussianNode releasing data's output under (epsilon, delta).
func (b *Builder) Gaussian(data core.NodeID, epsilon, delta core.Value, analytic, constantTime bool) core.NodeID {
	id := b.nextNodeID()
	node := &validator.GaussianNode{Epsilon: epsilon, Delta: delta, Analytic: analytic, ConstantTime: constantTime}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// SimpleGeometric appends a SimpleGeometricNode releasing an integer
// count, clamped to [countMin, countMax].
func (b *Builder) SimpleGeometric(data core.NodeID, epsilon, countMin, countMax core.Value, constantTime bool) core.NodeID {
	id := b.nextNodeID()
	node := &validator.SimpleGeometricNode{Epsilon: epsilon, CountMin: countMin, CountMax: countMax, ConstantTime: constantTime}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// Snapping appends a SnappingNode releasing data's output over [lower, upper].
func (b *Builder) Snapping(data core.NodeID, epsilon, lower, upper core.Value, constantTime bool) core.NodeID {
	id := b.nextNodeID()
	node := &validator.SnappingNode{Epsilon: epsilon, Lower: lower, Upper: upper, ConstantTime: constantTime}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// Exponential appends an ExponentialNode selecting one of candidates,
// scored by data's (utility) output.
func (b *Builder) Exponential(data core.NodeID, candidates core.Value, epsilon float64, constantTime bool) core.NodeID {
	id := b.nextNodeID()
	node := &validator.ExponentialNode{Candidates: candidates, Epsilon: epsilon, ConstantTime: constantTime}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// RowMin appends a RowMinNode over the element-wise minimum of left and right.
func (b *Builder) RowMin(left, right core.NodeID) core.NodeID {
	id := b.nextNodeID()
	node := validator.NewRowMinNode()
	parents := map[string]core.NodeID{"left": left, "right": right}
	b.propagateMulti(id, node, parents)
	b.addNodeMulti(id, node, parents)
	return id
}

// RowMax appends a RowMaxNode over the element-wise maximum of left and right.
func (b *Builder) RowMax(left, right core.NodeID) core.NodeID {
	id := b.nextNodeID()
	node := validator.NewRowMaxNode()
	parents := map[string]core.NodeID{"left": left, "right": right}
	b.propagateMulti(id, node, parents)
	b.addNodeMulti(id, node, parents)
	return id
}

// Impute appends an ImputeNode filling NaN cells of data's output
// with a draw from distribution ("uniform" or "gaussian"), bounded by
// lower/upper and, for "gaussian", shaped by shift/scale.
func (b *Builder) Impute(data core.NodeID, lower, upper, shift, scale core.Value, distribution string, exact, constantTime bool) core.NodeID {
	id := b.nextNodeID()
	node := &validator.ImputeNode{
		Lower: lower, Upper: upper, Shift: shift, Scale: scale,
		Distribution: distribution, Exact: exact, ConstantTime: constantTime,
	}
	b.propagate(id, node, data)
	b.addNode(id, node, data)
	return id
}

// Properties returns the validated output properties recorded for id.
func (b *Builder) Properties(id core.NodeID) (core.ValueProperties, bool) {
	p, ok := b.props[id]
	return p, ok
}

// Warnings returns every non-fatal warning accumulated across all
// PropagateProperty calls so far.
func (b *Builder) Warnings() []core.Warning {
	return b.warnings
}

// Build returns the assembled graph, or the first error raised by any
// constructor call.
func (b *Builder) Build() (*engine.Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.graph, nil
}
