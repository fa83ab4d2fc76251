package validator

import (
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// ExponentialNode selects one element of Candidates via the Exponential
// mechanism, scored by the "data" operand's utilities. Candidates may
// carry any element type; only the utilities feeding the score need be
// float and aggregated.
type ExponentialNode struct {
	Candidates   core.Value
	Epsilon      float64
	ConstantTime bool

	sensitivity float64
}

var _ Mechanism = (*ExponentialNode)(nil)

// PropagateProperty derives the utility sensitivity under the exponential
// mechanism's own utility-space norm and reports output properties typed
// to Candidates.
func (n *ExponentialNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, agg, err := aggregatorCheck(props)
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}
	if err := elementTypeCheck(data.DataType, core.DataTypeFloat); err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}

	sensitivity, err := computeSensitivity(def, agg, core.ExponentialSpace())
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}
	if len(sensitivity) == 0 {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.PropertyViolation, "exponential: aggregator reported no sensitivity").WithNode(node)
	}
	n.sensitivity = sensitivity[0]

	out := core.NewWarnable(core.ValueProperties{
		DataType:   n.Candidates.DataType(),
		Releasable: true,
	})
	for _, usage := range n.GetPrivacyUsage() {
		warnings, err := privacyUsageCheck(def, usage)
		if err != nil {
			return core.Warnable[core.ValueProperties]{}, err
		}
		for _, w := range warnings {
			out = out.WithWarning(w.Message)
		}
	}
	return out, nil
}

// GetPrivacyUsage reports the single Pure{epsilon} usage this selection spends.
func (n *ExponentialNode) GetPrivacyUsage() []core.PrivacyUsage {
	return []core.PrivacyUsage{core.PureUsage(n.Epsilon)}
}

// Evaluate selects one candidate by scoring args["data"] (the utilities)
// with mechanism.Exponential, using the sensitivity derived during
// PropagateProperty.
func (n *ExponentialNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	utilities, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "exponential: missing \"data\" operand")
	}
	selected, usage, err := arrayop.Exponential(src, n.Candidates, utilities, n.sensitivity, n.Epsilon, n.ConstantTime)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: selected, PrivacyUsages: []core.PrivacyUsage{usage}, Public: true}, nil
}
