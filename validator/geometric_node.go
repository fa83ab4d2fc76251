package validator

import (
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// SimpleGeometricNode adds two-sided geometric noise to a releasable
// integer count aggregate, clamping the result to [CountMin, CountMax].
type SimpleGeometricNode struct {
	Epsilon      core.Value
	CountMin     core.Value
	CountMax     core.Value
	ConstantTime bool

	sensitivity core.Value
}

var _ Mechanism = (*SimpleGeometricNode)(nil)

// PropagateProperty derives sensitivity under the L1 norm over int data.
func (n *SimpleGeometricNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, agg, err := aggregatorCheck(props)
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}
	if err := elementTypeCheck(data.DataType, core.DataTypeInt); err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}

	sensitivity, err := computeSensitivity(def, agg, core.KNorm(1))
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}
	n.sensitivity, err = core.NewArrayFloat(sensitivity, []int64{int64(len(sensitivity))})
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}

	out := core.NewWarnable(releasedProperties(data))
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

// GetPrivacyUsage reports one Pure{epsilon} usage per declared column.
func (n *SimpleGeometricNode) GetPrivacyUsage() []core.PrivacyUsage {
	eps, err := n.Epsilon.Float()
	if err != nil {
		return nil
	}
	usages := make([]core.PrivacyUsage, len(eps))
	for i, e := range eps {
		usages[i] = core.PureUsage(e)
	}
	return usages
}

// Evaluate applies mechanism.SimpleGeometric cell-by-cell over args["data"].
func (n *SimpleGeometricNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "simple_geometric: missing \"data\" operand")
	}
	out, usages, err := arrayop.SimpleGeometricArray(src, data, n.Epsilon, n.sensitivity, n.CountMin, n.CountMax, n.ConstantTime)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out, PrivacyUsages: usages, Public: true}, nil
}
