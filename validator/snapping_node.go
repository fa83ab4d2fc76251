package validator

import (
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// SnappingNode clips and snaps a releasable float aggregate to a lattice
// of spacing 2^m over [Lower, Upper], per Mironov (2012).
type SnappingNode struct {
	Epsilon      core.Value
	Lower        core.Value
	Upper        core.Value
	ConstantTime bool

	sensitivity core.Value
}

var _ Mechanism = (*SnappingNode)(nil)

// PropagateProperty derives sensitivity under the L1 norm and additionally
// warns (without rejecting) about a configuration where ConstantTime is
// requested without the
// enclosing definition also protecting floating-point timing: a
// constant-time sampler wrapped by an outer pipeline with
// ProtectFloatingPoint = false gains nothing, since downstream code may
// still branch on the clip boundary in data-dependent time. This is the
// validator-level enclosing-definition check the kernel itself cannot
// perform, since mechanism.Snapping never sees a PrivacyDefinition.
func (n *SnappingNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, agg, err := aggregatorCheck(props)
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}
	if err := elementTypeCheck(data.DataType, core.DataTypeFloat); err != nil {
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
	if n.ConstantTime && !def.ProtectFloatingPoint {
		out = out.WithWarning("constant-time snapping requested but the enclosing definition does not protect floating-point timing")
	}
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
func (n *SnappingNode) GetPrivacyUsage() []core.PrivacyUsage {
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

// Evaluate applies mechanism.Snapping cell-by-cell over args["data"].
func (n *SnappingNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "snapping: missing \"data\" operand")
	}
	out, usages, err := arrayop.SnappingArray(src, data, n.Epsilon, n.sensitivity, n.Lower, n.Upper, n.ConstantTime)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out, PrivacyUsages: usages, Public: true}, nil
}
