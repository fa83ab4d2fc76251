package validator

import (
	"github.com/katalvlaran/dpgraph/accountant"
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// LaplaceNode adds Laplace noise to a releasable float aggregate. Epsilon
// is the usage declared per column (standardized the way arrayop
// standardizes a scalar-or-per-column argument); Sensitivity is filled in
// by PropagateProperty from the upstream aggregator and consumed by
// Evaluate.
type LaplaceNode struct {
	Epsilon      core.Value
	ConstantTime bool

	sensitivity core.Value
}

var _ Mechanism = (*LaplaceNode)(nil)
var _ Accuracy = (*LaplaceNode)(nil)

// PropagateProperty validates that the operand is a non-releasable float
// aggregate, rejects Laplace outright when the enclosing definition
// requires floating-point side-channel protection (scenario S6: Laplace's
// rejection-free sampling is not immune to FP timing attacks the way
// Snapping is), derives sensitivity under the L1 norm, and marks the
// output releasable.
func (n *LaplaceNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	if def.ProtectFloatingPoint {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.PropertyViolation, "Laplace susceptible to FP attacks").WithNode(node)
	}
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
func (n *LaplaceNode) GetPrivacyUsage() []core.PrivacyUsage {
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

// Evaluate applies mechanism.Laplace cell-by-cell over args["data"] using
// the sensitivity derived during PropagateProperty.
func (n *LaplaceNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "laplace: missing \"data\" operand")
	}
	out, usages, err := arrayop.LaplaceArray(src, data, n.Epsilon, n.sensitivity, n.ConstantTime)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out, PrivacyUsages: usages, Public: true}, nil
}

// AccuracyToUsage returns the single-column epsilon bounding Laplace's
// error by accuracy at confidence 1-alpha, using the first derived
// sensitivity column.
func (n *LaplaceNode) AccuracyToUsage(accuracy, alpha float64) (core.PrivacyUsage, error) {
	s, err := n.firstSensitivity()
	if err != nil {
		return core.PrivacyUsage{}, err
	}
	epsilon, err := accountant.LaplaceAccuracyToUsage(accuracy, s, alpha)
	if err != nil {
		return core.PrivacyUsage{}, err
	}
	return core.PureUsage(epsilon), nil
}

// UsageToAccuracy inverts AccuracyToUsage for this node's declared epsilon.
func (n *LaplaceNode) UsageToAccuracy(alpha float64) (float64, error) {
	s, err := n.firstSensitivity()
	if err != nil {
		return 0, err
	}
	eps, err := n.Epsilon.Float()
	if err != nil || len(eps) == 0 {
		return 0, core.NewError(core.MissingArgument, "laplace: epsilon not set")
	}
	return accountant.LaplaceUsageToAccuracy(eps[0], s, alpha)
}

func (n *LaplaceNode) firstSensitivity() (float64, error) {
	s, err := n.sensitivity.Float()
	if err != nil || len(s) == 0 {
		return 0, core.NewError(core.MissingArgument, "laplace: sensitivity not yet derived; call PropagateProperty first")
	}
	return s[0], nil
}
