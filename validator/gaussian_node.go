package validator

import (
	"github.com/katalvlaran/dpgraph/accountant"
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// GaussianNode adds Gaussian noise to a releasable float aggregate. Unlike
// Laplace, Gaussian is not rejected under ProtectFloatingPoint: its
// rejection-sampling fallback is bounded and the analytic variant avoids
// rejection sampling altogether.
type GaussianNode struct {
	Epsilon      core.Value
	Delta        core.Value
	Analytic     bool
	ConstantTime bool

	sensitivity core.Value
}

var _ Mechanism = (*GaussianNode)(nil)
var _ Accuracy = (*GaussianNode)(nil)

// PropagateProperty derives sensitivity under the L2 norm and validates
// the declared usage: Gaussian's delta > 0 requirement is checked here,
// and privacyUsageCheck rejects epsilon <= 0 and delta outside [0, 1).
func (n *GaussianNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, agg, err := aggregatorCheck(props)
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}
	if err := elementTypeCheck(data.DataType, core.DataTypeFloat); err != nil {
		return core.Warnable[core.ValueProperties]{}, err.(*core.Error).WithNode(node)
	}

	sensitivity, err := computeSensitivity(def, agg, core.KNorm(2))
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}
	n.sensitivity, err = core.NewArrayFloat(sensitivity, []int64{int64(len(sensitivity))})
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}

	out := core.NewWarnable(releasedProperties(data))
	for _, usage := range n.GetPrivacyUsage() {
		if usage.Delta <= 0 {
			return core.Warnable[core.ValueProperties]{}, core.NewError(core.PrivacyBudgetInvalid, "gaussian: delta must be greater than zero").WithNode(node)
		}
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

// GetPrivacyUsage reports one Approximate{epsilon, delta} usage per column.
func (n *GaussianNode) GetPrivacyUsage() []core.PrivacyUsage {
	eps, err := n.Epsilon.Float()
	if err != nil {
		return nil
	}
	delta, err := n.Delta.Float()
	if err != nil {
		return nil
	}
	usages := make([]core.PrivacyUsage, len(eps))
	for i, e := range eps {
		d := delta[0]
		if len(delta) == len(eps) {
			d = delta[i]
		}
		usages[i] = core.ApproximateUsage(e, d)
	}
	return usages
}

// Evaluate applies mechanism.Gaussian cell-by-cell over args["data"] using
// the sensitivity derived during PropagateProperty.
func (n *GaussianNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "gaussian: missing \"data\" operand")
	}
	out, usages, err := arrayop.GaussianArray(src, data, n.Epsilon, n.Delta, n.sensitivity, n.Analytic, n.ConstantTime)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out, PrivacyUsages: usages, Public: true}, nil
}

// AccuracyToUsage inverts the classic Gaussian sigma(epsilon, delta, s) to
// match a target half-width, using the first derived sensitivity column
// and the node's declared delta.
func (n *GaussianNode) AccuracyToUsage(accuracy, alpha float64) (core.PrivacyUsage, error) {
	s, err := n.firstSensitivity()
	if err != nil {
		return core.PrivacyUsage{}, err
	}
	delta, err := n.Delta.Float()
	if err != nil || len(delta) == 0 {
		return core.PrivacyUsage{}, core.NewError(core.MissingArgument, "gaussian: delta not set")
	}
	epsilon, err := accountant.GaussianAccuracyToUsage(accuracy, delta[0], s, alpha)
	if err != nil {
		return core.PrivacyUsage{}, err
	}
	return core.ApproximateUsage(epsilon, delta[0]), nil
}

// UsageToAccuracy inverts AccuracyToUsage for this node's declared epsilon/delta.
func (n *GaussianNode) UsageToAccuracy(alpha float64) (float64, error) {
	s, err := n.firstSensitivity()
	if err != nil {
		return 0, err
	}
	eps, err := n.Epsilon.Float()
	if err != nil || len(eps) == 0 {
		return 0, core.NewError(core.MissingArgument, "gaussian: epsilon not set")
	}
	delta, err := n.Delta.Float()
	if err != nil || len(delta) == 0 {
		return 0, core.NewError(core.MissingArgument, "gaussian: delta not set")
	}
	return accountant.GaussianUsageToAccuracy(eps[0], delta[0], s, alpha)
}

func (n *GaussianNode) firstSensitivity() (float64, error) {
	s, err := n.sensitivity.Float()
	if err != nil || len(s) == 0 {
		return 0, core.NewError(core.MissingArgument, "gaussian: sensitivity not yet derived; call PropagateProperty first")
	}
	return s[0], nil
}
