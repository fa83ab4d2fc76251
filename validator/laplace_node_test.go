package validator_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/katalvlaran/dpgraph/transform"
	"github.com/katalvlaran/dpgraph/validator"
	"github.com/stretchr/testify/require"
)

// buildMeanAggregate mirrors scenario S5: clamp -> mean produces a
// non-releasable float aggregate carrying bounds and a Mean aggregator.
func buildMeanAggregate(t *testing.T, numRows int64) core.ValueProperties {
	t.Helper()
	lower := []float64{0}
	upper := []float64{1}

	data := core.ValueProperties{DataType: core.DataTypeFloat, Lower: lower, Upper: upper}
	mean := transform.Mean{Lower: lower, Upper: upper, NumRows: numRows}
	return transform.NewMeanProperties(data, mean)
}

// laplaceDefinition is the default definition with floating-point
// protection off, the only setting under which LaplaceNode validates.
func laplaceDefinition() core.PrivacyDefinition {
	def := core.DefaultPrivacyDefinition()
	def.ProtectFloatingPoint = false
	return def
}

func TestLaplaceNodePropagatePropertyMarksReleasable(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.LaplaceNode{Epsilon: core.NewScalarFloat(1)}

	out, err := node.PropagateProperty(laplaceDefinition(), nil, props, 0)
	require.NoError(t, err)
	require.True(t, out.Value.Releasable)
	require.Nil(t, out.Value.Aggregator)
}

func TestLaplaceNodeRejectedUnderProtectFloatingPoint(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.LaplaceNode{Epsilon: core.NewScalarFloat(1)}

	def := core.DefaultPrivacyDefinition()
	def.ProtectFloatingPoint = true

	_, err := node.PropagateProperty(def, nil, props, 7)
	require.Error(t, err)
	kind, ok := core.KindOf(err)
	require.True(t, ok)
	require.Equal(t, core.PropertyViolation, kind)
}

func TestLaplaceNodeRejectsAlreadyReleasedOperand(t *testing.T) {
	props := core.NodeProperties{"data": core.ValueProperties{DataType: core.DataTypeFloat, Releasable: true}}
	node := &validator.LaplaceNode{Epsilon: core.NewScalarFloat(1)}

	_, err := node.PropagateProperty(laplaceDefinition(), nil, props, 0)
	require.Error(t, err)
}

func TestLaplaceNodeEvaluateProducesOneReleaseWithDeclaredUsage(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.LaplaceNode{Epsilon: core.NewScalarFloat(1)}

	_, err := node.PropagateProperty(laplaceDefinition(), nil, props, 0)
	require.NoError(t, err)

	release, err := node.Evaluate(random.Default(), map[string]core.Value{"data": core.NewScalarFloat(0.5)})
	require.NoError(t, err)
	require.True(t, release.Public)
	require.Len(t, release.PrivacyUsages, 1)
	require.InDelta(t, 1.0, release.PrivacyUsages[0].Epsilon, 1e-12)
}

func TestLaplaceNodeAccuracyUsageBijection(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.LaplaceNode{Epsilon: core.NewScalarFloat(1.3)}

	_, err := node.PropagateProperty(laplaceDefinition(), nil, props, 0)
	require.NoError(t, err)

	accuracy, err := node.UsageToAccuracy(0.05)
	require.NoError(t, err)
	usage, err := node.AccuracyToUsage(accuracy, 0.05)
	require.NoError(t, err)
	require.InDelta(t, 1.3, usage.Epsilon, 1e-9)
}
