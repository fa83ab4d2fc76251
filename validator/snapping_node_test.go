package validator_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/katalvlaran/dpgraph/validator"
	"github.com/stretchr/testify/require"
)

func TestSnappingNodeWarnsWhenConstantTimeWithoutProtection(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.SnappingNode{
		Epsilon:      core.NewScalarFloat(1),
		Lower:        core.NewScalarFloat(0),
		Upper:        core.NewScalarFloat(1),
		ConstantTime: true,
	}

	def := core.DefaultPrivacyDefinition()
	def.ProtectFloatingPoint = false

	out, err := node.PropagateProperty(def, nil, props, 0)
	require.NoError(t, err)
	require.NotEmpty(t, out.Warnings)
}

func TestSnappingNodeSilentWhenProtected(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.SnappingNode{
		Epsilon:      core.NewScalarFloat(1),
		Lower:        core.NewScalarFloat(0),
		Upper:        core.NewScalarFloat(1),
		ConstantTime: true,
	}

	out, err := node.PropagateProperty(core.DefaultPrivacyDefinition(), nil, props, 0)
	require.NoError(t, err)
	require.Empty(t, out.Warnings)
}

func TestSnappingNodeEvaluateStaysWithinBounds(t *testing.T) {
	props := core.NodeProperties{"data": buildMeanAggregate(t, 100)}
	node := &validator.SnappingNode{
		Epsilon: core.NewScalarFloat(1),
		Lower:   core.NewScalarFloat(0),
		Upper:   core.NewScalarFloat(1),
	}
	_, err := node.PropagateProperty(core.DefaultPrivacyDefinition(), nil, props, 0)
	require.NoError(t, err)

	release, err := node.Evaluate(random.Default(), map[string]core.Value{"data": core.NewScalarFloat(0.7)})
	require.NoError(t, err)
	values, err := release.Value.Float()
	require.NoError(t, err)
	require.GreaterOrEqual(t, values[0], 0.0)
	require.LessOrEqual(t, values[0], 1.0)
}
