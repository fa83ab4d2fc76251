package engine_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/engine"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/katalvlaran/dpgraph/validator"
	"github.com/stretchr/testify/require"
)

// TestExecutorRunsScenarioS5Pipeline builds source -> clamp[0,1] -> mean ->
// laplace(epsilon=1) and checks the final release is a float in a
// plausible range with the declared usage attached, mirroring scenario S5.
func TestExecutorRunsScenarioS5Pipeline(t *testing.T) {
	g := engine.NewGraph()

	const source core.NodeID = 0
	const clamp core.NodeID = 1
	const mean core.NodeID = 2
	const laplace core.NodeID = 3

	rows := make([]float64, 100)
	for i := range rows {
		rows[i] = float64(i%2) + 0.25
	}
	data, err := core.NewArrayFloat(rows, []int64{int64(len(rows))})
	require.NoError(t, err)

	require.NoError(t, g.AddNode(source, &engine.Node{
		Component:  passthroughComponent{},
		PublicArgs: map[string]core.Value{"data": data},
	}))
	require.NoError(t, g.AddNode(clamp, &engine.Node{
		Component: &validator.ClampNode{Lower: core.NewScalarFloat(0), Upper: core.NewScalarFloat(1)},
		Parents:   map[string]core.NodeID{"data": source},
	}))
	require.NoError(t, g.AddNode(mean, &engine.Node{
		Component: &validator.MeanNode{NumRows: int64(len(rows))},
		Parents:   map[string]core.NodeID{"data": clamp},
	}))
	laplaceNode := &validator.LaplaceNode{Epsilon: core.NewScalarFloat(1)}
	require.NoError(t, g.AddNode(laplace, &engine.Node{
		Component: laplaceNode,
		Parents:   map[string]core.NodeID{"data": mean},
	}))

	// LaplaceNode.Evaluate uses the sensitivity its PropagateProperty
	// derives, so validate it against the mean's properties first.
	def := core.DefaultPrivacyDefinition()
	def.ProtectFloatingPoint = false
	clamped := core.ValueProperties{DataType: core.DataTypeFloat, Lower: []float64{0}, Upper: []float64{1}}
	meanProps, err := (&validator.MeanNode{NumRows: int64(len(rows))}).PropagateProperty(def, nil, core.NodeProperties{"data": clamped}, mean)
	require.NoError(t, err)
	_, err = laplaceNode.PropagateProperty(def, nil, core.NodeProperties{"data": meanProps.Value}, laplace)
	require.NoError(t, err)

	exec := engine.NewExecutor(random.Default())
	releases, err := exec.Run(g)
	require.NoError(t, err)

	final := releases[laplace]
	require.True(t, final.Public)
	require.Len(t, final.PrivacyUsages, 1)
	require.InDelta(t, 1.0, final.PrivacyUsages[0].Epsilon, 1e-12)

	values, err := final.Value.Float()
	require.NoError(t, err)
	require.GreaterOrEqual(t, values[0], -10.0)
	require.LessOrEqual(t, values[0], 10.0)
}

func TestExecutorRejectsUnknownParent(t *testing.T) {
	g := engine.NewGraph()
	require.NoError(t, g.AddNode(0, &engine.Node{
		Component: passthroughComponent{},
		Parents:   map[string]core.NodeID{"data": 99},
	}))

	exec := engine.NewExecutor(random.Default())
	_, err := exec.Run(g)
	require.Error(t, err)
}

func TestExecutorRejectsDuplicateNodeID(t *testing.T) {
	g := engine.NewGraph()
	require.NoError(t, g.AddNode(0, &engine.Node{Component: passthroughComponent{}}))
	require.Error(t, g.AddNode(0, &engine.Node{Component: passthroughComponent{}}))
}

func TestExecutorRejectsCycle(t *testing.T) {
	g := engine.NewGraph()
	require.NoError(t, g.AddNode(0, &engine.Node{Component: passthroughComponent{}, Parents: map[string]core.NodeID{"data": 1}}))
	require.NoError(t, g.AddNode(1, &engine.Node{Component: passthroughComponent{}, Parents: map[string]core.NodeID{"data": 0}}))

	exec := engine.NewExecutor(random.Default())
	_, err := exec.Run(g)
	require.Error(t, err)
}

// passthroughComponent returns its "data" public argument verbatim,
// standing in for a dataset source node.
type passthroughComponent struct{}

func (passthroughComponent) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	return core.ReleaseNode{Value: args["data"]}, nil
}
