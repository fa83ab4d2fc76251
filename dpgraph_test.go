package dpgraph_test

import (
	"testing"

	dpgraph "github.com/katalvlaran/dpgraph"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/enginebuilder"
	"github.com/stretchr/testify/require"
)

func TestRunBuildsAndExecutesScenarioS5Pipeline(t *testing.T) {
	rows := make([]float64, 100)
	for i := range rows {
		rows[i] = float64(i%2) + 0.25
	}
	data, err := core.NewArrayFloat(rows, []int64{100})
	require.NoError(t, err)

	def := core.DefaultPrivacyDefinition()
	def.ProtectFloatingPoint = false
	b := dpgraph.NewBuilder(enginebuilder.WithPrivacyDefinition(def))
	src := b.Source(data, core.ValueProperties{DataType: core.DataTypeFloat, Releasable: true})
	clamp := b.Clamp(src, core.NewScalarFloat(0), core.NewScalarFloat(1))
	mean := b.Mean(clamp, 100)
	laplace := b.Laplace(mean, core.NewScalarFloat(1), false)

	releases, err := dpgraph.Run(b)
	require.NoError(t, err)

	final := releases[laplace]
	require.True(t, final.Public)
	require.Len(t, final.PrivacyUsages, 1)
}
