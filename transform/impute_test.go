package transform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/katalvlaran/dpgraph/transform"
	"github.com/stretchr/testify/require"
)

func TestImputeContinuousLeavesIntDataUnchanged(t *testing.T) {
	data, err := core.NewArrayInt([]int64{1, 2, 3}, []int64{3})
	require.NoError(t, err)

	out, err := transform.ImputeContinuous(random.Default(), data, core.NewScalarFloat(0), core.NewScalarFloat(1), core.NewScalarFloat(0), core.NewScalarFloat(1), "uniform", true, false)
	require.NoError(t, err)
	require.Equal(t, core.DataTypeInt, out.DataType())
}

func TestImputeContinuousFillsNaNWithinUniformBounds(t *testing.T) {
	data, err := core.NewArrayFloat([]float64{0.5, math.NaN(), 0.25}, []int64{3})
	require.NoError(t, err)

	out, err := transform.ImputeContinuous(random.Default(), data, core.NewScalarFloat(0), core.NewScalarFloat(1), core.NewScalarFloat(0), core.NewScalarFloat(1), "uniform", true, false)
	require.NoError(t, err)
	values, err := out.Float()
	require.NoError(t, err)
	require.Equal(t, 0.5, values[0])
	require.GreaterOrEqual(t, values[1], 0.0)
	require.LessOrEqual(t, values[1], 1.0)
	require.Equal(t, 0.25, values[2])
}

func TestImputeContinuousDefaultsEmptyDistributionToUniform(t *testing.T) {
	data, err := core.NewArrayFloat([]float64{math.NaN()}, []int64{1})
	require.NoError(t, err)

	out, err := transform.ImputeContinuous(random.Default(), data, core.NewScalarFloat(0), core.NewScalarFloat(1), core.NewScalarFloat(0), core.NewScalarFloat(1), "", true, false)
	require.NoError(t, err)
	values, err := out.Float()
	require.NoError(t, err)
	require.GreaterOrEqual(t, values[0], 0.0)
	require.LessOrEqual(t, values[0], 1.0)
}

func TestImputeContinuousMatchesDistributionCaseInsensitively(t *testing.T) {
	data, err := core.NewArrayFloat([]float64{math.NaN()}, []int64{1})
	require.NoError(t, err)

	out, err := transform.ImputeContinuous(random.Default(), data, core.NewScalarFloat(-10), core.NewScalarFloat(10), core.NewScalarFloat(0), core.NewScalarFloat(1), "GAUSSIAN", true, false)
	require.NoError(t, err)
	values, err := out.Float()
	require.NoError(t, err)
	require.False(t, math.IsNaN(values[0]))
}

func TestImputeContinuousRejectsUnknownDistribution(t *testing.T) {
	data, err := core.NewArrayFloat([]float64{math.NaN()}, []int64{1})
	require.NoError(t, err)

	_, err = transform.ImputeContinuous(random.Default(), data, core.NewScalarFloat(0), core.NewScalarFloat(1), core.NewScalarFloat(0), core.NewScalarFloat(1), "poisson", true, false)
	require.Error(t, err)
}

func TestImputeCategoricalFloatReplacesNullValues(t *testing.T) {
	out, err := transform.ImputeCategoricalFloat(random.Default(), []float64{1, -1, 2}, []float64{1, 2, 3}, []float64{-1}, nil, false)
	require.NoError(t, err)
	require.Equal(t, 1.0, out[0])
	require.Contains(t, []float64{1, 2, 3}, out[1])
	require.Equal(t, 2.0, out[2])
}

func TestImputeCategoricalIntRejectsNonPositiveWeights(t *testing.T) {
	_, err := transform.ImputeCategoricalInt(random.Default(), []int64{-1}, []int64{1, 2}, []int64{-1}, []float64{0, 0}, false)
	require.Error(t, err)
}

func TestImputeCategoricalStringReplacesNullValues(t *testing.T) {
	out, err := transform.ImputeCategoricalString(random.Default(), []string{"a", "?", "b"}, []string{"a", "b"}, []string{"?"}, nil, false)
	require.NoError(t, err)
	require.Equal(t, "a", out[0])
	require.Contains(t, []string{"a", "b"}, out[1])
	require.Equal(t, "b", out[2])
}
