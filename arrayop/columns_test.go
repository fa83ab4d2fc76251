package arrayop_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/stretchr/testify/require"
)

func TestNumColumns(t *testing.T) {
	n, err := arrayop.NumColumns(nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = arrayop.NumColumns([]int64{10})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = arrayop.NumColumns([]int64{10, 3})
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	_, err = arrayop.NumColumns([]int64{2, 2, 2})
	require.Error(t, err)
}

func TestStandardizeFloatColumnBroadcastsScalar(t *testing.T) {
	out, err := arrayop.StandardizeFloatColumn(core.NewScalarFloat(1.5), 4)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, out)
}

func TestStandardizeFloatColumnAcceptsExactLengthArray(t *testing.T) {
	arr, err := core.NewArrayFloat([]float64{1, 2, 3}, []int64{3})
	require.NoError(t, err)
	out, err := arrayop.StandardizeFloatColumn(arr, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, out)
}

func TestStandardizeFloatColumnRejectsMismatchedLength(t *testing.T) {
	arr, err := core.NewArrayFloat([]float64{1, 2}, []int64{2})
	require.NoError(t, err)
	_, err = arrayop.StandardizeFloatColumn(arr, 3)
	require.Error(t, err)
	kind, ok := core.KindOf(err)
	require.True(t, ok)
	require.Equal(t, core.ShapeMismatch, kind)
}
