package arrayop_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/stretchr/testify/require"
)

// naiveBroadcast is the reference double loop (rows then columns) that
// arrayop.BroadcastMap's single row-major pass must agree with.
func naiveBroadcast(data []float64, numColumns int64, fn func(v float64, col int) (float64, error)) ([]float64, error) {
	numRows := int64(len(data)) / numColumns
	out := make([]float64, len(data))
	for row := int64(0); row < numRows; row++ {
		for col := int64(0); col < numColumns; col++ {
			idx := row*numColumns + col
			v, err := fn(data[idx], int(col))
			if err != nil {
				return nil, err
			}
			out[idx] = v
		}
	}
	return out, nil
}

func TestBroadcastMapParallelAgreesWithSequential(t *testing.T) {
	const numColumns = 8
	data := make([]float64, 50000)
	for i := range data {
		data[i] = float64(i) * 0.5
	}
	fn := func(v float64, col int) (float64, error) {
		return v + float64(col), nil
	}

	arrayop.Parallel = false
	sequential, err := arrayop.BroadcastMap(data, numColumns, fn)
	require.NoError(t, err)

	arrayop.Parallel = true
	defer func() { arrayop.Parallel = false }()
	parallel, err := arrayop.BroadcastMap(data, numColumns, fn)
	require.NoError(t, err)

	require.Equal(t, sequential, parallel)
}

func TestBroadcastMapParallelPropagatesError(t *testing.T) {
	data := make([]float64, 10000)
	data[9999] = 1
	boom := core.NewError(core.InvalidParameter, "boom")
	fn := func(v float64, col int) (float64, error) {
		if v == 1 {
			return 0, boom
		}
		return v, nil
	}

	arrayop.Parallel = true
	defer func() { arrayop.Parallel = false }()
	_, err := arrayop.BroadcastMap(data, 1, fn)
	require.Error(t, err)
}

func TestBroadcastMapAgreesWithNaiveDoubleLoop(t *testing.T) {
	shapes := []struct {
		rows, cols int64
	}{
		{1, 1}, {3, 1}, {1, 4}, {5, 3}, {2, 2},
	}
	fn := func(v float64, col int) (float64, error) {
		return v*2 + float64(col), nil
	}

	for _, shape := range shapes {
		n := shape.rows * shape.cols
		data := make([]float64, n)
		for i := range data {
			data[i] = float64(i) * 1.1
		}

		got, err := arrayop.BroadcastMap(data, shape.cols, fn)
		require.NoError(t, err)
		want, err := naiveBroadcast(data, shape.cols, fn)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
