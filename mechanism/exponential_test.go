package mechanism_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/mechanism"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/stretchr/testify/require"
)

func TestExponentialRejectsEmptyUtilities(t *testing.T) {
	_, err := mechanism.Exponential(newStubSource(0x01), nil, 1, 1, false)
	require.Error(t, err)
}

func TestExponentialRejectsNonPositiveSensitivity(t *testing.T) {
	_, err := mechanism.Exponential(newStubSource(0x01), []float64{1, 2}, 0, 1, false)
	require.Error(t, err)
}

func TestExponentialReturnsValidIndex(t *testing.T) {
	utilities := []float64{0.1, 5.0, -3.0, 2.0}
	src := random.Default()
	for i := 0; i < 100; i++ {
		idx, err := mechanism.Exponential(src, utilities, 1.0, 1.0, false)
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(utilities))
	}
}

func TestExponentialFavorsHigherUtilityOnAverage(t *testing.T) {
	utilities := []float64{-10, 10}
	src := random.Default()
	wins := 0
	const n = 500
	for i := 0; i < n; i++ {
		idx, err := mechanism.Exponential(src, utilities, 1.0, 5.0, false)
		require.NoError(t, err)
		if idx == 1 {
			wins++
		}
	}
	require.Greater(t, wins, n/2)
}
