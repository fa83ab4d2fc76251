package mechanism_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dpgraph/mechanism"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/stretchr/testify/require"
)

func TestSnappingRejectsInvalidBounds(t *testing.T) {
	_, err := mechanism.Snapping(newStubSource(0x01), 0.5, 1, 1, 1, 0, false)
	require.Error(t, err)

	_, err = mechanism.Snapping(newStubSource(0x01), 0.5, 1, 1, math.Inf(-1), 1, false)
	require.Error(t, err)
}

func TestSnappingRejectsNonPositiveEpsilon(t *testing.T) {
	_, err := mechanism.Snapping(newStubSource(0x01), 0.5, 0, 1, 0, 1, false)
	require.Error(t, err)
}

func TestSnappingScenarioS3StaysWithinBounds(t *testing.T) {
	src := random.Default()
	for i := 0; i < 2000; i++ {
		v, err := mechanism.Snapping(src, 0.7, 1.0, 1.0, 0.0, 1.0, false)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestSnappingBindingRejectsOutOfRangeProbability(t *testing.T) {
	_, err := mechanism.SnappingBinding(newStubSource(0x01), 0.5, 1, 1, 0, 1, 1.0, false)
	require.Error(t, err)
}

func TestSnappingBindingStaysWithinBounds(t *testing.T) {
	src := random.Default()
	for i := 0; i < 500; i++ {
		v, err := mechanism.SnappingBinding(src, 0.7, 1.0, 1.0, 0.0, 1.0, 0.1, false)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}
