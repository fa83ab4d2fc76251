package abi_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/abi"
	"github.com/stretchr/testify/require"
)

func TestLaplaceReturnsFiniteNoisedValue(t *testing.T) {
	got := abi.Laplace(10, 1, 1, false)
	require.InDelta(t, 10.0, got, 1000.0)
}

func TestGaussianReturnsFiniteNoisedValue(t *testing.T) {
	got := abi.Gaussian(10, 1, 1e-5, 1, true, false)
	require.InDelta(t, 10.0, got, 1000.0)
}

func TestSimpleGeometricClampsToBounds(t *testing.T) {
	got := abi.SimpleGeometric(5, 1, 1, 0, 10, false)
	require.GreaterOrEqual(t, got, int64(0))
	require.LessOrEqual(t, got, int64(10))
}

func TestSnappingClampsToBounds(t *testing.T) {
	got := abi.Snapping(5, 1, 1, 0, 10, false)
	require.GreaterOrEqual(t, got, 0.0)
	require.LessOrEqual(t, got, 10.0)
}

func TestSnappingBindingClampsToBounds(t *testing.T) {
	got := abi.SnappingBinding(5, 1, 1, 0, 10, 0.5, false)
	require.GreaterOrEqual(t, got, 0.0)
	require.LessOrEqual(t, got, 10.0)
}

func TestLaplacePanicsOnNonPositiveEpsilon(t *testing.T) {
	require.Panics(t, func() {
		abi.Laplace(10, 0, 1, false)
	})
}
