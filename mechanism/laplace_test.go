package mechanism_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/mechanism"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/stretchr/testify/require"
)

func TestLaplaceRejectsNonPositiveEpsilon(t *testing.T) {
	_, err := mechanism.Laplace(newStubSource(0x11), 5, 0, 1, false)
	require.Error(t, err)
	kind, ok := core.KindOf(err)
	require.True(t, ok)
	require.Equal(t, core.InvalidParameter, kind)
}

func TestLaplaceRejectsNegativeSensitivity(t *testing.T) {
	_, err := mechanism.Laplace(newStubSource(0x11), 5, 1, -1, false)
	require.Error(t, err)
}

func TestLaplaceScenarioS1MeanConverges(t *testing.T) {
	src := random.Default()
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		v, err := mechanism.Laplace(src, 5.0, 1.0, 1.0, false)
		require.NoError(t, err)
		sum += v
	}
	mean := sum / n
	// stddev of the sample mean is sqrt(2)/sqrt(n) ~= 0.01; 0.5 is a
	// generous multiple of that, chosen to make this robust rather than
	// tight.
	require.InDelta(t, 5.0, mean, 0.5)
}
