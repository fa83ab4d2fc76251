package random_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/random"
	"github.com/stretchr/testify/require"
)

func TestSampleUniformRejectsEmptyRange(t *testing.T) {
	_, err := random.SampleUniform(newStubSource(0xAB), 1, 1, true, false)
	require.Error(t, err)
}

func TestSampleUniformExactStaysInBounds(t *testing.T) {
	cases := [][]byte{{0xFF}, {0x00}, {0xAA, 0x55, 0x0F}}
	for _, data := range cases {
		v, err := random.SampleUniform(newStubSource(data...), -3.5, 7.25, true, false)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -3.5)
		require.Less(t, v, 7.25)
	}
}

func TestSampleUniformExactConstantTimeStaysInBounds(t *testing.T) {
	v, err := random.SampleUniform(newStubSource(0x13, 0x37), 0, 1, true, true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0.0)
	require.Less(t, v, 1.0)
}

func TestSampleUniformFastStaysInBounds(t *testing.T) {
	v, err := random.SampleUniform(newStubSource(0x42, 0x99, 0x01, 0x7E), 2, 5, false, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 2.0)
	require.Less(t, v, 5.0)
}

func TestSampleUniformAllZeroBitsUnderflowsToLow(t *testing.T) {
	v, err := random.SampleUniform(newStubSource(0x00), 0, 10, true, false)
	require.NoError(t, err)
	require.InDelta(t, 0.0, v, 1e-6)
}
