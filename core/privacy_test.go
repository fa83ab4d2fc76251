package core_test

import (
	"testing"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/stretchr/testify/require"
)

func TestPrivacyUsageAddIsAdditive(t *testing.T) {
	a := core.ApproximateUsage(1.0, 1e-6)
	b := core.ApproximateUsage(0.5, 1e-7)
	sum := a.Add(b)
	require.InDelta(t, 1.5, sum.Epsilon, 1e-12)
	require.InDelta(t, 1.1e-6, sum.Delta, 1e-12)
	require.Equal(t, core.PrivacyUsageApproximate, sum.Kind)
}

func TestPureUsageAddStaysPureWhenBothPure(t *testing.T) {
	sum := core.PureUsage(1).Add(core.PureUsage(2))
	require.Equal(t, core.PrivacyUsagePure, sum.Kind)
	require.InDelta(t, 3, sum.Epsilon, 1e-12)
}

func TestEffectiveToActualScalesByStabilityAndGroupSize(t *testing.T) {
	usage := core.PureUsage(1.0)
	actual := usage.EffectiveToActual(2.0, 3)
	require.InDelta(t, 6.0, actual.Epsilon, 1e-12)
}

func TestGetEpsilonRejectsNonPositive(t *testing.T) {
	_, err := core.PureUsage(0).GetEpsilon()
	require.Error(t, err)
	kind, ok := core.KindOf(err)
	require.True(t, ok)
	require.Equal(t, core.PrivacyBudgetInvalid, kind)
}

func TestGetDeltaRejectsOutOfRange(t *testing.T) {
	_, err := core.ApproximateUsage(1, 1).GetDelta()
	require.Error(t, err)
}
