package mechanism

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/noise"
	"github.com/katalvlaran/dpgraph/random"
)

// Snapping transforms v into a DP release over [lo, hi] via Mironov
// (2012)'s snapping mechanism, immune to double-precision attacks.
func Snapping(src random.Source, v, epsilon, s, lo, hi float64, constantTime bool) (float64, error) {
	return snap(src, v, epsilon, s, lo, hi, nil, constantTime)
}

// SnappingBinding is Snapping with a caller-supplied binding probability:
// the probability that the final unclip step binds, which would
// otherwise leak a data-dependent bit through elapsed time. bindingProb
// must be in [0, 1).
func SnappingBinding(src random.Source, v, epsilon, s, lo, hi, bindingProb float64, constantTime bool) (float64, error) {
	return snap(src, v, epsilon, s, lo, hi, &bindingProb, constantTime)
}

func snap(src random.Source, v, epsilon, s, lo, hi float64, bindingProb *float64, constantTime bool) (float64, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "snapping: epsilon must be positive")
	}
	if s < 0 {
		return 0, core.NewError(core.InvalidParameter, "snapping: sensitivity must be non-negative")
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, core.NewError(core.InvalidParameter, "snapping: bounds must be finite with lo < hi")
	}

	effectiveEpsilon := epsilon
	if bindingProb != nil {
		if *bindingProb < 0 || *bindingProb >= 1 {
			return 0, core.NewError(core.InvalidParameter, "snapping: binding_probability must be in [0, 1)")
		}
		// A binding clip step at the end of the pipeline adds privacy
		// loss beyond what the additive noise alone accounts for;
		// shrinking epsilon in proportion to the binding probability
		// keeps the overall guarantee at least as strong as epsilon.
		effectiveEpsilon = epsilon * (1 - *bindingProb)
	}

	clipped := clampFloat(v, lo, hi)
	center := (lo + hi) / 2
	halfWidth := (hi - lo) / 2
	x := (clipped - center) / halfWidth

	lambda := s / effectiveEpsilon
	m := ceilPowerOfTwoExponent(lambda)

	u, err := sampleSignedUniformPow2(src, m, constantTime)
	if err != nil {
		return 0, err
	}

	y := noise.GetClosestMultipleOfLambda(x+u, m)
	result := y*halfWidth + center
	return clampFloat(result, lo, hi), nil
}

// ceilPowerOfTwoExponent returns the smallest m such that 2^m >= lambda,
// by inspecting lambda's IEEE-754 exponent and mantissa directly rather
// than computing log2(lambda) and risking rounding error at the boundary.
func ceilPowerOfTwoExponent(lambda float64) int16 {
	_, exponent, mantissa := noise.Decompose(lambda)
	if mantissa == 0 {
		return exponent
	}
	return exponent + 1
}

// sampleSignedUniformPow2 draws a signed uniform on (-2^m, 2^m) by
// drawing a sign bit, a geometric exponent E (p=0.5), and 52 mantissa
// bits, then assembling sign * 2^(m-E) * (1 + mantissa/2^52) directly via
// IEEE-754 recomposition.
func sampleSignedUniformPow2(src random.Source, m int16, constantTime bool) (float64, error) {
	negative, err := random.SampleBit(src)
	if err != nil {
		return 0, err
	}
	exponentDraw, err := random.SampleGeometric(src, 0.5, constantTime, 1100)
	if err != nil {
		return 0, err
	}
	mantissa, err := random.SampleMantissaBits(src, 52)
	if err != nil {
		return 0, err
	}
	magnitude := noise.Recompose(false, m-int16(exponentDraw), mantissa)
	if negative == 1 {
		return -magnitude, nil
	}
	return magnitude, nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
