package noise

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// defaultTruncatedGaussianMaxTrials bounds SampleTruncatedGaussian's
// rejection loop when the caller supplies no explicit limit.
const defaultTruncatedGaussianMaxTrials = 1 << 14

// SampleTruncatedGaussian draws from N(mean, stddev^2) restricted to
// [lo, hi] via rejection sampling, drawing at most maxTrials times (0
// selects defaultTruncatedGaussianMaxTrials). When constantTime is true,
// the loop always runs all maxTrials iterations regardless of outcome;
// otherwise it stops at the first accepted draw. In either mode, if no
// draw lands in [lo, hi], the result is the bound nearest the last
// rejected draw, so the output is then biased toward that bound.
func SampleTruncatedGaussian(src random.Source, mean, stddev, lo, hi float64, exact, constantTime bool, maxTrials int) (float64, error) {
	if stddev <= 0 {
		return 0, core.NewError(core.InvalidParameter, "sample_truncated_gaussian: stddev must be positive")
	}
	if hi < lo {
		return 0, core.NewError(core.InvalidParameter, "sample_truncated_gaussian: hi must be >= lo")
	}
	if maxTrials <= 0 {
		maxTrials = defaultTruncatedGaussianMaxTrials
	}

	found := false
	var result, lastDraw float64
	for i := 0; i < maxTrials; i++ {
		z, err := sampleStandardNormal(src, exact, constantTime)
		if err != nil {
			return 0, err
		}
		v := mean + stddev*z
		if !found && v >= lo && v <= hi {
			found = true
			result = v
			if !constantTime {
				break
			}
		}
		if !found {
			lastDraw = v
		}
	}
	if !found {
		result = clampToBounds(lastDraw, lo, hi)
	}
	return result, nil
}

// sampleStandardNormal draws a single N(0,1) sample via the Box-Muller
// transform over two independent uniforms.
func sampleStandardNormal(src random.Source, exact, constantTime bool) (float64, error) {
	u1, err := sampleNonZeroUniform(src, exact, constantTime)
	if err != nil {
		return 0, err
	}
	u2, err := random.SampleUniform(src, 0, 1, exact, constantTime)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2), nil
}

func clampToBounds(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
