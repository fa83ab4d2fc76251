package mechanism

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/noise"
	"github.com/katalvlaran/dpgraph/random"
)

// analyticBisectionTolerance is the relative tolerance the analytic
// Gaussian sigma search converges to, 2^-30 per the Balle-Wang
// construction.
const analyticBisectionTolerance = 1.0 / (1 << 30)

// Gaussian returns v + N(0, sigma^2) under L2 sensitivity s. When
// analytic is false, sigma is the classical closed form valid only for
// epsilon <= 1; when true, sigma is the numerical root of the
// Balle-Wang accounting equation, valid for any epsilon > 0.
func Gaussian(src random.Source, v, epsilon, delta, s float64, analytic, constantTime bool) (float64, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "gaussian: epsilon must be positive")
	}
	if s < 0 {
		return 0, core.NewError(core.InvalidParameter, "gaussian: sensitivity must be non-negative")
	}
	if delta <= 0 || delta >= 1 {
		return 0, core.NewError(core.InvalidParameter, "gaussian: delta must be in (0, 1)")
	}

	var sigma float64
	if analytic {
		var err error
		sigma, err = analyticGaussianSigma(epsilon, delta, s)
		if err != nil {
			return 0, err
		}
	} else {
		if epsilon > 1 {
			return 0, core.NewError(core.InvalidParameter, "gaussian: classic mode requires epsilon <= 1, use analytic")
		}
		sigma = s * math.Sqrt(2*math.Log(1.25/delta)) / epsilon
	}

	z, err := sampleStandardNormalViaLaplaceSource(src, constantTime)
	if err != nil {
		return 0, err
	}
	return v + sigma*z, nil
}

// sampleStandardNormalViaLaplaceSource draws a single N(0,1) sample by
// delegating to package noise's truncated Gaussian sampler over a wide
// enough window that truncation has negligible effect (+-38 standard
// deviations, far past float64's ability to distinguish the tail from
// zero probability mass).
func sampleStandardNormalViaLaplaceSource(src random.Source, constantTime bool) (float64, error) {
	const bound = 38.0
	return noise.SampleTruncatedGaussian(src, 0, 1, -bound, bound, true, constantTime, 0)
}

// analyticGaussianSigma finds sigma solving Balle & Wang's calibration
// equation Phi(s/(2*sigma) - epsilon*sigma/s) - e^epsilon *
// Phi(-s/(2*sigma) - epsilon*sigma/s) = delta by bracketed bisection.
func analyticGaussianSigma(epsilon, delta, s float64) (float64, error) {
	if s == 0 {
		return 0, nil
	}
	f := func(sigma float64) float64 {
		a := s/(2*sigma) - epsilon*sigma/s
		b := -s/(2*sigma) - epsilon*sigma/s
		return standardNormalCDF(a) - math.Exp(epsilon)*standardNormalCDF(b) - delta
	}

	lo, hi := 1e-9, 1.0
	for i := 0; f(hi) > 0 && i < 200; i++ {
		hi *= 2
	}
	if f(hi) > 0 {
		return 0, core.NewError(core.InvalidParameter, "gaussian: analytic sigma search failed to bracket a root")
	}

	for i := 0; i < 200; i++ {
		mid := lo + (hi-lo)/2
		if f(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
		if (hi-lo)/hi < analyticBisectionTolerance {
			break
		}
	}
	return lo + (hi-lo)/2, nil
}

func standardNormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
