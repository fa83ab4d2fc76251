package noise

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// maxZeroUniformRetries bounds the retry loop SampleLaplace uses to avoid
// a zero denominator; each retry has independent (and already minuscule)
// probability of drawing exact zero, so a handful of attempts suffices.
const maxZeroUniformRetries = 8

// SampleLaplace draws shift + scale*ln(U1/U2) with U1, U2 independent
// Uniform(0,1) draws, the ratio-of-uniforms construction for Lap(shift,
// scale) that avoids computing exp() directly.
func SampleLaplace(src random.Source, shift, scale float64, exact, constantTime bool) (float64, error) {
	if scale <= 0 {
		return 0, core.NewError(core.InvalidParameter, "sample_laplace: scale must be positive")
	}
	u1, err := random.SampleUniform(src, 0, 1, exact, constantTime)
	if err != nil {
		return 0, err
	}
	u2, err := sampleNonZeroUniform(src, exact, constantTime)
	if err != nil {
		return 0, err
	}
	return shift + scale*math.Log(u1/u2), nil
}

func sampleNonZeroUniform(src random.Source, exact, constantTime bool) (float64, error) {
	var u float64
	var err error
	for i := 0; i < maxZeroUniformRetries; i++ {
		u, err = random.SampleUniform(src, 0, 1, exact, constantTime)
		if err != nil {
			return 0, err
		}
		if u != 0 {
			return u, nil
		}
	}
	return math.SmallestNonzeroFloat64, nil
}
