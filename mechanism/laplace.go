package mechanism

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/noise"
	"github.com/katalvlaran/dpgraph/random"
)

// Laplace returns v + Lap(0, s/epsilon), satisfying pure (epsilon, 0)-DP
// under L1 sensitivity s.
func Laplace(src random.Source, v, epsilon, s float64, constantTime bool) (float64, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "laplace: epsilon must be positive")
	}
	if s < 0 {
		return 0, core.NewError(core.InvalidParameter, "laplace: sensitivity must be non-negative")
	}
	noiseValue, err := noise.SampleLaplace(src, 0, s/epsilon, true, constantTime)
	if err != nil {
		return 0, err
	}
	return v + noiseValue, nil
}
