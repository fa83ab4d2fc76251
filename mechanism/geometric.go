package mechanism

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// SimpleGeometric returns v + G, clipped so the result stays within
// [countMin, countMax], where G is a two-sided geometric variable with
// parameter p = 1 - exp(-epsilon/s). Provides pure (epsilon, 0)-DP under
// L1 sensitivity s over the integers.
func SimpleGeometric(src random.Source, v int64, epsilon, s float64, countMin, countMax int64, constantTime bool) (int64, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "simple_geometric: epsilon must be positive")
	}
	if s < 0 {
		return 0, core.NewError(core.InvalidParameter, "simple_geometric: sensitivity must be non-negative")
	}
	if countMin > countMax {
		return 0, core.NewError(core.InvalidParameter, "simple_geometric: count_min must be <= count_max")
	}

	p := 1 - math.Exp(-epsilon/s)
	magnitude, err := random.SampleGeometric(src, p, constantTime, 0)
	if err != nil {
		return 0, err
	}
	negative, err := random.SampleUniform(src, 0, 1, true, constantTime)
	if err != nil {
		return 0, err
	}
	g := magnitude
	if negative < 0.5 {
		g = -g
	}

	lo := countMin - v
	hi := countMax - v
	if g < lo {
		g = lo
	}
	if g > hi {
		g = hi
	}
	return v + g, nil
}
