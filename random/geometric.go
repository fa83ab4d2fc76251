package random

import "github.com/katalvlaran/dpgraph/core"

// defaultMaxGeometricTrials bounds the loop SampleGeometric uses when the
// caller does not impose its own cutoff.
const defaultMaxGeometricTrials = 1 << 16

// SampleGeometric draws the number of failed Bernoulli(p) trials before
// the first success (0 when the first trial succeeds), capped at
// maxTrials (0 selects defaultMaxGeometricTrials).
// When constantTime is true the loop always runs maxTrials iterations and
// returns either the first success index or maxTrials itself; this is a
// fixed-iteration approximation of constant time, not a branchless
// guarantee, since the success comparison is still a data-dependent
// branch in portable Go.
func SampleGeometric(src Source, p float64, constantTime bool, maxTrials int) (int64, error) {
	if p <= 0 || p > 1 {
		return 0, core.NewError(core.InvalidParameter, "sample_geometric: p must be in (0, 1]")
	}
	if maxTrials <= 0 {
		maxTrials = defaultMaxGeometricTrials
	}

	result := int64(-1)
	for i := 0; i < maxTrials; i++ {
		u, err := SampleUniform(src, 0, 1, true, constantTime)
		if err != nil {
			return 0, err
		}
		if u < p && result < 0 {
			result = int64(i)
			if !constantTime {
				break
			}
		}
	}
	if result < 0 {
		result = int64(maxTrials)
	}
	return result, nil
}
