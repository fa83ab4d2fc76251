package mechanism

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/noise"
	"github.com/katalvlaran/dpgraph/random"
)

// Exponential selects an index into utilities via the exponential
// mechanism: it weighs each candidate by w_i = epsilon*utilities[i]/(2*
// sensitivity), subtracts the max weight for numerical stability, adds
// independent Gumbel noise, and returns argmax_i(w_i + g_i). This
// samples from Pr[i] ~ exp(w_i) without forming an explicit CDF.
func Exponential(src random.Source, utilities []float64, sensitivity, epsilon float64, constantTime bool) (int, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "exponential: epsilon must be positive")
	}
	if sensitivity <= 0 {
		return 0, core.NewError(core.InvalidParameter, "exponential: sensitivity must be positive")
	}
	if len(utilities) == 0 {
		return 0, core.NewError(core.InvalidParameter, "exponential: utilities must be non-empty")
	}

	maxWeight := math.Inf(-1)
	weights := make([]float64, len(utilities))
	for i, u := range utilities {
		w := epsilon * u / (2 * sensitivity)
		weights[i] = w
		if w > maxWeight {
			maxWeight = w
		}
	}

	bestIdx := 0
	bestScore := math.Inf(-1)
	for i, w := range weights {
		g, err := noise.SampleGumbel(src, true, constantTime)
		if err != nil {
			return 0, err
		}
		score := (w - maxWeight) + g
		// Unconditional comparison on every iteration even when we
		// already know the answer keeps the scan's shape independent of
		// which index wins, per the constant-time argmax contract.
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return bestIdx, nil
}
