package noise

import (
	"math"

	"github.com/katalvlaran/dpgraph/random"
)

// SampleGumbel draws -ln(-ln(U)) with U ~ Uniform(0,1), the noise the
// Exponential mechanism adds to each candidate's utility score before
// taking an argmax.
func SampleGumbel(src random.Source, exact, constantTime bool) (float64, error) {
	u, err := sampleNonZeroUniform(src, exact, constantTime)
	if err != nil {
		return 0, err
	}
	inner := -math.Log(u)
	if inner == 0 {
		inner = math.SmallestNonzeroFloat64
	}
	return -math.Log(inner), nil
}
