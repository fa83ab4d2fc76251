package transform

import (
	"math"
	"strings"

	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/noise"
	"github.com/katalvlaran/dpgraph/random"
)

// ImputeContinuous replaces non-finite (NaN) cells of float data with a
// draw from the named distribution, standardized per column; int data is
// returned unchanged, since int64 has no NaN representation to impute.
//
// The distribution name is matched case-insensitively against "uniform"
// and "gaussian" (strings.ToLower), resolving the reference
// implementation's distribution dispatch, which is documented as the
// resolved Open Question in DESIGN.md. An empty distribution defaults to
// uniform.
func ImputeContinuous(src random.Source, data, lower, upper, shift, scale core.Value, distribution string, exact, constantTime bool) (core.Value, error) {
	if data.DataType() == core.DataTypeInt {
		return data, nil
	}
	if data.DataType() != core.DataTypeFloat {
		return core.Value{}, core.NewError(core.TypeMismatch, "impute: data must be float or int")
	}

	numCols, err := arrayop.NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, err
	}
	loCol, err := arrayop.StandardizeFloatColumn(lower, numCols)
	if err != nil {
		return core.Value{}, err
	}
	hiCol, err := arrayop.StandardizeFloatColumn(upper, numCols)
	if err != nil {
		return core.Value{}, err
	}
	values, err := data.Float()
	if err != nil {
		return core.Value{}, err
	}

	if distribution == "" {
		distribution = "uniform"
	}

	switch strings.ToLower(distribution) {
	case "uniform":
		out, err := arrayop.BroadcastMap(values, numCols, func(v float64, col int) (float64, error) {
			if !math.IsNaN(v) {
				return v, nil
			}
			return random.SampleUniform(src, loCol[col], hiCol[col], exact, constantTime)
		})
		if err != nil {
			return core.Value{}, err
		}
		return core.NewArrayFloat(out, data.Shape())
	case "gaussian":
		shiftCol, err := arrayop.StandardizeFloatColumn(shift, numCols)
		if err != nil {
			return core.Value{}, err
		}
		scaleCol, err := arrayop.StandardizeFloatColumn(scale, numCols)
		if err != nil {
			return core.Value{}, err
		}
		out, err := arrayop.BroadcastMap(values, numCols, func(v float64, col int) (float64, error) {
			if !math.IsNaN(v) {
				return v, nil
			}
			return noise.SampleTruncatedGaussian(src, shiftCol[col], scaleCol[col], loCol[col], hiCol[col], exact, constantTime, 0)
		})
		if err != nil {
			return core.Value{}, err
		}
		return core.NewArrayFloat(out, data.Shape())
	default:
		return core.Value{}, core.Errorf(core.InvalidParameter, "impute: distribution %q not supported", distribution)
	}
}

// ImputeCategoricalFloat replaces cells equal to any of nullValues with a
// weighted random draw from categories (equal weight if weights is nil).
func ImputeCategoricalFloat(src random.Source, data []float64, categories, nullValues []float64, weights []float64, constantTime bool) ([]float64, error) {
	isNull := func(v float64) bool { return containsFloat(nullValues, v) }
	draw := func() (float64, error) { return weightedDraw(src, categories, weights, constantTime) }
	return imputeCategorical(data, isNull, draw)
}

// ImputeCategoricalInt is ImputeCategoricalFloat's int64 counterpart.
func ImputeCategoricalInt(src random.Source, data []int64, categories, nullValues []int64, weights []float64, constantTime bool) ([]int64, error) {
	isNull := func(v int64) bool { return containsInt(nullValues, v) }
	draw := func() (int64, error) { return weightedDrawInt(src, categories, weights, constantTime) }
	return imputeCategorical(data, isNull, draw)
}

// ImputeCategoricalString is ImputeCategoricalFloat's string counterpart.
func ImputeCategoricalString(src random.Source, data []string, categories, nullValues []string, weights []float64, constantTime bool) ([]string, error) {
	isNull := func(v string) bool { return containsString(nullValues, v) }
	draw := func() (string, error) { return weightedDrawString(src, categories, weights, constantTime) }
	return imputeCategorical(data, isNull, draw)
}

func imputeCategorical[T any](data []T, isNull func(T) bool, draw func() (T, error)) ([]T, error) {
	out := make([]T, len(data))
	for i, v := range data {
		if !isNull(v) {
			out[i] = v
			continue
		}
		replacement, err := draw()
		if err != nil {
			return nil, err
		}
		out[i] = replacement
	}
	return out, nil
}

func containsFloat(xs []float64, v float64) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsInt(xs []int64, v int64) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func weightedIndex(src random.Source, weights []float64, constantTime bool) (int, error) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, core.NewError(core.InvalidParameter, "impute: category weights must sum to a positive value")
	}
	u, err := random.SampleUniform(src, 0, total, true, constantTime)
	if err != nil {
		return 0, err
	}
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if u < cumulative {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func weightedDraw(src random.Source, categories, weights []float64, constantTime bool) (float64, error) {
	if weights == nil {
		weights = equalWeights(len(categories))
	}
	idx, err := weightedIndex(src, weights, constantTime)
	if err != nil {
		return 0, err
	}
	return categories[idx], nil
}

func weightedDrawInt(src random.Source, categories []int64, weights []float64, constantTime bool) (int64, error) {
	if weights == nil {
		weights = equalWeights(len(categories))
	}
	idx, err := weightedIndex(src, weights, constantTime)
	if err != nil {
		return 0, err
	}
	return categories[idx], nil
}

func weightedDrawString(src random.Source, categories []string, weights []float64, constantTime bool) (string, error) {
	if weights == nil {
		weights = equalWeights(len(categories))
	}
	idx, err := weightedIndex(src, weights, constantTime)
	if err != nil {
		return "", err
	}
	return categories[idx], nil
}
