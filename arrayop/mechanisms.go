package arrayop

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/mechanism"
	"github.com/katalvlaran/dpgraph/random"
)

// LaplaceArray applies mechanism.Laplace cell-by-cell, with epsilon and
// sensitivity standardized to one value per column, and reports the
// per-column privacy usage actually spent.
func LaplaceArray(src random.Source, data, epsilon, sensitivity core.Value, constantTime bool) (core.Value, []core.PrivacyUsage, error) {
	numCols, err := NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	epsCol, err := StandardizeFloatColumn(epsilon, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	sCol, err := StandardizeFloatColumn(sensitivity, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	values, err := data.Float()
	if err != nil {
		return core.Value{}, nil, err
	}

	out, err := BroadcastMap(values, numCols, func(v float64, col int) (float64, error) {
		return mechanism.Laplace(src, v, epsCol[col], sCol[col], constantTime)
	})
	if err != nil {
		return core.Value{}, nil, err
	}

	result, err := core.NewArrayFloat(out, data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	return result, spreadPure(epsCol), nil
}

// GaussianArray applies mechanism.Gaussian cell-by-cell, with epsilon,
// delta, and sensitivity standardized to one value per column.
func GaussianArray(src random.Source, data, epsilon, delta, sensitivity core.Value, analytic, constantTime bool) (core.Value, []core.PrivacyUsage, error) {
	numCols, err := NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	epsCol, err := StandardizeFloatColumn(epsilon, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	deltaCol, err := StandardizeFloatColumn(delta, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	sCol, err := StandardizeFloatColumn(sensitivity, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	values, err := data.Float()
	if err != nil {
		return core.Value{}, nil, err
	}

	out, err := BroadcastMap(values, numCols, func(v float64, col int) (float64, error) {
		return mechanism.Gaussian(src, v, epsCol[col], deltaCol[col], sCol[col], analytic, constantTime)
	})
	if err != nil {
		return core.Value{}, nil, err
	}

	result, err := core.NewArrayFloat(out, data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	usages := make([]core.PrivacyUsage, numCols)
	for i := range usages {
		usages[i] = core.ApproximateUsage(epsCol[i], deltaCol[i])
	}
	return result, usages, nil
}

// SimpleGeometricArray applies mechanism.SimpleGeometric cell-by-cell,
// with epsilon, sensitivity, and the output bounds standardized to one
// value per column.
func SimpleGeometricArray(src random.Source, data, epsilon, sensitivity, countMin, countMax core.Value, constantTime bool) (core.Value, []core.PrivacyUsage, error) {
	numCols, err := NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	epsCol, err := StandardizeFloatColumn(epsilon, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	sCol, err := StandardizeFloatColumn(sensitivity, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	minCol, err := StandardizeIntColumn(countMin, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	maxCol, err := StandardizeIntColumn(countMax, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	values, err := data.Int()
	if err != nil {
		return core.Value{}, nil, err
	}

	out, err := BroadcastMap(values, numCols, func(v int64, col int) (int64, error) {
		return mechanism.SimpleGeometric(src, v, epsCol[col], sCol[col], minCol[col], maxCol[col], constantTime)
	})
	if err != nil {
		return core.Value{}, nil, err
	}

	result, err := core.NewArrayInt(out, data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	return result, spreadPure(epsCol), nil
}

// SnappingArray applies mechanism.Snapping cell-by-cell, with epsilon,
// sensitivity, and bounds standardized to one value per column.
func SnappingArray(src random.Source, data, epsilon, sensitivity, lower, upper core.Value, constantTime bool) (core.Value, []core.PrivacyUsage, error) {
	numCols, err := NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	epsCol, err := StandardizeFloatColumn(epsilon, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	sCol, err := StandardizeFloatColumn(sensitivity, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	loCol, err := StandardizeFloatColumn(lower, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	hiCol, err := StandardizeFloatColumn(upper, numCols)
	if err != nil {
		return core.Value{}, nil, err
	}
	values, err := data.Float()
	if err != nil {
		return core.Value{}, nil, err
	}

	out, err := BroadcastMap(values, numCols, func(v float64, col int) (float64, error) {
		return mechanism.Snapping(src, v, epsCol[col], sCol[col], loCol[col], hiCol[col], constantTime)
	})
	if err != nil {
		return core.Value{}, nil, err
	}

	result, err := core.NewArrayFloat(out, data.Shape())
	if err != nil {
		return core.Value{}, nil, err
	}
	return result, spreadPure(epsCol), nil
}

// Exponential selects one candidate from candidates via
// mechanism.Exponential over the matching utilities, preserving the
// candidates' element type in the returned scalar Value.
func Exponential(src random.Source, candidates, utilities core.Value, sensitivity, epsilon float64, constantTime bool) (core.Value, core.PrivacyUsage, error) {
	scores, err := utilities.Float()
	if err != nil {
		return core.Value{}, core.PrivacyUsage{}, err
	}
	idx, err := mechanism.Exponential(src, scores, sensitivity, epsilon, constantTime)
	if err != nil {
		return core.Value{}, core.PrivacyUsage{}, err
	}

	selected, err := selectCandidate(candidates, idx)
	if err != nil {
		return core.Value{}, core.PrivacyUsage{}, err
	}
	return selected, core.PureUsage(epsilon), nil
}

func selectCandidate(candidates core.Value, idx int) (core.Value, error) {
	switch candidates.DataType() {
	case core.DataTypeFloat:
		vs, err := candidates.Float()
		if err != nil {
			return core.Value{}, err
		}
		return core.NewScalarFloat(vs[idx]), nil
	case core.DataTypeInt:
		vs, err := candidates.Int()
		if err != nil {
			return core.Value{}, err
		}
		return core.NewScalarInt(vs[idx]), nil
	case core.DataTypeBool:
		vs, err := candidates.Bool()
		if err != nil {
			return core.Value{}, err
		}
		return core.NewScalarBool(vs[idx]), nil
	case core.DataTypeString:
		vs, err := candidates.Str()
		if err != nil {
			return core.Value{}, err
		}
		return core.NewScalarString(vs[idx]), nil
	default:
		return core.Value{}, core.NewError(core.TypeMismatch, "exponential: unsupported candidate dtype")
	}
}

func spreadPure(epsilons []float64) []core.PrivacyUsage {
	usages := make([]core.PrivacyUsage, len(epsilons))
	for i, e := range epsilons {
		usages[i] = core.PureUsage(e)
	}
	return usages
}
