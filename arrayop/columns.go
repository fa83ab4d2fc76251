package arrayop

import "github.com/katalvlaran/dpgraph/core"

// NumColumns reports the number of data columns for a shape: rank 0 or 1
// has exactly one column, rank 2 has shape[1] columns.
func NumColumns(shape []int64) (int64, error) {
	switch len(shape) {
	case 0, 1:
		return 1, nil
	case 2:
		return shape[1], nil
	default:
		return 0, core.NewError(core.ShapeMismatch, "data may be at most 2-dimensional")
	}
}

// StandardizeFloatColumn resolves a per-column float argument: param must
// be either a scalar (broadcast to every column) or a float array of
// length exactly numColumns.
func StandardizeFloatColumn(param core.Value, numColumns int64) ([]float64, error) {
	values, err := param.Float()
	if err != nil {
		return nil, err
	}
	return standardize(param.Kind(), values, numColumns, "float")
}

// StandardizeIntColumn resolves a per-column int argument the same way
// StandardizeFloatColumn does for floats.
func StandardizeIntColumn(param core.Value, numColumns int64) ([]int64, error) {
	values, err := param.Int()
	if err != nil {
		return nil, err
	}
	return standardize(param.Kind(), values, numColumns, "int")
}

func standardize[T any](kind core.Kind, values []T, numColumns int64, label string) ([]T, error) {
	if kind == core.KindScalar {
		if len(values) != 1 {
			return nil, core.NewError(core.ShapeMismatch, "scalar "+label+" argument must carry exactly one value")
		}
		out := make([]T, numColumns)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	}
	if int64(len(values)) != numColumns {
		return nil, core.Errorf(core.ShapeMismatch, "%s argument has %d columns, data has %d", label, len(values), numColumns)
	}
	return values, nil
}
