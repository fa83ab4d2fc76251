package transform

import (
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
)

// Clamp clips data to [lower, upper] cell-by-cell, with lower and upper
// standardized to one value per column. Works over float or int data;
// the two bound arguments must carry the same dtype as data.
func Clamp(data, lower, upper core.Value) (core.Value, error) {
	numCols, err := arrayop.NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, err
	}

	switch data.DataType() {
	case core.DataTypeFloat:
		return clampFloat(data, lower, upper, numCols)
	case core.DataTypeInt:
		return clampInt(data, lower, upper, numCols)
	default:
		return core.Value{}, core.NewError(core.TypeMismatch, "clamp: data must be float or int")
	}
}

func clampFloat(data, lower, upper core.Value, numCols int64) (core.Value, error) {
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
	out, err := arrayop.BroadcastMap(values, numCols, func(v float64, col int) (float64, error) {
		if v < loCol[col] {
			return loCol[col], nil
		}
		if v > hiCol[col] {
			return hiCol[col], nil
		}
		return v, nil
	})
	if err != nil {
		return core.Value{}, err
	}
	return core.NewArrayFloat(out, data.Shape())
}

func clampInt(data, lower, upper core.Value, numCols int64) (core.Value, error) {
	loCol, err := arrayop.StandardizeIntColumn(lower, numCols)
	if err != nil {
		return core.Value{}, err
	}
	hiCol, err := arrayop.StandardizeIntColumn(upper, numCols)
	if err != nil {
		return core.Value{}, err
	}
	values, err := data.Int()
	if err != nil {
		return core.Value{}, err
	}
	out, err := arrayop.BroadcastMap(values, numCols, func(v int64, col int) (int64, error) {
		if v < loCol[col] {
			return loCol[col], nil
		}
		if v > hiCol[col] {
			return hiCol[col], nil
		}
		return v, nil
	})
	if err != nil {
		return core.Value{}, err
	}
	return core.NewArrayInt(out, data.Shape())
}
