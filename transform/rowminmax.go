package transform

import "github.com/katalvlaran/dpgraph/core"

// RowMin returns the element-wise minimum of left and right, which must
// share a dtype (float or int) and an equal element count.
//
// The reference this is grounded on has a copy-paste bug in its integer
// branch: it calls max where every other branch calls min. RowMin always
// uses min for both float and int, per the resolved Open Question
// recorded in DESIGN.md.
func RowMin(left, right core.Value) (core.Value, error) {
	return rowWise(left, right, func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	}, func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	})
}

// RowMax returns the element-wise maximum of left and right, which must
// share a dtype (float or int) and an equal element count.
func RowMax(left, right core.Value) (core.Value, error) {
	return rowWise(left, right, func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}, func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	})
}

func rowWise(left, right core.Value, floatOp func(a, b float64) float64, intOp func(a, b int64) int64) (core.Value, error) {
	if left.DataType() != right.DataType() {
		return core.Value{}, core.NewError(core.TypeMismatch, "row-wise op: left and right must share a dtype")
	}

	switch left.DataType() {
	case core.DataTypeFloat:
		l, err := left.Float()
		if err != nil {
			return core.Value{}, err
		}
		r, err := right.Float()
		if err != nil {
			return core.Value{}, err
		}
		if len(l) != len(r) {
			return core.Value{}, core.NewError(core.ShapeMismatch, "row-wise op: left and right must have equal length")
		}
		out := make([]float64, len(l))
		for i := range l {
			out[i] = floatOp(l[i], r[i])
		}
		return core.NewArrayFloat(out, left.Shape())
	case core.DataTypeInt:
		l, err := left.Int()
		if err != nil {
			return core.Value{}, err
		}
		r, err := right.Int()
		if err != nil {
			return core.Value{}, err
		}
		if len(l) != len(r) {
			return core.Value{}, core.NewError(core.ShapeMismatch, "row-wise op: left and right must have equal length")
		}
		out := make([]int64, len(l))
		for i := range l {
			out[i] = intOp(l[i], r[i])
		}
		return core.NewArrayInt(out, left.Shape())
	default:
		return core.Value{}, core.NewError(core.TypeMismatch, "row-wise op: data must be float or int")
	}
}
