package transform

import (
	"github.com/katalvlaran/dpgraph/arrayop"
	"github.com/katalvlaran/dpgraph/core"
)

// ComputeMean returns the arithmetic per-column mean of data, the actual
// (non-private) value a downstream mechanism node adds noise to. It is
// kept separate from Mean's ComputeSensitivity, which only ever derives
// the sensitivity metadata attached to ValueProperties.Aggregator.
func ComputeMean(data core.Value) (core.Value, error) {
	if data.DataType() != core.DataTypeFloat {
		return core.Value{}, core.NewError(core.TypeMismatch, "mean: data must be float")
	}
	numCols, err := arrayop.NumColumns(data.Shape())
	if err != nil {
		return core.Value{}, err
	}
	numRows, err := data.NumRows()
	if err != nil {
		return core.Value{}, err
	}
	if numRows <= 0 {
		return core.Value{}, core.NewError(core.InvalidParameter, "mean: data must have at least one row")
	}
	values, err := data.Float()
	if err != nil {
		return core.Value{}, err
	}

	sums := make([]float64, numCols)
	for i, v := range values {
		sums[i%int(numCols)] += v
	}
	for i := range sums {
		sums[i] /= float64(numRows)
	}
	return core.NewArrayFloat(sums, []int64{numCols})
}

// Mean is a column-mean aggregator. It carries the per-column bounds and
// row count the mean was computed over, so that it can be attached as a
// core.ValueProperties.Aggregator and later asked for its own sensitivity
// by a downstream mechanism node.
//
// Sensitivity under any K-norm is the same scalar per column: moving one
// row changes a column's sum by at most its bound width, and dividing by
// NumRows gives the mean's sensitivity directly. KNorm(1) and KNorm(2)
// therefore return identical values here; they are accepted separately
// because a mechanism node may request either depending on which norm its
// own mechanism composes under.
type Mean struct {
	Lower   []float64
	Upper   []float64
	NumRows int64
}

var _ core.Sensitivity = Mean{}

// ComputeSensitivity returns, per column, (upper-lower)/NumRows.
func (m Mean) ComputeSensitivity(def core.PrivacyDefinition, props core.NodeProperties, space core.SensitivitySpace) (core.Value, error) {
	if space.Kind != core.SensitivityKNorm {
		return core.Value{}, core.NewError(core.InvalidParameter, "mean: sensitivity only defined under a k-norm space")
	}
	if space.K != 1 && space.K != 2 {
		return core.Value{}, core.Errorf(core.InvalidParameter, "mean: unsupported k-norm degree %d", space.K)
	}
	if m.NumRows <= 0 {
		return core.Value{}, core.NewError(core.InvalidParameter, "mean: num_rows must be positive")
	}
	if len(m.Lower) != len(m.Upper) {
		return core.Value{}, core.NewError(core.ShapeMismatch, "mean: lower and upper must have equal length")
	}
	if len(m.Lower) == 0 {
		return core.Value{}, core.NewError(core.MissingArgument, "mean: bounds are required to derive sensitivity")
	}

	widths := make([]float64, len(m.Lower))
	for i := range widths {
		if m.Upper[i] < m.Lower[i] {
			return core.Value{}, core.NewError(core.InvalidParameter, "mean: upper must not be less than lower")
		}
		widths[i] = (m.Upper[i] - m.Lower[i]) / float64(m.NumRows)
	}

	n := int64(len(widths))
	return core.NewArrayFloat(widths, []int64{n})
}

// NewMeanProperties reports the ValueProperties a Mean node attaches to its
// output edge: releasable is false, and the aggregator records Mean itself
// along with the properties it was computed under so that sensitivity can
// be derived later.
func NewMeanProperties(data core.ValueProperties, mean Mean) core.ValueProperties {
	out := data
	out.DataType = core.DataTypeFloat
	out.Releasable = false
	out.Aggregator = &core.Aggregator{
		Component:  mean,
		Properties: core.NodeProperties{"data": data},
	}
	return out
}
