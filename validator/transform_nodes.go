package validator

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
	"github.com/katalvlaran/dpgraph/transform"
)

// ClampNode clips its "data" operand to [Lower, Upper] and sets the
// output bounds to exactly those bounds unconditionally.
type ClampNode struct {
	Lower core.Value
	Upper core.Value
}

var _ Component = (*ClampNode)(nil)

func (n *ClampNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, ok := props["data"]
	if !ok {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.MissingArgument, "clamp: missing \"data\" operand").WithNode(node)
	}

	loCol, err := n.Lower.Float()
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}
	hiCol, err := n.Upper.Float()
	if err != nil {
		return core.Warnable[core.ValueProperties]{}, err
	}

	out := data
	out.Lower = loCol
	out.Upper = hiCol
	return core.NewWarnable(out), nil
}

// Evaluate clips args["data"] to [Lower, Upper]. The result is not itself
// a DP release, so Public is false and no privacy usage is reported.
func (n *ClampNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "clamp: missing \"data\" operand")
	}
	out, err := transform.Clamp(data, n.Lower, n.Upper)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out}, nil
}

// MeanNode computes the column mean aggregator, reporting a non-releasable
// output carrying the aggregator a downstream mechanism node needs.
type MeanNode struct {
	NumRows int64
}

var _ Component = (*MeanNode)(nil)

func (n *MeanNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, ok := props["data"]
	if !ok {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.MissingArgument, "mean: missing \"data\" operand").WithNode(node)
	}
	if data.Lower == nil || data.Upper == nil {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.PropertyViolation, "mean: operand must carry bounds").WithNode(node)
	}

	mean := transform.Mean{Lower: data.Lower, Upper: data.Upper, NumRows: n.NumRows}
	return core.NewWarnable(transform.NewMeanProperties(data, mean)), nil
}

// Evaluate computes the actual (non-private) column mean of args["data"];
// the aggregate is never itself a release, only the input a downstream
// mechanism node adds noise to.
func (n *MeanNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "mean: missing \"data\" operand")
	}
	out, err := transform.ComputeMean(data)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out}, nil
}

// rowWiseNode is the shared shape of RowMinNode and RowMaxNode: both
// operate on two same-shaped operands, "left" and "right", and produce
// output bounds that are the pointwise min/max of the two operands'
// bounds (a conservative envelope, since the reducer can select either
// side per row).
type rowWiseNode struct {
	op func(left, right core.Value) (core.Value, error)
}

func (n rowWiseNode) propagate(props core.NodeProperties, node core.NodeID, bound func(a, b float64) float64) (core.Warnable[core.ValueProperties], error) {
	left, ok := props["left"]
	if !ok {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.MissingArgument, "row-wise op: missing \"left\" operand").WithNode(node)
	}
	right, ok := props["right"]
	if !ok {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.MissingArgument, "row-wise op: missing \"right\" operand").WithNode(node)
	}
	if left.DataType != right.DataType {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.TypeMismatch, "row-wise op: left and right must share a dtype").WithNode(node)
	}

	out := left
	if left.Lower != nil && right.Lower != nil {
		out.Lower = boundsEnvelope(left.Lower, right.Lower, bound)
	} else {
		out.Lower = nil
	}
	if left.Upper != nil && right.Upper != nil {
		out.Upper = boundsEnvelope(left.Upper, right.Upper, bound)
	} else {
		out.Upper = nil
	}
	return core.NewWarnable(out), nil
}

func boundsEnvelope(a, b []float64, op func(x, y float64) float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := range out {
		x, y := a[i%len(a)], b[i%len(b)]
		out[i] = op(x, y)
	}
	return out
}

func (n rowWiseNode) evaluate(args map[string]core.Value) (core.ReleaseNode, error) {
	left, ok := args["left"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "row-wise op: missing \"left\" operand")
	}
	right, ok := args["right"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "row-wise op: missing \"right\" operand")
	}
	out, err := n.op(left, right)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out}, nil
}

// RowMinNode takes the element-wise minimum of its "left" and "right"
// operands.
type RowMinNode struct {
	rowWiseNode
}

var _ Component = (*RowMinNode)(nil)

// NewRowMinNode returns a ready-to-use RowMinNode.
func NewRowMinNode() *RowMinNode {
	return &RowMinNode{rowWiseNode{op: transform.RowMin}}
}

func (n *RowMinNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	return n.propagate(props, node, func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	})
}

// Evaluate computes the element-wise minimum of args["left"] and args["right"].
func (n *RowMinNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	return n.evaluate(args)
}

// RowMaxNode takes the element-wise maximum of its "left" and "right"
// operands.
type RowMaxNode struct {
	rowWiseNode
}

var _ Component = (*RowMaxNode)(nil)

// NewRowMaxNode returns a ready-to-use RowMaxNode.
func NewRowMaxNode() *RowMaxNode {
	return &RowMaxNode{rowWiseNode{op: transform.RowMax}}
}

func (n *RowMaxNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	return n.propagate(props, node, func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})
}

// Evaluate computes the element-wise maximum of args["left"] and args["right"].
func (n *RowMaxNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	return n.evaluate(args)
}

// ImputeNode replaces NaN cells of its "data" operand with a draw
// from Distribution ("uniform" or "gaussian"), bounded by Lower/Upper and,
// for "gaussian", shaped by Shift/Scale. Infinite cells are left as they
// are. Imputation does not change the
// declared bounds: a NaN cell is logically still constrained to
// [Lower, Upper] once filled in.
type ImputeNode struct {
	Lower, Upper core.Value
	Shift, Scale core.Value
	Distribution string
	Exact        bool
	ConstantTime bool
}

var _ Component = (*ImputeNode)(nil)

func (n *ImputeNode) PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error) {
	data, ok := props["data"]
	if !ok {
		return core.Warnable[core.ValueProperties]{}, core.NewError(core.MissingArgument, "impute: missing \"data\" operand").WithNode(node)
	}
	out := data
	out.Nullity = nil
	return core.NewWarnable(out), nil
}

// Evaluate imputes args["data"] per n's configured distribution and bounds.
func (n *ImputeNode) Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error) {
	data, ok := args["data"]
	if !ok {
		return core.ReleaseNode{}, core.NewError(core.MissingArgument, "impute: missing \"data\" operand")
	}
	out, err := transform.ImputeContinuous(src, data, n.Lower, n.Upper, n.Shift, n.Scale, n.Distribution, n.Exact, n.ConstantTime)
	if err != nil {
		return core.ReleaseNode{}, err
	}
	return core.ReleaseNode{Value: out}, nil
}
