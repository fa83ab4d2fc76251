package core

// ValueProperties is the compile-time metadata attached to each graph
// edge. Pointer fields are optional: a nil NumRows/NumColumns or a nil
// Lower/Upper bound means that fact isn't known statically, not that
// it's unbounded.
type ValueProperties struct {
	DataType DataType

	NumRows    *int64
	NumColumns *int64

	// Lower/Upper are per-column bounds; nil when not established. A
	// non-nil slice is either length 1 (broadcast to all columns) or
	// length NumColumns.
	Lower []float64
	Upper []float64

	// Nullity marks, per column, whether the column may still contain
	// non-finite/null placeholders pending imputation.
	Nullity []bool

	// Releasable is true iff a DP mechanism has produced this value.
	Releasable bool

	// Aggregator carries the provenance of an un-released aggregate,
	// required for sensitivity derivation. nil once Releasable is true.
	Aggregator *Aggregator

	// CStability is the per-column multiplicity with which one input
	// record can affect this column (amplifies sensitivity).
	CStability []float64

	// DatasetID threads dataset provenance through transforms.
	DatasetID string
}

// NodeProperties maps an argument name ("data", "lower", "upper", ...) to
// the ValueProperties of the edge supplying it.
type NodeProperties map[string]ValueProperties

// Sensitivity is implemented by any component that can appear as an
// Aggregator: given the privacy definition, the properties under which it
// was computed, and a requested sensitivity space, it returns a per-column
// sensitivity array.
type Sensitivity interface {
	ComputeSensitivity(def PrivacyDefinition, props NodeProperties, space SensitivitySpace) (Value, error)
}

// Aggregator records which upstream component produced a non-releasable
// numeric summary, and the inputs it was computed over, so that a
// downstream mechanism node can derive sensitivity.
type Aggregator struct {
	Component          Sensitivity
	Properties         NodeProperties
	LipschitzConstant  []float64
}

// EffectiveCStability returns CStability broadcast to n columns, defaulting
// unset entries to 1 (no amplification).
func (p ValueProperties) EffectiveCStability(n int64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	switch len(p.CStability) {
	case 0:
		return out
	case 1:
		for i := range out {
			out[i] = p.CStability[0]
		}
		return out
	default:
		copy(out, p.CStability)
		return out
	}
}
