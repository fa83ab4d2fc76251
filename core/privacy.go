package core

// PrivacyUsageKind distinguishes Pure (ε) from Approximate (ε, δ) usage.
type PrivacyUsageKind uint8

const (
	PrivacyUsagePure PrivacyUsageKind = iota
	PrivacyUsageApproximate
)

// PrivacyUsage is either Pure{ε} or Approximate{ε, δ}. Composition is
// additive on both parameters (Add). Delta is always 0 for Pure usage.
type PrivacyUsage struct {
	Kind    PrivacyUsageKind
	Epsilon float64
	Delta   float64
}

// PureUsage builds a Pure{ε} usage.
func PureUsage(epsilon float64) PrivacyUsage {
	return PrivacyUsage{Kind: PrivacyUsagePure, Epsilon: epsilon}
}

// ApproximateUsage builds an Approximate{ε, δ} usage.
func ApproximateUsage(epsilon, delta float64) PrivacyUsage {
	return PrivacyUsage{Kind: PrivacyUsageApproximate, Epsilon: epsilon, Delta: delta}
}

// GetEpsilon returns the usage's ε.
func (u PrivacyUsage) GetEpsilon() (float64, error) {
	if u.Epsilon <= 0 {
		return 0, NewError(PrivacyBudgetInvalid, "epsilon must be greater than zero")
	}
	return u.Epsilon, nil
}

// GetDelta returns the usage's δ: 0 for Pure usage, otherwise δ after
// checking that it lies in [0, 1).
func (u PrivacyUsage) GetDelta() (float64, error) {
	if u.Kind == PrivacyUsagePure {
		return 0, nil
	}
	if u.Delta < 0 || u.Delta >= 1 {
		return 0, NewError(PrivacyBudgetInvalid, "delta must be in [0, 1)")
	}
	return u.Delta, nil
}

// Add composes two usages additively on both ε and δ; the result is
// Approximate if either operand is.
func (u PrivacyUsage) Add(o PrivacyUsage) PrivacyUsage {
	kind := PrivacyUsagePure
	if u.Kind == PrivacyUsageApproximate || o.Kind == PrivacyUsageApproximate {
		kind = PrivacyUsageApproximate
	}
	return PrivacyUsage{Kind: kind, Epsilon: u.Epsilon + o.Epsilon, Delta: u.Delta + o.Delta}
}

// EffectiveToActual scales an effective usage (stated w.r.t. unit-weight
// adjacency) into an actual usage, corrected by the column's c_stability
// and the definition's group size: actual.ε = effective.ε · c · g.
func (u PrivacyUsage) EffectiveToActual(cStability float64, groupSize uint64) PrivacyUsage {
	factor := cStability * float64(groupSize)
	return PrivacyUsage{Kind: u.Kind, Epsilon: u.Epsilon * factor, Delta: u.Delta * factor}
}

// Neighboring selects the adjacency relation two datasets must satisfy to
// be considered neighbors.
type Neighboring uint8

const (
	AddRemove Neighboring = iota
	Substitute
)

// PrivacyDefinition is the set of policy knobs threaded through validation
// and evaluation.
type PrivacyDefinition struct {
	ProtectElapsedTime     bool
	ProtectFloatingPoint   bool
	GroupSize              uint64
	StrictParameterChecks  bool
	Neighboring            Neighboring
}

// DefaultPrivacyDefinition returns a definition with group size 1 and both
// side-channel protections enabled — the strictest posture a caller can
// downgrade from, rather than the weakest one they must remember to harden.
func DefaultPrivacyDefinition() PrivacyDefinition {
	return PrivacyDefinition{
		ProtectElapsedTime:    true,
		ProtectFloatingPoint:  true,
		GroupSize:             1,
		StrictParameterChecks: false,
		Neighboring:           AddRemove,
	}
}

// SensitivityKind distinguishes the K-norm spaces from the Exponential
// mechanism's utility space.
type SensitivityKind uint8

const (
	SensitivityKNorm SensitivityKind = iota
	SensitivityExponential
)

// SensitivitySpace is either KNorm(k) for k in {1, 2} or Exponential.
type SensitivitySpace struct {
	Kind SensitivityKind
	K    int
}

// KNorm builds a KNorm(k) sensitivity space.
func KNorm(k int) SensitivitySpace {
	return SensitivitySpace{Kind: SensitivityKNorm, K: k}
}

// ExponentialSpace builds the Exponential-mechanism utility space.
func ExponentialSpace() SensitivitySpace {
	return SensitivitySpace{Kind: SensitivityExponential}
}

// ReleaseNode is the output of evaluating a graph node: a value, the
// privacy usage it consumed (nil for non-mechanism nodes), and whether it
// is authorized for downstream visibility.
type ReleaseNode struct {
	Value         Value
	PrivacyUsages []PrivacyUsage
	Public        bool
}
