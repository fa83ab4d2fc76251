package validator

import "github.com/katalvlaran/dpgraph/core"

// Component is implemented by every node type that can sit in a graph: it
// turns the properties of its operands into the properties of its own
// output edge, or a non-fatal Warning when the result is merely suspect
// rather than invalid.
type Component interface {
	PropagateProperty(def core.PrivacyDefinition, publicArgs map[string]core.Value, props core.NodeProperties, node core.NodeID) (core.Warnable[core.ValueProperties], error)
}

// Mechanism is implemented by node types that consume privacy budget: the
// usage they declare is fixed at construction and reported verbatim once
// PropagateProperty has validated it.
type Mechanism interface {
	Component
	GetPrivacyUsage() []core.PrivacyUsage
}

// Accuracy is implemented by mechanism node types whose usage admits a
// closed-form accuracy (a half-width confidence interval at level alpha).
type Accuracy interface {
	AccuracyToUsage(accuracy, alpha float64) (core.PrivacyUsage, error)
	UsageToAccuracy(alpha float64) (float64, error)
}
