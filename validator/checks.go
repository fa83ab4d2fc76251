package validator

import "github.com/katalvlaran/dpgraph/core"

// defaultStrictEpsilonBound is the threshold a StrictParameterChecks
// definition warns above; it is generous on purpose, since the warning is
// advisory rather than a hard rejection.
const defaultStrictEpsilonBound = 10.0

// privacyUsageCheck rejects epsilon <= 0 and delta outside [0,1) via
// usage's own accessors, and appends an advisory warning when strict
// checks are enabled and epsilon exceeds defaultStrictEpsilonBound.
func privacyUsageCheck(def core.PrivacyDefinition, usage core.PrivacyUsage) ([]core.Warning, error) {
	if _, err := usage.GetEpsilon(); err != nil {
		return nil, err
	}
	if _, err := usage.GetDelta(); err != nil {
		return nil, err
	}
	var warnings []core.Warning
	if def.StrictParameterChecks && usage.Epsilon > defaultStrictEpsilonBound {
		warnings = append(warnings, core.Warning{Message: "privacy usage epsilon exceeds the strict-checks threshold"})
	}
	return warnings, nil
}

// aggregatorCheck extracts the "data" operand's properties and enforces
// invariant 7: a mechanism node's parent must be non-releasable and carry
// an aggregator recording how its sensitivity can be derived.
func aggregatorCheck(props core.NodeProperties) (core.ValueProperties, *core.Aggregator, error) {
	data, ok := props["data"]
	if !ok {
		return core.ValueProperties{}, nil, core.NewError(core.MissingArgument, "mechanism: missing \"data\" operand")
	}
	if data.Releasable {
		return core.ValueProperties{}, nil, core.NewError(core.PropertyViolation, "mechanism: operand is already releasable")
	}
	if data.Aggregator == nil {
		return core.ValueProperties{}, nil, core.NewError(core.PropertyViolation, "mechanism: operand has no aggregator to derive sensitivity from")
	}
	return data, data.Aggregator, nil
}

// elementTypeCheck rejects a data type that does not match a mechanism's
// required element type.
func elementTypeCheck(got, want core.DataType) error {
	if got != want {
		return core.Errorf(core.TypeMismatch, "mechanism: expected %s data, got %s", want, got)
	}
	return nil
}

// computeSensitivity asks the aggregator for its sensitivity under space,
// then scales each column by the aggregator's recorded Lipschitz constant
// (defaulting to 1 per column when absent).
func computeSensitivity(def core.PrivacyDefinition, agg *core.Aggregator, space core.SensitivitySpace) ([]float64, error) {
	raw, err := agg.Component.ComputeSensitivity(def, agg.Properties, space)
	if err != nil {
		return nil, err
	}
	values, err := raw.Float()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i, v := range values {
		lipschitz := 1.0
		switch {
		case len(agg.LipschitzConstant) == 1:
			lipschitz = agg.LipschitzConstant[0]
		case len(agg.LipschitzConstant) == len(values):
			lipschitz = agg.LipschitzConstant[i]
		}
		out[i] = v * lipschitz
	}
	return out, nil
}

// releasedProperties returns data's properties with releasable set and
// the aggregator cleared: a mechanism's output is a noised scalar, not
// a sensitivity-bearing aggregate, so nothing further can compose a
// sensitivity on top of it.
func releasedProperties(data core.ValueProperties) core.ValueProperties {
	out := data
	out.Releasable = true
	out.Aggregator = nil
	return out
}
