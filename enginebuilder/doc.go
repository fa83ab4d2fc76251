// Package enginebuilder is a fluent, deterministic constructor over
// engine.Graph: each method appends one validated node and returns its
// id, threading core.PrivacyDefinition and a validator.Registry through a
// single orchestrator the way builder.BuildGraph composes a fixed
// sequence of Constructor closures over one core.Graph. Unlike
// builder.BuildGraph, validation happens inline at each call (via
// validator.Component.PropagateProperty) rather than as a separate pass,
// since every node's output properties are needed to validate the next.
package enginebuilder
