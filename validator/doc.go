// Package validator propagates ValueProperties across graph edges and
// exposes the capability interfaces a node type may implement on top of
// that: Mechanism (a declared, fixed privacy usage) and Accuracy
// (accuracy/usage conversion). Node types compose these the way the
// teacher composes independent capabilities (traversal, cloning, matrix
// export) onto one concrete type, dispatched through a static Registry
// keyed by component tag rather than a type switch.
package validator
