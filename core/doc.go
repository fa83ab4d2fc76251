// Package core defines the data model shared by every dpgraph subsystem:
// the tagged-union Value, its compile-time ValueProperties, the
// PrivacyUsage/PrivacyDefinition pair that drives the accountant, the
// ReleaseNode produced by graph evaluation, and the finite ErrorKind
// vocabulary used across the module instead of ad-hoc error strings.
//
// Every other package (random, noise, mechanism, arrayop, accountant,
// validator, transform, engine) imports core, and core imports no other
// package of this module, so it sits at the root of the dependency graph.
package core
