// Package dpgraph is a differentially private release-mechanism library
// and analysis-graph runtime.
//
// What is dpgraph?
//
//	A small, dependency-light toolkit that brings together:
//
//	  - Release mechanisms: Laplace, Gaussian (classic and analytic),
//	    simple geometric, exponential, and snapping (Mironov 2012)
//	  - Property propagation: sensitivity and privacy-usage tracking
//	    carried on every graph edge, validated before any noise is drawn
//	  - A deterministic graph executor: topological evaluation with a
//	    reference-counted release table bounding memory on long pipelines
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	core/          - Value, ValueProperties, PrivacyDefinition, and errors
//	mechanism/     - the five release mechanisms over raw float64/int64
//	validator/     - Component/Mechanism nodes wrapping each mechanism
//	engine/        - Graph and Executor: topological dispatch and release
//	enginebuilder/ - a fluent constructor assembling validated graphs
//	abi/           - flat, error-free wrappers mirroring the C ABI
//	dataset/       - Dataset/Table contracts for feeding a graph
//
// NewBuilder and Run below compose enginebuilder and engine for the common case
// of building one graph and running it once; callers who need to inspect
// or reuse a graph across multiple runs should use enginebuilder and
// engine directly.
package dpgraph

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/engine"
	"github.com/katalvlaran/dpgraph/enginebuilder"
	"github.com/katalvlaran/dpgraph/random"
)

// Builder re-exports enginebuilder.Builder so callers need only import
// this package for the common construct-then-run workflow.
type Builder = enginebuilder.Builder

// Option re-exports enginebuilder.Option.
type Option = enginebuilder.Option

// NewBuilder returns a Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	return enginebuilder.New(opts...)
}

// Run builds b's graph and runs it to completion against the default
// process-wide random source, returning every node's release.
func Run(b *Builder) (map[core.NodeID]core.ReleaseNode, error) {
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return engine.NewExecutor(random.Default()).Run(g)
}
