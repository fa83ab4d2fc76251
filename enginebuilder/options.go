package enginebuilder

import "github.com/katalvlaran/dpgraph/core"

// Option customizes a Builder before any node is added.
type Option func(*Builder)

// WithPrivacyDefinition overrides the default (strictest) privacy
// definition every node's PropagateProperty validates against.
func WithPrivacyDefinition(def core.PrivacyDefinition) Option {
	return func(b *Builder) {
		b.def = def
	}
}
