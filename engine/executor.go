package engine

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// Executor runs a Graph to completion: single-threaded, cooperative,
// node-by-node. There are no suspension points mid-node; cancellation
// (if ever added) can only happen between dispatches.
type Executor struct {
	Source random.Source
}

// NewExecutor builds an Executor bound to src, the process-wide RNG every
// node's Evaluate will draw from.
func NewExecutor(src random.Source) *Executor {
	return &Executor{Source: src}
}

// Run executes every node of g in topological order, gathering each
// node's parents into a keyed argument map, dispatching to its
// Evaluate, and storing the resulting ReleaseNode. A released value is
// retained only until every node that depends on it has fired, per the
// reference-counted release table; it is then dropped to bound memory
// use on a long pipeline.
//
// Errors from Evaluate abort execution immediately and are annotated
// with the offending node id.
func (e *Executor) Run(g *Graph) (map[core.NodeID]core.ReleaseNode, error) {
	order, err := topologicalOrder(g)
	if err != nil {
		return nil, err
	}

	refCount := referenceCounts(g)
	live := make(map[core.NodeID]core.ReleaseNode, len(order))
	final := make(map[core.NodeID]core.ReleaseNode, len(order))

	for _, id := range order {
		node := g.nodes[id]
		args := make(map[string]core.Value, len(node.Parents)+len(node.PublicArgs))
		for name, value := range node.PublicArgs {
			args[name] = value
		}
		for name, parent := range node.Parents {
			release, ok := live[parent]
			if !ok {
				return nil, core.Errorf(core.MissingArgument, "engine: parent %d of node %d not available", parent, id).WithNode(id)
			}
			args[name] = release.Value
		}

		release, err := node.Component.Evaluate(e.Source, args)
		if err != nil {
			if structured, ok := err.(*core.Error); ok {
				return nil, structured.WithNode(id)
			}
			return nil, core.Errorf(core.InvalidParameter, "engine: node %d: %v", id, err).WithNode(id)
		}
		live[id] = release
		final[id] = release

		distinct := make(map[core.NodeID]bool, len(node.Parents))
		for _, parent := range node.Parents {
			distinct[parent] = true
		}
		for parent := range distinct {
			refCount[parent]--
			if refCount[parent] <= 0 {
				delete(live, parent)
			}
		}
	}

	return final, nil
}

// referenceCounts returns, per node id, the number of distinct children
// that depend on it as a parent.
func referenceCounts(g *Graph) map[core.NodeID]int {
	counts := make(map[core.NodeID]int, len(g.nodes))
	for _, n := range g.nodes {
		distinct := make(map[core.NodeID]bool, len(n.Parents))
		for _, parent := range n.Parents {
			distinct[parent] = true
		}
		for parent := range distinct {
			counts[parent]++
		}
	}
	return counts
}
