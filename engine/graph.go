package engine

import (
	"github.com/katalvlaran/dpgraph/core"
	"github.com/katalvlaran/dpgraph/random"
)

// Evaluable is implemented by every node's concrete component: given the
// process-wide RNG and the gathered arguments of its parents (plus any
// constant public arguments baked into the node), it produces the node's
// ReleaseNode.
type Evaluable interface {
	Evaluate(src random.Source, args map[string]core.Value) (core.ReleaseNode, error)
}

// Node is one vertex of the executable graph: a component plus the wiring
// that tells the executor where to source each of its named arguments,
// either from an upstream node's release or from a constant baked in at
// graph-construction time.
type Node struct {
	Component  Evaluable
	Parents    map[string]core.NodeID
	PublicArgs map[string]core.Value
}

// Graph is an adjacency-list dependency graph over core.NodeID, adapted
// from core.Graph's vertex/edge bookkeeping: here "vertices" are
// components and "edges" are named argument dependencies.
type Graph struct {
	nodes map[core.NodeID]*Node
	order []core.NodeID
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[core.NodeID]*Node)}
}

// AddNode inserts a node under id, rejecting a duplicate id.
func (g *Graph) AddNode(id core.NodeID, n *Node) error {
	if _, exists := g.nodes[id]; exists {
		return core.Errorf(core.InvalidParameter, "engine: duplicate node id %d", id)
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return nil
}

// Node returns the node registered under id.
func (g *Graph) Node(id core.NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NumNodes returns the number of registered nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }
