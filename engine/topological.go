package engine

import "github.com/katalvlaran/dpgraph/core"

// topologicalOrder runs Kahn's algorithm over g's parent edges, returning
// node ids such that every node appears after all of its parents. Ties
// are broken by insertion order, making the result deterministic for a
// fixed sequence of AddNode calls.
func topologicalOrder(g *Graph) ([]core.NodeID, error) {
	inDegree := make(map[core.NodeID]int, len(g.nodes))
	for id, n := range g.nodes {
		if _, ok := inDegree[id]; !ok {
			inDegree[id] = 0
		}
		distinct := make(map[core.NodeID]bool, len(n.Parents))
		for _, parent := range n.Parents {
			if _, ok := g.nodes[parent]; !ok {
				return nil, core.Errorf(core.MissingArgument, "engine: node %d references unknown parent %d", id, parent)
			}
			distinct[parent] = true
		}
		inDegree[id] += len(distinct)
	}

	ready := make([]core.NodeID, 0, len(g.order))
	for _, id := range g.order {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	children := childrenOf(g)
	order := make([]core.NodeID, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, child := range children[id] {
			inDegree[child]--
			if inDegree[child] == 0 {
				ready = append(ready, child)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, core.NewError(core.InvalidParameter, "engine: graph contains a cycle")
	}
	return order, nil
}

// childrenOf inverts the parent edges into a node -> dependents map, in
// graph insertion order, so that topologicalOrder's worklist processing
// stays deterministic.
func childrenOf(g *Graph) map[core.NodeID][]core.NodeID {
	children := make(map[core.NodeID][]core.NodeID, len(g.nodes))
	for _, id := range g.order {
		n := g.nodes[id]
		seen := make(map[core.NodeID]bool, len(n.Parents))
		for _, parent := range n.Parents {
			if seen[parent] {
				continue
			}
			seen[parent] = true
			children[parent] = append(children[parent], id)
		}
	}
	return children
}
