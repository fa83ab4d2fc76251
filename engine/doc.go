// Package engine executes a validated graph of components in topological
// order: for each node it gathers the releases of its parents into a
// keyed argument map, dispatches to the node's Evaluate, and retires
// parent releases once every consumer has fired. Grounded on the
// topological worklist bookkeeping of flow.EdmondsKarp/flow.Dinic (a BFS
// frontier consumed level by level) and on an adjacency-list dependency
// count in the style of core.Graph.
package engine
