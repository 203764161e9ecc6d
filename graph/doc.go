// Package graph runs the graph-expansion-and-property-propagation engine
// over a computation graph: it validates the graph is acyclic, expands
// composite components to a fixed point, and propagates static properties
// from root datasets down to every reachable node.
package graph
