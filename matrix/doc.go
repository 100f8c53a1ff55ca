// Package matrix provides the boolean adjacency matrix used to store
// undirected graphs read from TSPLIB-style edge lists.
//
// Indexing convention (single source of truth for the whole module):
//
//	Node ids are 1-based: a graph of order n has nodes 1..n.
//	The matrix is (n+1)×(n+1); row 0 and column 0 exist only so that a
//	node id can be used as an index without translation. They are
//	always false and can never be set.
//
// Storage is one owned flat []bool in row-major order (index u*stride+v,
// stride = n+1), so an Adjacency is released as a single allocation once
// it becomes unreachable.
//
// Reads never panic: HasEdge reports false for any id outside 1..n.
// Writes return ErrOutOfRange instead. Allocation is guarded by an
// explicit cell limit and reported as ErrTooLarge.
//
// An Adjacency is not safe for concurrent mutation, but any number of
// goroutines may read it once construction has finished.
package matrix
