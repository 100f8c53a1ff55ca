// Package tsp verifies candidate solutions to the Hamiltonian cycle
// decision problem, the unweighted core of the Travelling Salesman Problem.
//
// Validate walks a tour over a graph and reports, as a structured Result,
// whether the tour is a Hamiltonian cycle and, if not, the first reason it
// fails. The checks run in a fixed order and stop at the first failure:
//
//  1. size      - tour length must equal the graph's node count;
//  2. non-empty - a graph with no nodes has no cycle;
//  3. walk      - every consecutive pair must be an edge;
//  4. coverage  - the walk must touch every node (repeats show up here);
//  5. closure   - the last node must connect back to the first.
//
// Validation is O(n) time and O(n) extra space on top of the caller's
// graph. It never prints; Result.Report renders the human-readable
// messages when a caller wants verbose output, and Result.Err converts a
// failure into one of this package's sentinel errors.
//
// Node ids are 1-based (see package matrix). Id 0 marks an absent slot in
// a short tour and, like any out-of-range id, is adjacent to nothing and
// never counts as visited.
//
// The package has no global state; concurrent calls are safe as long as
// the Graph and Tour values are not mutated meanwhile.
package tsp
