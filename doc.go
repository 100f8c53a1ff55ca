// Package hccheck verifies candidate solutions to the Hamiltonian cycle
// problem: given an undirected graph and a tour, is the tour a cycle that
// visits every node exactly once using only graph edges?
//
// What is in the box?
//
//   - TSPLIB-style readers and writers for HCP graph and tour files
//   - A dense 1-based adjacency matrix with O(1) edge lookup
//   - A staged validator returning a structured, printable verdict
//   - Generators for graphs with a planted Hamiltonian cycle
//   - The hccheck command line, with JSON output and a --watch mode
//
// Everything is organized under these packages:
//
//	matrix/       - Adjacency: flat (n+1)×(n+1) boolean storage, row/col 0 unused
//	tsplib/       - ReadGraph/ReadTour, LoadGraph/LoadTour, WriteGraph/WriteTour
//	tsp/          - Validate, Result, Reason and tour utilities
//	builder/      - Build with Cycle, Path, Complete, Wheel, Star, RandomChords
//	config/       - YAML + HCCHECK_* environment configuration
//	internal/cli/ - cobra commands: check, generate, watch
//	cmd/hccheck/  - the binary
//
// Quick example (the square graph and its ring tour):
//
//	    1───2
//	    │   │
//	    4───3
//
//	hccheck square.hcp square.tour
//	Graph has 4 nodes and 4 edges
//	Tour has 4 nodes
//	Valid Hamiltonian Path
//	Valid Hamiltonian Cycle
//
//	go install github.com/katalvlaran/hccheck/cmd/hccheck@latest
package hccheck
