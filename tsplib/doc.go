// Package tsplib reads and writes the plain-text, TSPLIB-like files used to
// describe Hamiltonian cycle instances and candidate tours.
//
// Two file kinds are understood:
//
//	graph (HCP)                       tour
//	-----------                       ----
//	NAME : square                     NAME : square.tour
//	DIMENSION : 4                     DIMENSION : 4
//	EDGE_DATA_SECTION                 TOUR_SECTION
//	1 2                               1 2 3
//	2 3                               4
//	...                               -1
//	-1
//
// Only DIMENSION is semantically required. NAME, TYPE and COMMENT are kept
// for display; any other header key is ignored. A graph edge section holds
// one "u v" pair per line and ends at a line whose first token is -1, at an
// EOF line, or at end of input. A tour section holds whitespace-separated
// node ids spread over any number of lines and ends at the first -1 token.
//
// The readers are tolerant. Problems such as a non-numeric DIMENSION,
// out-of-range ids, short tours or duplicate edges never abort parsing; each one is appended to the result's
// Diagnostics as an error wrapping one of this package's sentinels and
// logged at WARN level. Callers inspect the result (NodeCount()==0 means
// "nothing usable") or Warnings() for the aggregated list.
//
// Only two conditions are fatal and returned as an error: an I/O failure
// while reading an already opened input, and a DIMENSION above the
// configured maximum (ErrAllocation). LoadGraph/LoadTour turn an
// unopenable path into an empty result with an ErrResourceUnavailable
// diagnostic instead of an error.
//
// Node ids follow the 1-based convention documented in package matrix.
// Every call allocates its own result; the package keeps no state.
package tsplib
