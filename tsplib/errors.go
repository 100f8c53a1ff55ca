// SPDX-License-Identifier: MIT
// Package tsplib: sentinel errors.
// Diagnostics wrap these with line context; match them with errors.Is.

package tsplib

import "errors"

var (
	// ErrResourceUnavailable marks an input that could not be opened.
	ErrResourceUnavailable = errors.New("tsplib: resource unavailable")

	// ErrMalformedHeader marks a missing, negative or non-numeric DIMENSION.
	ErrMalformedHeader = errors.New("tsplib: malformed header")

	// ErrMissingSection marks input that ended before the data section marker.
	ErrMissingSection = errors.New("tsplib: data section marker not found")

	// ErrUnsupportedFormat marks an EDGE_DATA_FORMAT other than EDGE_LIST.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported edge data format")

	// ErrMalformedData marks a non-numeric token or an incomplete edge line.
	ErrMalformedData = errors.New("tsplib: malformed data")

	// ErrNodeOutOfRange marks a node id outside 1..DIMENSION.
	ErrNodeOutOfRange = errors.New("tsplib: node out of range")

	// ErrNodeCountMismatch marks a tour whose accepted node count differs from DIMENSION.
	ErrNodeCountMismatch = errors.New("tsplib: node count mismatch")

	// ErrSelfLoop marks an edge line with u == v. The edge is still recorded.
	ErrSelfLoop = errors.New("tsplib: self-loop")

	// ErrDuplicateEdge marks an edge line repeating an earlier edge. It is still counted.
	ErrDuplicateEdge = errors.New("tsplib: duplicate edge")

	// ErrAllocation marks a DIMENSION too large to allocate storage for. Fatal.
	ErrAllocation = errors.New("tsplib: dimension too large to allocate")
)
