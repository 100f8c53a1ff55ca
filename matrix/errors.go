// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and mutators return these sentinels (possibly wrapped
// with %w for context); callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the requested node count is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a node id is outside 1..n.
	// AddEdge MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: node id out of range")

	// ErrTooLarge indicates that the (n+1)² cell buffer would exceed the
	// configured limit or overflow int. It stands in for allocation failure.
	ErrTooLarge = errors.New("matrix: adjacency too large to allocate")

	// ErrNilMatrix indicates that a nil *Adjacency receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
