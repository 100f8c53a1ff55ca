// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// impl_path.go - Path(): the Hamiltonian path 1-2-…-n without closure.
// n ≥ 1; a 1-node path has no edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that emits i-(i+1) for i=1..n-1.
func Path() Constructor {
	return func(a *matrix.Adjacency, _ builderConfig) error {
		n := a.NodeCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := a.AddEdge(i, i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
			}
		}

		return nil
	}
}
