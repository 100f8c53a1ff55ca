// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// impl_complete.go - Complete(): K_n without self-loops.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Each unordered pair {i,j}, i<j, is emitted exactly once in
//     lexicographic order.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair of distinct nodes.
func Complete() Constructor {
	return func(a *matrix.Adjacency, _ builderConfig) error {
		n := a.NodeCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if err := a.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
