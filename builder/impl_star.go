// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// impl_star.go - Star(): hub 1 joined to leaves 2..n.
// n ≥ 2. For n ≥ 3 the star has no Hamiltonian cycle, which makes it a
// convenient negative fixture.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 1
)

// Star returns a Constructor that emits spokes 1-i for i=2..n.
func Star() Constructor {
	return func(a *matrix.Adjacency, _ builderConfig) error {
		n := a.NodeCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := starHub + 1; i <= n; i++ {
			if err := a.AddEdge(starHub, i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, starHub, i, err)
			}
		}

		return nil
	}
}
