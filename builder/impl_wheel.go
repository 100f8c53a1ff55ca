// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// impl_wheel.go - Wheel(): W_n = C_{n-1} on nodes 1..n-1 plus hub n.
//
// Contract:
//   • n ≥ 4, because the rim cycle needs at least 3 nodes.
//   • Rim edges first (i-i+1, n-1-1), then spokes n-i for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel whose hub is node n.
func Wheel() Constructor {
	return func(a *matrix.Adjacency, _ builderConfig) error {
		n := a.NodeCount()
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub := n
		for i := 1; i < hub; i++ {
			next := i%(hub-1) + 1
			if err := a.AddEdge(i, next); err != nil {
				return fmt.Errorf("%s: rim AddEdge(%d,%d): %w", methodWheel, i, next, err)
			}
		}
		for i := 1; i < hub; i++ {
			if err := a.AddEdge(hub, i); err != nil {
				return fmt.Errorf("%s: spoke AddEdge(%d,%d): %w", methodWheel, hub, i, err)
			}
		}

		return nil
	}
}
