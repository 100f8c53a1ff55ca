// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// impl_cycle.go - Cycle() and CycleThrough(order).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Cycle emits i-(i+1) for i=1..n-1, then n-1.
//   • CycleThrough emits order[i]-order[i+1] and the closing edge; order must
//     be a permutation of 1..n (else ErrBadOrder).
//
// Complexity: O(n) edges, O(n) extra space for CycleThrough's check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

const (
	methodCycle        = "Cycle"
	methodCycleThrough = "CycleThrough"
	minCycleNodes      = 3
)

// Cycle returns a Constructor that builds the ring 1-2-…-n-1.
func Cycle() Constructor {
	return func(a *matrix.Adjacency, cfg builderConfig) error {
		return CycleThrough(Identity(a.NodeCount()))(a, cfg)
	}
}

// CycleThrough returns a Constructor that plants the Hamiltonian cycle
// visiting nodes in the given order.
func CycleThrough(order []int) Constructor {
	return func(a *matrix.Adjacency, _ builderConfig) error {
		n := a.NodeCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycleThrough, n, minCycleNodes, ErrTooFewVertices)
		}
		if !isPermutation(order, n) {
			return fmt.Errorf("%s: len=%d, n=%d: %w", methodCycleThrough, len(order), n, ErrBadOrder)
		}
		for i := 0; i < n; i++ {
			u, v := order[i], order[(i+1)%n]
			if err := a.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycleThrough, u, v, err)
			}
		}

		return nil
	}
}

// isPermutation reports whether order holds each id in 1..n exactly once.
func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n+1)
	for _, v := range order {
		if v < 1 || v > n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
