// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// impl_random_chords.go - RandomChords(p): Erdős-Rényi noise on top of
// whatever earlier constructors built.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic.
//   • Trials run over unordered pairs i<j in lexicographic order; pairs
//     already adjacent are skipped without consuming a draw. No self-loops.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

const (
	methodRandomChords = "RandomChords"
	minChordNodes      = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomChords returns a Constructor that adds each missing edge with
// independent probability p.
func RandomChords(p float64) Constructor {
	return func(a *matrix.Adjacency, cfg builderConfig) error {
		n := a.NodeCount()
		if n < minChordNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomChords, n, minChordNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomChords, p, probMin, probMax, ErrInvalidProbability)
		}
		if p == probMin {
			return nil
		}
		if cfg.rng == nil && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomChords, ErrNeedRandSource)
		}

		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if a.HasEdge(i, j) {
					continue
				}
				// p == 1 needs no draw; the nil-rng check above allows it.
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := a.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomChords, i, j, err)
				}
			}
		}

		return nil
	}
}
