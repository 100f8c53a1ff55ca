// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// api.go - public entry points: Build and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hccheck/matrix"
)

// Constructor adds edges to a over its nodes 1..a.NodeCount(). It must
// validate its parameters and return sentinel errors instead of panicking.
type Constructor func(a *matrix.Adjacency, cfg builderConfig) error

// Build allocates an n-node adjacency, resolves the options and applies
// the constructors in order. Errors are wrapped as "Build: %w".
//
// Complexity: O(n²) allocation plus Σ constructor cost.
func Build(n int, bopts []BuilderOption, cons ...Constructor) (*matrix.Adjacency, error) {
	cfg := newBuilderConfig(bopts...)
	a, err := matrix.NewAdjacencyLimit(n, cfg.maxCells)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(a, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return a, nil
}

// Identity returns the tour 1, 2, ..., n.
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Shuffle returns a uniformly random permutation of 1..n drawn from the
// resolved RNG. It returns ErrNeedRandSource when no RNG is configured.
func Shuffle(n int, bopts ...BuilderOption) ([]int, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Shuffle: %w", ErrNeedRandSource)
	}
	out := Identity(n)
	cfg.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out, nil
}
