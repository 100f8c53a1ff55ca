// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// config.go - internal configuration and deterministic defaults.
//   • rng      = nil (pure/deterministic unless seeded)
//   • maxCells = matrix.DefaultMaxCells

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hccheck/matrix"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	maxCells int
}

// newBuilderConfig applies options in order; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxCells: matrix.DefaultMaxCells}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
