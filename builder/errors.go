// SPDX-License-Identifier: MIT
// Package: hccheck/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context as "<Method>: ...: %w".

package builder

import "errors"

// ErrTooFewVertices indicates n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadOrder indicates a CycleThrough order that is not a permutation of 1..n.
var ErrBadOrder = errors.New("builder: order is not a permutation of the nodes")

// ErrConstructFailed indicates a nil constructor or a failed allocation.
var ErrConstructFailed = errors.New("builder: construction failed")
