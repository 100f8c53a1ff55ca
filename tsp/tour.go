// Package tsp - tour utilities.
//
// These helpers operate on open tours: a sequence of 1-based node ids whose
// closing edge back to the first node is implied. Provided helpers:
//   - ValidatePermutation: verify a permutation of {1..n}.
//   - ClosingEdges: list the n edges a tour uses, closure included.
//   - Canonical: rotation/orientation-free representative of a cycle.
//   - EqualModuloRotation: equality of two cycles up to rotation and direction.
//   - FormatPath: comma-separated rendering for display.
package tsp

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotPermutation indicates a sequence is not a permutation of {1..n}.
var ErrNotPermutation = errors.New("tsp: sequence is not a permutation")

// Edge is an undirected tour step.
type Edge struct {
	U, V int
}

// ValidatePermutation checks that seq contains every id in 1..len(seq)
// exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(seq []int) error {
	n := len(seq)
	if n == 0 {
		return ErrNotPermutation
	}
	seen := make([]bool, n+1)
	for _, v := range seq {
		// Out-of-range or repeated ids both break the bijection.
		if v < 1 || v > n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// ClosingEdges returns the n edges walked by seq, the last one being the
// closure (seq[n-1], seq[0]). A single-node tour yields its self-loop;
// an empty tour yields nil.
//
// Complexity: O(n).
func ClosingEdges(seq []int) []Edge {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]Edge, n)
	for i := 0; i < n-1; i++ {
		out[i] = Edge{U: seq[i], V: seq[i+1]}
	}
	out[n-1] = Edge{U: seq[n-1], V: seq[0]}

	return out
}

// Canonical returns a fresh copy of seq rotated so that its smallest id
// comes first, then oriented so the second element is the smaller of the
// two neighbours of the first. Two sequences describe the same undirected
// cycle iff their canonical forms are equal.
//
// Complexity: O(n) time, O(n) space.
func Canonical(seq []int) []int {
	n := len(seq)
	if n == 0 {
		return []int{}
	}
	pivot := 0
	for i := 1; i < n; i++ {
		if seq[i] < seq[pivot] {
			pivot = i
		}
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = seq[(pivot+i)%n]
	}
	// Reverse the tail when the left neighbour is smaller than the right one.
	if n > 2 && out[n-1] < out[1] {
		for i, k := 1, n-1; i < k; i, k = i+1, k-1 {
			out[i], out[k] = out[k], out[i]
		}
	}

	return out
}

// EqualModuloRotation reports whether a and b describe the same cycle,
// regardless of starting node and direction.
//
// Complexity: O(n).
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := Canonical(a), Canonical(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}

// FormatPath renders seq as "1, 2, 3".
func FormatPath(seq []int) string {
	var sb strings.Builder
	for i, v := range seq {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
