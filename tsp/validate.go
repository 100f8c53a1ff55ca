// Package tsp - Hamiltonian cycle validation.
//
// Design principles:
//   - Deterministic, side-effect free; reporting is a separate step.
//   - No panics on user input: ids outside 1..n are treated as absent.
//   - O(n) time, one O(n) boolean marker slice.
package tsp

import (
	"errors"
	"fmt"
	"io"
)

// noNode marks "no previous node" during the walk.
const noNode = -1

// Validate checks whether t is a Hamiltonian cycle of g.
//
// Stage 1: size check, t.NodeCount() == g.NodeCount().
// Stage 2: non-empty check, g.NodeCount() > 0.
// Stage 3: walk the sequence; each consecutive pair must be an edge. A
// repeated node is not rejected here, it simply does not raise the count.
// Stage 4: coverage, the count of distinct visited nodes must equal n.
// Stage 5: closure, the last node must be adjacent to the first.
//
// If t.Nodes() is shorter than the declared count, missing positions are
// read as 0 (absent) and fail the walk.
//
// Complexity: O(n) time, O(n) space.
func Validate(t Tour, g Graph) Result {
	n := g.NodeCount()
	res := Result{TourNodes: t.NodeCount(), GraphNodes: n}

	// Stage 1: size.
	if res.TourNodes != n {
		res.Reason = ReasonSizeMismatch
		return res
	}
	// Stage 2: non-empty.
	if n == 0 {
		res.Reason = ReasonEmptyGraph
		return res
	}

	// Stage 3: walk.
	seq := t.Nodes()
	visited := make([]bool, n+1) // index 0 unused, as in the adjacency
	prev := noNode
	for i := 0; i < n; i++ {
		cur := nodeAt(seq, i)
		if prev != noNode && !g.HasEdge(prev, cur) {
			res.Reason = ReasonMissingEdge
			res.From, res.To = prev, cur
			return res
		}
		if cur >= 1 && cur <= n && !visited[cur] {
			visited[cur] = true
			res.Visited++
		}
		prev = cur
	}

	// Stage 4: coverage.
	if res.Visited != n {
		res.Reason = ReasonIncompleteCoverage
		return res
	}
	res.Path = true

	// Stage 5: closure.
	first, last := nodeAt(seq, 0), nodeAt(seq, n-1)
	if !g.HasEdge(first, last) {
		res.Reason = ReasonOpenCycle
		res.From, res.To = last, first
		return res
	}

	res.Valid = true
	return res
}

// nodeAt returns seq[i], or 0 (absent) past the end of seq.
func nodeAt(seq []int, i int) int {
	if i < len(seq) {
		return seq[i]
	}

	return 0
}

// Err returns nil for a valid result, otherwise the matching sentinel
// wrapped with the failure's details.
func (r Result) Err() error {
	switch r.Reason {
	case ReasonNone:
		if r.Valid {
			return nil
		}
		// A zero Result was never produced by Validate.
		return errors.New("tsp: unvalidated result")
	case ReasonSizeMismatch:
		return fmt.Errorf("tour has %d nodes, graph has %d: %w", r.TourNodes, r.GraphNodes, ErrSizeMismatch)
	case ReasonEmptyGraph:
		return ErrEmptyGraph
	case ReasonMissingEdge:
		return fmt.Errorf("no edge between %d and %d: %w", r.From, r.To, ErrMissingEdge)
	case ReasonIncompleteCoverage:
		return fmt.Errorf("visited %d, expected %d: %w", r.Visited, r.GraphNodes, ErrIncompleteCoverage)
	case ReasonOpenCycle:
		return fmt.Errorf("no edge between %d and %d: %w", r.From, r.To, ErrOpenCycle)
	default:
		return fmt.Errorf("tsp: unknown reason %d", int(r.Reason))
	}
}

// Messages returns the verbose diagnostic lines for r, in the order a
// validating run would emit them. A tour that is a Hamiltonian path gets
// the path line before any closure verdict.
func (r Result) Messages() []string {
	var out []string
	switch r.Reason {
	case ReasonSizeMismatch:
		out = append(out, "Tour and graph do not contain same number of nodes")
	case ReasonEmptyGraph:
		out = append(out, "graph has no nodes")
	case ReasonMissingEdge:
		out = append(out, fmt.Sprintf("No edge between %d and %d", r.From, r.To))
	case ReasonIncompleteCoverage:
		out = append(out, fmt.Sprintf("Not all nodes visited (visited %d, expected %d)", r.Visited, r.GraphNodes))
	}
	if r.Path {
		out = append(out, "Valid Hamiltonian Path")
	}
	if r.Reason == ReasonOpenCycle {
		out = append(out, "First node does not connect with last node of tour")
	}
	if r.Valid {
		out = append(out, "Valid Hamiltonian Cycle")
	}

	return out
}

// Report writes Messages to w, one per line.
func (r Result) Report(w io.Writer) error {
	for _, m := range r.Messages() {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}

	return nil
}
