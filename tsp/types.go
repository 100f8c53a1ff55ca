package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Result.Err. Match them with errors.Is.
var (
	// ErrSizeMismatch indicates the tour and graph declare different node counts.
	ErrSizeMismatch = errors.New("tsp: tour and graph node counts differ")

	// ErrEmptyGraph indicates a graph with no nodes.
	ErrEmptyGraph = errors.New("tsp: graph has no nodes")

	// ErrMissingEdge indicates two consecutive tour nodes are not adjacent.
	ErrMissingEdge = errors.New("tsp: missing edge between consecutive tour nodes")

	// ErrIncompleteCoverage indicates the walk did not visit every node.
	ErrIncompleteCoverage = errors.New("tsp: not all nodes visited")

	// ErrOpenCycle indicates the last tour node does not connect to the first.
	ErrOpenCycle = errors.New("tsp: first and last node not connected")
)

// Graph is the read-only adjacency view Validate needs.
// *tsplib.Graph and *matrix.Adjacency both satisfy it.
type Graph interface {
	// NodeCount returns n; nodes are 1..n.
	NodeCount() int
	// HasEdge reports adjacency and must return false for ids outside 1..n.
	HasEdge(u, v int) bool
}

// Tour is the read-only sequence view Validate needs. *tsplib.Tour satisfies it.
type Tour interface {
	// NodeCount returns the declared tour length.
	NodeCount() int
	// Nodes returns the visiting order; 0 marks an absent slot.
	Nodes() []int
}

// Seq adapts a plain slice to Tour; its declared length is len(s).
type Seq []int

// NodeCount returns len(s).
func (s Seq) NodeCount() int { return len(s) }

// Nodes returns s.
func (s Seq) Nodes() []int { return s }

// Reason classifies why a tour is not a Hamiltonian cycle.
type Reason int

const (
	// ReasonNone means the tour is valid.
	ReasonNone Reason = iota
	// ReasonSizeMismatch means tour and graph node counts differ.
	ReasonSizeMismatch
	// ReasonEmptyGraph means the graph has no nodes.
	ReasonEmptyGraph
	// ReasonMissingEdge means Result.From and Result.To are not adjacent.
	ReasonMissingEdge
	// ReasonIncompleteCoverage means fewer than n distinct nodes were visited.
	ReasonIncompleteCoverage
	// ReasonOpenCycle means the closing edge (Result.From, Result.To) is missing.
	ReasonOpenCycle
)

var reasonNames = [...]string{
	ReasonNone:               "none",
	ReasonSizeMismatch:       "size mismatch",
	ReasonEmptyGraph:         "empty graph",
	ReasonMissingEdge:        "missing edge",
	ReasonIncompleteCoverage: "incomplete coverage",
	ReasonOpenCycle:          "open cycle",
}

// String returns a short lower-case label.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}

// MarshalText lets Reason appear as its label in JSON output.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a label produced by MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	for i, name := range reasonNames {
		if name == string(text) {
			*r = Reason(i)
			return nil
		}
	}

	return fmt.Errorf("tsp: unknown reason %q", text)
}

// Result is the outcome of Validate. Fields that do not apply to the
// failing check are left zero.
type Result struct {
	// Valid reports whether the tour is a Hamiltonian cycle.
	Valid bool `json:"valid"`

	// Reason is ReasonNone when Valid, otherwise the first failing check.
	Reason Reason `json:"reason"`

	// TourNodes and GraphNodes are the declared counts compared by the size check.
	TourNodes  int `json:"tour_nodes"`
	GraphNodes int `json:"graph_nodes"`

	// From and To name the missing walk or closure edge.
	From int `json:"from,omitempty"`
	To   int `json:"to,omitempty"`

	// Visited counts distinct in-range nodes seen before the walk ended.
	Visited int `json:"visited"`

	// Path reports that walk and coverage passed: the tour is a Hamiltonian
	// path even if the closure check then failed.
	Path bool `json:"path"`
}
