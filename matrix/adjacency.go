// Package matrix: Adjacency is a dense, row-major boolean matrix over
// 1-based node ids, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// DefaultMaxCells bounds the flat buffer allocated by NewAdjacency.
// 1<<31 cells is 2 GiB of bool storage, i.e. a graph of ~46k nodes.
const DefaultMaxCells = 1 << 31

// Adjacency is a symmetric (n+1)×(n+1) boolean matrix.
// stride is n+1 and cells holds stride*stride elements; row/col 0 stay false.
type Adjacency struct {
	n      int    // node count
	stride int    // row length, n+1
	cells  []bool // flat backing storage, length == stride*stride
}

// NewAdjacency allocates an empty adjacency for nodes 1..n, bounded by
// DefaultMaxCells. n == 0 is legal and yields the degenerate 1×1 matrix.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*Adjacency, error) {
	return NewAdjacencyLimit(n, DefaultMaxCells)
}

// NewAdjacencyLimit is NewAdjacency with an explicit cell budget.
// Stage 1 (Validate): n ≥ 0 and (n+1)² ≤ maxCells without overflow.
// Stage 2 (Prepare): allocate one flat slice.
func NewAdjacencyLimit(n, maxCells int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, ErrBadShape)
	}
	stride := n + 1
	// Division form avoids overflowing stride*stride on huge inputs.
	if maxCells <= 0 || stride > maxCells/stride {
		return nil, fmt.Errorf("NewAdjacency(%d): exceeds cell limit %d: %w", n, maxCells, ErrTooLarge)
	}

	return &Adjacency{n: n, stride: stride, cells: make([]bool, stride*stride)}, nil
}

// NodeCount returns n, the highest valid node id.
func (a *Adjacency) NodeCount() int {
	if a == nil {
		return 0
	}

	return a.n
}

// inRange reports whether id addresses a real node (1..n).
func (a *Adjacency) inRange(id int) bool {
	return id >= 1 && id <= a.n
}

// HasEdge reports whether u and v are adjacent. Ids outside 1..n, including
// the filler id 0, are never adjacent to anything.
// Complexity: O(1).
func (a *Adjacency) HasEdge(u, v int) bool {
	if a == nil || !a.inRange(u) || !a.inRange(v) {
		return false
	}

	return a.cells[u*a.stride+v]
}

// AddEdge records the undirected edge {u,v} by setting both (u,v) and (v,u).
// Setting an existing edge is a no-op; u == v sets the diagonal cell.
// Complexity: O(1).
func (a *Adjacency) AddEdge(u, v int) error {
	return a.set(u, v, true)
}

// RemoveEdge clears the undirected edge {u,v}. Clearing a missing edge is a no-op.
func (a *Adjacency) RemoveEdge(u, v int) error {
	return a.set(u, v, false)
}

func (a *Adjacency) set(u, v int, val bool) error {
	if a == nil {
		return ErrNilMatrix
	}
	if !a.inRange(u) || !a.inRange(v) {
		return fmt.Errorf("edge (%d,%d) with n=%d: %w", u, v, a.n, ErrOutOfRange)
	}
	a.cells[u*a.stride+v] = val
	a.cells[v*a.stride+u] = val

	return nil
}

// Degree returns the number of neighbours of u (a self-loop counts once).
// Complexity: O(n).
func (a *Adjacency) Degree(u int) int {
	if a == nil || !a.inRange(u) {
		return 0
	}
	var d int
	row := a.cells[u*a.stride : (u+1)*a.stride]
	for v := 1; v <= a.n; v++ {
		if row[v] {
			d++
		}
	}

	return d
}

// Neighbors returns the ascending neighbour ids of u, or nil when u is out of range.
func (a *Adjacency) Neighbors(u int) []int {
	if a == nil || !a.inRange(u) {
		return nil
	}
	out := make([]int, 0, 4)
	for v := 1; v <= a.n; v++ {
		if a.cells[u*a.stride+v] {
			out = append(out, v)
		}
	}

	return out
}

// Symmetric reports whether (u,v) == (v,u) for every pair, and that the
// filler row/column 0 is entirely false.
// Complexity: O(n²).
func (a *Adjacency) Symmetric() bool {
	if a == nil {
		return true
	}
	for u := 0; u < a.stride; u++ {
		for v := u; v < a.stride; v++ {
			if a.cells[u*a.stride+v] != a.cells[v*a.stride+u] {
				return false
			}
		}
	}
	for i := 0; i < a.stride; i++ {
		if a.cells[i] || a.cells[i*a.stride] {
			return false
		}
	}

	return true
}

// EdgeCount counts distinct undirected edges, self-loops included.
// This is the deduplicated figure; readers report their own per-line count.
// Complexity: O(n²).
func (a *Adjacency) EdgeCount() int {
	if a == nil {
		return 0
	}
	var c int
	for u := 1; u <= a.n; u++ {
		for v := u; v <= a.n; v++ {
			if a.cells[u*a.stride+v] {
				c++
			}
		}
	}

	return c
}

// Clone returns a deep copy.
// Complexity: O(n²) time and memory.
func (a *Adjacency) Clone() *Adjacency {
	if a == nil {
		return nil
	}
	cp := make([]bool, len(a.cells))
	copy(cp, a.cells)

	return &Adjacency{n: a.n, stride: a.stride, cells: cp}
}

// String renders rows 1..n as 0/1 digits, one row per line.
func (a *Adjacency) String() string {
	if a == nil || a.n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(a.n * (a.n + 1))
	for u := 1; u <= a.n; u++ {
		for v := 1; v <= a.n; v++ {
			if a.cells[u*a.stride+v] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
