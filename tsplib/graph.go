package tsplib

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hccheck/matrix"
)

// Graph is an undirected graph read from an HCP-style file.
type Graph struct {
	Name    string
	Type    string
	Comment string
	Source  string

	// Dimension is the declared node count; nodes are 1..Dimension.
	Dimension int

	// EdgeCount counts accepted edge lines. Duplicates and self-loops are
	// counted as given, so it may exceed Adj.EdgeCount().
	EdgeCount int

	// Adj is never nil; for Dimension 0 it is the degenerate 1×1 matrix.
	Adj *matrix.Adjacency

	// Diagnostics lists every non-fatal problem met while reading.
	Diagnostics []error
}

// NodeCount returns Dimension.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return g.Dimension
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if g == nil {
		return false
	}

	return g.Adj.HasEdge(u, v)
}

// Warnings aggregates Diagnostics into one multierror, or nil.
func (g *Graph) Warnings() error {
	return aggregate(g.Diagnostics)
}

// LoadGraph opens path and reads it with ReadGraph. An unopenable path is
// not an error: the result is an empty graph carrying an
// ErrResourceUnavailable diagnostic.
func LoadGraph(path string, opts ...Option) (*Graph, error) {
	opts = withSourceFirst(path, opts)
	f, err := os.Open(path)
	if err != nil {
		o := newOptions(opts...)
		c := newCollector(o)
		c.add(fmt.Errorf("%s: %w: %w", path, ErrResourceUnavailable, err))

		return emptyGraph(o.source, c.errs), nil
	}
	defer f.Close()

	return ReadGraph(f, opts...)
}

func emptyGraph(source string, diags []error) *Graph {
	adj, _ := matrix.NewAdjacency(0) // 1×1 never exceeds the limit

	return &Graph{Source: source, Adj: adj, Diagnostics: diags}
}

// ReadGraph parses an HCP-style graph from r.
//
// Stage 1: header up to EDGE_DATA_SECTION; DIMENSION sets the order.
// Stage 2: allocate the (n+1)×(n+1) adjacency (ErrAllocation if too large).
// Stage 3: one edge per line from its first two tokens, until -1, EOF or end
// of input. An edge is recorded only if 1 ≤ u,v ≤ DIMENSION.
//
// Complexity: O(n² + L) time for n nodes and L input bytes, O(n²) space.
func ReadGraph(r io.Reader, opts ...Option) (*Graph, error) {
	o := newOptions(opts...)
	c := newCollector(o)
	lr := newLineReader(r)

	h, err := readHeader(lr, graphMarker, c)
	if err != nil {
		return nil, err
	}
	if err = checkDimension(h.dimension, o); err != nil {
		return nil, err
	}
	adj, err := matrix.NewAdjacency(h.dimension)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", o.source, ErrAllocation, err)
	}
	g := &Graph{
		Name:      h.name,
		Type:      h.typ,
		Comment:   h.comment,
		Source:    o.source,
		Dimension: h.dimension,
		Adj:       adj,
	}
	if h.edgeFormat != "" && h.edgeFormat != edgeListFmt {
		c.addf(lr.line, ErrUnsupportedFormat, "%s %q, reading as %s", keyEdgeFormat, h.edgeFormat, edgeListFmt)
	}
	if !h.section {
		c.addf(lr.line, ErrMissingSection, "no %s", graphMarker)
		g.Diagnostics = c.errs

		return g, nil
	}

	if err = readEdges(lr, g, c); err != nil {
		return nil, err
	}
	g.Diagnostics = c.errs

	return g, nil
}

func readEdges(lr *lineReader, g *Graph, c *collector) error {
	for {
		line, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == eofKeyword {
			return nil
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			c.addf(lr.line, ErrMalformedData, "edge token %q", fields[0])
			continue
		}
		if u == sentinel {
			return nil
		}
		if len(fields) < 2 {
			c.addf(lr.line, ErrMalformedData, "edge line has one endpoint")
			continue
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			c.addf(lr.line, ErrMalformedData, "edge token %q", fields[1])
			continue
		}
		addEdgeLine(g, u, v, lr.line, c)
	}
}

// addEdgeLine applies the acceptance rule to one parsed pair.
func addEdgeLine(g *Graph, u, v, line int, c *collector) {
	if u <= 0 || v <= 0 || u > g.Dimension || v > g.Dimension {
		c.addf(line, ErrNodeOutOfRange, "edge (%d,%d) outside 1..%d", u, v, g.Dimension)
		return
	}
	switch {
	case u == v:
		c.addf(line, ErrSelfLoop, "edge (%d,%d)", u, v)
	case g.Adj.HasEdge(u, v):
		c.addf(line, ErrDuplicateEdge, "edge (%d,%d)", u, v)
	}
	// Range was checked above, so AddEdge cannot fail.
	_ = g.Adj.AddEdge(u, v)
	g.EdgeCount++
}
