package tsplib

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tour is an ordered node sequence read from a tour file. The closing edge
// back to Sequence[0] is implied, not stored.
type Tour struct {
	Name    string
	Type    string
	Comment string
	Source  string

	// Dimension is the declared tour length.
	Dimension int

	// Sequence always has length Dimension. Slots the file did not fill are
	// 0, which no graph contains, so they fail any later edge lookup.
	Sequence []int

	// Accepted counts in-range ids read before the sentinel, including any
	// beyond Dimension that did not fit in Sequence.
	Accepted int

	// Diagnostics lists every non-fatal problem met while reading.
	Diagnostics []error
}

// NodeCount returns Dimension.
func (t *Tour) NodeCount() int {
	if t == nil {
		return 0
	}

	return t.Dimension
}

// Nodes returns the visiting order. The slice is shared, not copied.
func (t *Tour) Nodes() []int {
	if t == nil {
		return nil
	}

	return t.Sequence
}

// Warnings aggregates Diagnostics into one multierror, or nil.
func (t *Tour) Warnings() error {
	return aggregate(t.Diagnostics)
}

// LoadTour opens path and reads it with ReadTour. An unopenable path yields
// an empty tour with an ErrResourceUnavailable diagnostic and a nil error.
func LoadTour(path string, opts ...Option) (*Tour, error) {
	opts = withSourceFirst(path, opts)
	f, err := os.Open(path)
	if err != nil {
		o := newOptions(opts...)
		c := newCollector(o)
		c.add(fmt.Errorf("%s: %w: %w", path, ErrResourceUnavailable, err))

		return &Tour{Source: o.source, Sequence: []int{}, Diagnostics: c.errs}, nil
	}
	defer f.Close()

	return ReadTour(f, opts...)
}

// ReadTour parses a tour from r.
//
// Stage 1: header up to TOUR_SECTION; DIMENSION sizes the sequence.
// Stage 2: tokens across any number of lines until a -1 token, an EOF
// line or end of input. Ids outside 1..DIMENSION are reported and dropped
// without advancing the write position.
// Stage 3: a count other than DIMENSION is reported; the sequence keeps
// its fixed length.
//
// Complexity: O(n + L) time, O(n) space.
func ReadTour(r io.Reader, opts ...Option) (*Tour, error) {
	o := newOptions(opts...)
	c := newCollector(o)
	lr := newLineReader(r)

	h, err := readHeader(lr, tourMarker, c)
	if err != nil {
		return nil, err
	}
	if err = checkDimension(h.dimension, o); err != nil {
		return nil, err
	}
	t := &Tour{
		Name:      h.name,
		Type:      h.typ,
		Comment:   h.comment,
		Source:    o.source,
		Dimension: h.dimension,
		Sequence:  make([]int, h.dimension),
	}
	if !h.section {
		c.addf(lr.line, ErrMissingSection, "no %s", tourMarker)
	} else if err = readNodes(lr, t, c); err != nil {
		return nil, err
	}

	if t.Accepted != t.Dimension {
		c.addf(lr.line, ErrNodeCountMismatch, "not all nodes specified in tour: expected %d found %d",
			t.Dimension, t.Accepted)
	}
	t.Diagnostics = c.errs

	return t, nil
}

func readNodes(lr *lineReader, t *Tour, c *collector) error {
	for {
		line, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		for _, tok := range strings.Fields(line) {
			if tok == eofKeyword {
				return nil
			}
			node, err := strconv.Atoi(tok)
			if err != nil {
				c.addf(lr.line, ErrMalformedData, "node token %q", tok)
				continue
			}
			if node == sentinel {
				return nil
			}
			if node < 1 || node > t.Dimension {
				c.addf(lr.line, ErrNodeOutOfRange, "node %d is out of range", node)
				continue
			}
			if t.Accepted < t.Dimension {
				t.Sequence[t.Accepted] = node
			}
			t.Accepted++
		}
	}
}
