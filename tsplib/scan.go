package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Section markers and terminators shared by both file kinds.
const (
	graphMarker = "EDGE_DATA_SECTION"
	tourMarker  = "TOUR_SECTION"
	eofKeyword  = "EOF"
	sentinel    = -1

	keyDimension  = "DIMENSION"
	keyName       = "NAME"
	keyType       = "TYPE"
	keyComment    = "COMMENT"
	keyEdgeFormat = "EDGE_DATA_FORMAT"
	edgeListFmt   = "EDGE_LIST"
)

// lineReader yields lines of any length, tracking 1-based line numbers.
type lineReader struct {
	r    *bufio.Reader
	line int
	done bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line without its terminator. ok is false at end of input.
func (lr *lineReader) next() (line string, ok bool, err error) {
	if lr.done {
		return "", false, nil
	}
	line, err = lr.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("tsplib: read line %d: %w", lr.line+1, err)
		}
		lr.done = true
		if line == "" {
			return "", false, nil
		}
	}
	lr.line++

	return strings.TrimRight(line, "\r\n"), true, nil
}

// collector accumulates non-fatal diagnostics and mirrors them to the logger.
type collector struct {
	errs   []error
	log    *slog.Logger
	source string
}

func newCollector(o options) *collector {
	return &collector{log: o.logger, source: o.source}
}

func (c *collector) add(err error) {
	c.errs = append(c.errs, err)
	c.log.Warn("tsplib diagnostic", "source", c.source, "error", err)
}

func (c *collector) addf(line int, kind error, format string, args ...any) {
	c.add(fmt.Errorf("%s:%d: %s: %w", c.source, line, fmt.Sprintf(format, args...), kind))
}

// header is the parsed key/value preamble of either file kind.
type header struct {
	name       string
	typ        string
	comment    string
	edgeFormat string
	dimension  int
	dimSeen    bool
	section    bool // data section marker reached
}

// readHeader consumes lines up to and including the line starting with marker.
// Key and value are separated by ':' or, failing that, by whitespace.
// A repeated key overwrites the earlier value.
func readHeader(lr *lineReader, marker string, c *collector) (header, error) {
	var h header
	for {
		raw, ok, err := lr.next()
		if err != nil {
			return h, err
		}
		if !ok {
			break
		}
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, marker) {
			h.section = true
			break
		}
		key, val := splitHeader(line)
		switch key {
		case keyDimension:
			h.dimSeen = true
			h.dimension = parseDimension(val, lr.line, c)
		case keyName:
			h.name = val
		case keyType:
			h.typ = val
		case keyComment:
			if h.comment != "" {
				h.comment += "\n"
			}
			h.comment += val
		case keyEdgeFormat:
			h.edgeFormat = val
		}
	}
	if !h.dimSeen {
		c.addf(lr.line, ErrMalformedHeader, "%s not found, assuming 0", keyDimension)
	}

	return h, nil
}

func splitHeader(line string) (key, val string) {
	if k, v, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(k), strings.TrimSpace(v)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}

// parseDimension reads the first field of val; anything but a non-negative
// integer is reported and treated as 0.
func parseDimension(val string, line int, c *collector) int {
	fields := strings.Fields(val)
	if len(fields) == 0 {
		c.addf(line, ErrMalformedHeader, "%s has no value, assuming 0", keyDimension)
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if errors.Is(err, strconv.ErrRange) {
		c.addf(line, ErrMalformedHeader, "%s %q is out of range, assuming 0", keyDimension, fields[0])
		return 0
	}
	if err != nil {
		c.addf(line, ErrMalformedHeader, "%s %q is not an integer, assuming 0", keyDimension, fields[0])
		return 0
	}
	if n < 0 {
		c.addf(line, ErrMalformedHeader, "%s %d is negative, assuming 0", keyDimension, n)
		return 0
	}

	return n
}

// checkDimension enforces the configured ceiling before anything is allocated.
func checkDimension(n int, o options) error {
	if n > o.maxDimension {
		return fmt.Errorf("%s: %s %d exceeds limit %d: %w", o.source, keyDimension, n, o.maxDimension, ErrAllocation)
	}

	return nil
}

// aggregate folds diagnostics into a single error, nil when there are none.
func aggregate(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	return multierror.Append(nil, errs...).ErrorOrNil()
}
