package tsplib_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/hccheck/matrix"
	"github.com/katalvlaran/hccheck/tsplib"
	"github.com/stretchr/testify/require"
)

const squareHCP = `NAME : square
COMMENT : 4-cycle
TYPE : HCP
DIMENSION : 4
EDGE_DATA_FORMAT : EDGE_LIST
EDGE_DATA_SECTION
1 2
2 3
3 4
4 1
-1
EOF
`

func TestReadGraph_Square(t *testing.T) {
	g := mustGraph(t, squareHCP)

	require.Equal(t, "square", g.Name)
	require.Equal(t, "4-cycle", g.Comment)
	require.Equal(t, "HCP", g.Type)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount)
	require.Empty(t, g.Diagnostics)
	require.NoError(t, g.Warnings())

	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(1, 4))
	require.False(t, g.HasEdge(1, 3))
	require.False(t, g.HasEdge(0, 1))
	require.True(t, g.Adj.Symmetric())
}

func TestReadGraph_HeaderSpellings(t *testing.T) {
	cases := map[string]string{
		"spaced colon":   "DIMENSION : 3\nEDGE_DATA_SECTION\n1 2\n",
		"tight colon":    "DIMENSION: 3\nEDGE_DATA_SECTION\n1 2\n",
		"no colon":       "DIMENSION 3\nEDGE_DATA_SECTION\n1 2\n",
		"indented":       "   DIMENSION : 3\n  EDGE_DATA_SECTION\n1 2\n",
		"trailing words": "DIMENSION : 3 nodes\nEDGE_DATA_SECTION\n1 2\n",
		"crlf":           "DIMENSION : 3\r\nEDGE_DATA_SECTION\r\n1 2\r\n-1\r\n",
		"unknown keys":   "FOO : bar\nCAPACITY : 9\nDIMENSION : 3\nEDGE_DATA_SECTION\n1 2\n",
		"tab separated":  "DIMENSION\t:\t3\nEDGE_DATA_SECTION\n1\t2\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			g := mustGraph(t, src)
			require.Equal(t, 3, g.NodeCount())
			require.Equal(t, 1, g.EdgeCount)
			require.True(t, g.HasEdge(2, 1))
			require.Empty(t, g.Diagnostics)
		})
	}
}

func TestReadGraph_MalformedDimension(t *testing.T) {
	cases := map[string]string{
		"missing":     "NAME : x\nEDGE_DATA_SECTION\n1 2\n",
		"non-numeric": "DIMENSION : four\nEDGE_DATA_SECTION\n1 2\n",
		"negative":    "DIMENSION : -4\nEDGE_DATA_SECTION\n1 2\n",
		"empty":       "DIMENSION :\nEDGE_DATA_SECTION\n1 2\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			g := mustGraph(t, src)
			require.Zero(t, g.NodeCount())
			require.Zero(t, g.EdgeCount)
			require.Zero(t, g.Adj.NodeCount())
			require.Equal(t, 1, countIs(g.Diagnostics, tsplib.ErrMalformedHeader))
			// The edge cannot fit a 0-node graph and is reported, not written.
			require.Equal(t, 1, countIs(g.Diagnostics, tsplib.ErrNodeOutOfRange))
			require.ErrorIs(t, g.Warnings(), tsplib.ErrMalformedHeader)
		})
	}
}

func TestReadGraph_OverflowingDimension(t *testing.T) {
	g := mustGraph(t, "DIMENSION : 99999999999999999999\nEDGE_DATA_SECTION\n-1\n")
	require.Zero(t, g.NodeCount())
	require.Len(t, g.Diagnostics, 1)
	require.ErrorIs(t, g.Diagnostics[0], tsplib.ErrMalformedHeader)
	require.Contains(t, g.Diagnostics[0].Error(), "out of range")
	require.NotContains(t, g.Diagnostics[0].Error(), "not an integer")

	g = mustGraph(t, "DIMENSION : four\nEDGE_DATA_SECTION\n-1\n")
	require.Contains(t, g.Diagnostics[0].Error(), "not an integer")
}

func TestReadGraph_SentinelAndEOFStopEdges(t *testing.T) {
	g := mustGraph(t, "DIMENSION : 3\nEDGE_DATA_SECTION\n1 2\n-1 7\n2 3\n")
	require.Equal(t, 1, g.EdgeCount)
	require.False(t, g.HasEdge(2, 3))

	g = mustGraph(t, "DIMENSION : 3\nEDGE_DATA_SECTION\n1 2\nEOF\n2 3\n")
	require.Equal(t, 1, g.EdgeCount)
	require.False(t, g.HasEdge(2, 3))

	// No sentinel at all: end of input ends the section.
	g = mustGraph(t, "DIMENSION : 3\nEDGE_DATA_SECTION\n1 2\n2 3")
	require.Equal(t, 2, g.EdgeCount)
	require.True(t, g.HasEdge(3, 2))
}

func TestReadGraph_EdgeAcceptanceRule(t *testing.T) {
	src := strings.Join([]string{
		"DIMENSION : 3",
		"EDGE_DATA_SECTION",
		"",        // blank: skipped silently
		"0 1",     // zero id
		"2 -3",    // negative id
		"1 4",     // beyond DIMENSION
		"1",       // single endpoint
		"a b",     // non-numeric
		"1 x",     // non-numeric second endpoint
		"1 2 9 9", // extra tokens ignored
		"2 3",
		"2 3", // duplicate: still counted
		"3 3", // self-loop: still counted
		"-1",
	}, "\n")
	g := mustGraph(t, src)

	require.Equal(t, 4, g.EdgeCount)
	require.Equal(t, 3, g.Adj.EdgeCount())
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(3, 3))
	require.False(t, g.HasEdge(1, 3))
	require.True(t, g.Adj.Symmetric())

	require.Equal(t, 3, countIs(g.Diagnostics, tsplib.ErrNodeOutOfRange))
	require.Equal(t, 3, countIs(g.Diagnostics, tsplib.ErrMalformedData))
	require.Equal(t, 1, countIs(g.Diagnostics, tsplib.ErrDuplicateEdge))
	require.Equal(t, 1, countIs(g.Diagnostics, tsplib.ErrSelfLoop))
}

func TestReadGraph_LongLinesAreNotTruncated(t *testing.T) {
	long := strings.Repeat("x", 300000)
	g := mustGraph(t, "COMMENT : "+long+"\nDIMENSION : 2\nEDGE_DATA_SECTION\n1 2\n-1\n")
	require.Equal(t, long, g.Comment)
	require.Equal(t, 2, g.NodeCount())
	require.True(t, g.HasEdge(1, 2))
}

func TestReadGraph_MissingSectionAndFormat(t *testing.T) {
	g := mustGraph(t, "DIMENSION : 3\n1 2\n")
	require.Equal(t, 3, g.NodeCount())
	require.Zero(t, g.EdgeCount)
	require.Equal(t, 1, countIs(g.Diagnostics, tsplib.ErrMissingSection))

	g = mustGraph(t, "DIMENSION : 3\nEDGE_DATA_FORMAT : ADJ_LIST\nEDGE_DATA_SECTION\n1 2\n-1\n")
	require.Equal(t, 1, countIs(g.Diagnostics, tsplib.ErrUnsupportedFormat))
	require.True(t, g.HasEdge(1, 2))
}

func TestReadGraph_DimensionLimit(t *testing.T) {
	_, err := tsplib.ReadGraph(strings.NewReader("DIMENSION : 11\nEDGE_DATA_SECTION\n"),
		quiet, tsplib.WithMaxDimension(10))
	require.ErrorIs(t, err, tsplib.ErrAllocation)

	g := mustGraph(t, "DIMENSION : 10\nEDGE_DATA_SECTION\n", tsplib.WithMaxDimension(10))
	require.Equal(t, 10, g.NodeCount())
}

func TestReadGraph_ReadErrorIsFatal(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := tsplib.ReadGraph(iotest.ErrReader(boom), quiet)
	require.ErrorIs(t, err, boom)
}

func TestLoadGraph_Unavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.hcp")
	g, err := tsplib.LoadGraph(missing, quiet)
	require.NoError(t, err)
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount)
	require.Equal(t, missing, g.Source)
	require.False(t, g.HasEdge(1, 1))
	require.ErrorIs(t, g.Warnings(), tsplib.ErrResourceUnavailable)
	require.ErrorIs(t, g.Warnings(), os.ErrNotExist)
}

func TestLoadGraph_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.hcp")
	require.NoError(t, os.WriteFile(path, []byte(squareHCP), 0o600))

	g, err := tsplib.LoadGraph(path, quiet)
	require.NoError(t, err)
	require.Equal(t, path, g.Source)
	require.Equal(t, 4, g.EdgeCount)
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	adj, err := matrix.NewAdjacency(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}, {1, 3}, {4, 4}} {
		require.NoError(t, adj.AddEdge(e[0], e[1]))
	}

	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteGraph(&buf, "pentagon", adj))

	g := mustGraph(t, buf.String())
	require.Equal(t, "pentagon", g.Name)
	require.Equal(t, adj.String(), g.Adj.String())
	require.Equal(t, adj.EdgeCount(), g.EdgeCount)
	// Only the self-loop diagnostic is expected.
	require.Len(t, g.Diagnostics, 1)
	require.ErrorIs(t, g.Diagnostics[0], tsplib.ErrSelfLoop)
}

func TestGraph_NilSafe(t *testing.T) {
	var g *tsplib.Graph
	require.Zero(t, g.NodeCount())
	require.False(t, g.HasEdge(1, 2))
}
