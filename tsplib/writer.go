package tsplib

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hccheck/matrix"
)

// WriteGraph emits adj in the format ReadGraph accepts: an HCP header,
// one "u v" line per undirected edge with u ≤ v in ascending order, then
// the -1 sentinel and EOF. Reading the output back yields an equal matrix.
// Complexity: O(n²).
func WriteGraph(w io.Writer, name string, adj *matrix.Adjacency) error {
	bw := bufio.NewWriter(w)
	n := adj.NodeCount()
	fmt.Fprintf(bw, "%s : %s\n", keyName, name)
	fmt.Fprintf(bw, "%s : HCP\n", keyType)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, n)
	fmt.Fprintf(bw, "%s : %s\n", keyEdgeFormat, edgeListFmt)
	fmt.Fprintln(bw, graphMarker)
	for u := 1; u <= n; u++ {
		for v := u; v <= n; v++ {
			if adj.HasEdge(u, v) {
				fmt.Fprintf(bw, "%d %d\n", u, v)
			}
		}
	}
	fmt.Fprintln(bw, sentinel)
	fmt.Fprintln(bw, eofKeyword)

	return bw.Flush()
}

// WriteTour emits seq as a tour file, one node per line.
func WriteTour(w io.Writer, name string, seq []int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s : %s\n", keyName, name)
	fmt.Fprintf(bw, "%s : TOUR\n", keyType)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, len(seq))
	fmt.Fprintln(bw, tourMarker)
	for _, v := range seq {
		fmt.Fprintln(bw, v)
	}
	fmt.Fprintln(bw, sentinel)
	fmt.Fprintln(bw, eofKeyword)

	return bw.Flush()
}
