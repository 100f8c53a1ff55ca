package tsplib_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/hccheck/tsplib"
	"github.com/stretchr/testify/require"
)

// quiet keeps expected diagnostics out of the test log.
var quiet = tsplib.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// countIs returns how many diagnostics match target.
func countIs(diags []error, target error) int {
	var n int
	for _, d := range diags {
		if errors.Is(d, target) {
			n++
		}
	}

	return n
}

func mustGraph(t *testing.T, src string, opts ...tsplib.Option) *tsplib.Graph {
	t.Helper()
	g, err := tsplib.ReadGraph(strings.NewReader(src), append([]tsplib.Option{quiet}, opts...)...)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.NotNil(t, g.Adj)

	return g
}

func mustTour(t *testing.T, src string, opts ...tsplib.Option) *tsplib.Tour {
	t.Helper()
	tr, err := tsplib.ReadTour(strings.NewReader(src), append([]tsplib.Option{quiet}, opts...)...)
	require.NoError(t, err)
	require.NotNil(t, tr)

	return tr
}
