package tsp_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/hccheck/builder"
	"github.com/katalvlaran/hccheck/matrix"
	"github.com/katalvlaran/hccheck/tsp"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, n int, cons ...builder.Constructor) *matrix.Adjacency {
	t.Helper()
	a, err := builder.Build(n, nil, cons...)
	require.NoError(t, err)

	return a
}

// permutations calls fn with every permutation of 1..n (Heap's algorithm).
// fn must not retain the slice.
func permutations(n int, fn func([]int)) {
	p := builder.Identity(n)
	c := make([]int, n)
	fn(p)
	for i := 0; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			fn(p)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

func TestValidate_SquareScenario(t *testing.T) {
	g := mustBuild(t, 4, builder.Cycle())

	res := tsp.Validate(tsp.Seq{1, 2, 3, 4}, g)
	require.True(t, res.Valid)
	require.Equal(t, tsp.ReasonNone, res.Reason)
	require.True(t, res.Path)
	require.Equal(t, 4, res.Visited)
	require.NoError(t, res.Err())

	res = tsp.Validate(tsp.Seq{1, 3, 2, 4}, g)
	require.False(t, res.Valid)
	require.Equal(t, tsp.ReasonMissingEdge, res.Reason)
	require.Equal(t, 1, res.From)
	require.Equal(t, 3, res.To)
	require.ErrorIs(t, res.Err(), tsp.ErrMissingEdge)
	require.EqualError(t, res.Err(), "no edge between 1 and 3: "+tsp.ErrMissingEdge.Error())

	res = tsp.Validate(tsp.Seq{1, 2, 3}, g)
	require.False(t, res.Valid)
	require.Equal(t, tsp.ReasonSizeMismatch, res.Reason)
	require.Equal(t, 3, res.TourNodes)
	require.Equal(t, 4, res.GraphNodes)
	require.Zero(t, res.Visited, "walk must not start after a size mismatch")
	require.ErrorIs(t, res.Err(), tsp.ErrSizeMismatch)
}

func TestValidate_CompleteGraphAcceptsEveryPermutation(t *testing.T) {
	for n := 2; n <= 6; n++ {
		g := mustBuild(t, n, builder.Complete())
		var count int
		permutations(n, func(p []int) {
			count++
			res := tsp.Validate(tsp.Seq(p), g)
			if !res.Valid {
				t.Fatalf("K_%d rejected %v: %v", n, p, res.Err())
			}
		})
		require.Positive(t, count)
	}

	// Larger instance, random orders.
	g := mustBuild(t, 60, builder.Complete())
	for seed := int64(0); seed < 20; seed++ {
		order, err := builder.Shuffle(60, builder.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, tsp.Validate(tsp.Seq(order), g).Valid)
	}
}

func TestValidate_RemovingAnyTourEdgeIsReported(t *testing.T) {
	const n = 9
	order, err := builder.Shuffle(n, builder.WithSeed(42))
	require.NoError(t, err)
	base, err := builder.Build(n, []builder.BuilderOption{builder.WithSeed(42)},
		builder.CycleThrough(order), builder.RandomChords(0.2))
	require.NoError(t, err)
	require.True(t, tsp.Validate(tsp.Seq(order), base).Valid)

	for i, e := range tsp.ClosingEdges(order) {
		g := base.Clone()
		require.NoError(t, g.RemoveEdge(e.U, e.V))
		res := tsp.Validate(tsp.Seq(order), g)
		require.False(t, res.Valid)

		if i == n-1 {
			// The closure edge is only checked after a complete walk.
			require.Equal(t, tsp.ReasonOpenCycle, res.Reason)
			require.True(t, res.Path)
			require.ErrorIs(t, res.Err(), tsp.ErrOpenCycle)
		} else {
			require.Equal(t, tsp.ReasonMissingEdge, res.Reason)
			require.False(t, res.Path)
		}
		require.Equal(t, e.U, res.From, "edge %d", i)
		require.Equal(t, e.V, res.To, "edge %d", i)
	}
}

func TestValidate_CoverageRejectsRepeats(t *testing.T) {
	g := mustBuild(t, 4, builder.Complete())

	res := tsp.Validate(tsp.Seq{1, 2, 1, 3}, g)
	require.False(t, res.Valid)
	require.Equal(t, tsp.ReasonIncompleteCoverage, res.Reason)
	require.Equal(t, 3, res.Visited)
	require.ErrorIs(t, res.Err(), tsp.ErrIncompleteCoverage)

	// A self-loop lets a repeat pass the walk; coverage still catches it.
	require.NoError(t, g.AddEdge(2, 2))
	res = tsp.Validate(tsp.Seq{1, 2, 2, 3}, g)
	require.Equal(t, tsp.ReasonIncompleteCoverage, res.Reason)
}

func TestValidate_LengthMismatchShortCircuits(t *testing.T) {
	g := mustBuild(t, 5, builder.Complete())
	for _, seq := range []tsp.Seq{{1, 2, 3, 4}, {1, 2, 3, 4, 5, 1}, {}} {
		res := tsp.Validate(seq, g)
		require.Equal(t, tsp.ReasonSizeMismatch, res.Reason, "%v", seq)
		require.Zero(t, res.From)
		require.Zero(t, res.Visited)
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	g := mustBuild(t, 0)

	res := tsp.Validate(tsp.Seq{}, g)
	require.False(t, res.Valid)
	require.Equal(t, tsp.ReasonEmptyGraph, res.Reason)
	require.ErrorIs(t, res.Err(), tsp.ErrEmptyGraph)

	// A non-empty tour against an empty graph fails the size check first.
	res = tsp.Validate(tsp.Seq{1}, g)
	require.Equal(t, tsp.ReasonSizeMismatch, res.Reason)
}

func TestValidate_HamiltonianPathIsNotACycle(t *testing.T) {
	g := mustBuild(t, 5, builder.Path())

	res := tsp.Validate(tsp.Seq(builder.Identity(5)), g)
	require.False(t, res.Valid)
	require.True(t, res.Path)
	require.Equal(t, tsp.ReasonOpenCycle, res.Reason)
	require.Equal(t, 5, res.From)
	require.Equal(t, 1, res.To)
}

func TestValidate_AbsentAndOutOfRangeIdsNeverPanic(t *testing.T) {
	g := mustBuild(t, 4, builder.Complete())

	cases := map[string]tsp.Seq{
		"padded":   {1, 2, 0, 0},
		"too big":  {1, 2, 9, 4},
		"negative": {1, -2, 3, 4},
	}
	for name, seq := range cases {
		t.Run(name, func(t *testing.T) {
			res := tsp.Validate(seq, g)
			require.False(t, res.Valid)
			require.Equal(t, tsp.ReasonMissingEdge, res.Reason)
		})
	}

	// Leading absent slot on a one-node graph: 0 is never counted as visited.
	one := mustBuild(t, 1)
	res := tsp.Validate(tsp.Seq{0}, one)
	require.Equal(t, tsp.ReasonIncompleteCoverage, res.Reason)
	require.Zero(t, res.Visited)
}

// shortTour declares more nodes than it carries.
type shortTour struct{ declared int }

func (s shortTour) NodeCount() int { return s.declared }
func (s shortTour) Nodes() []int   { return []int{1, 2} }

func TestValidate_TourSliceShorterThanDeclared(t *testing.T) {
	g := mustBuild(t, 4, builder.Cycle())
	res := tsp.Validate(shortTour{declared: 4}, g)
	require.Equal(t, tsp.ReasonMissingEdge, res.Reason)
	require.Equal(t, 2, res.From)
	require.Equal(t, 0, res.To)
}

func TestValidate_SingleNode(t *testing.T) {
	g := mustBuild(t, 1)
	res := tsp.Validate(tsp.Seq{1}, g)
	require.Equal(t, tsp.ReasonOpenCycle, res.Reason)

	// With a self-loop the one-node walk closes on itself.
	require.NoError(t, g.AddEdge(1, 1))
	require.True(t, tsp.Validate(tsp.Seq{1}, g).Valid)
}

func TestResult_MessagesAndReport(t *testing.T) {
	cycle := mustBuild(t, 4, builder.Cycle())
	path := mustBuild(t, 4, builder.Path())

	cases := []struct {
		name string
		res  tsp.Result
		want []string
	}{
		{"valid", tsp.Validate(tsp.Seq{1, 2, 3, 4}, cycle),
			[]string{"Valid Hamiltonian Path", "Valid Hamiltonian Cycle"}},
		{"size", tsp.Validate(tsp.Seq{1, 2}, cycle),
			[]string{"Tour and graph do not contain same number of nodes"}},
		{"empty", tsp.Validate(tsp.Seq{}, mustBuild(t, 0)),
			[]string{"graph has no nodes"}},
		{"edge", tsp.Validate(tsp.Seq{1, 3, 2, 4}, cycle),
			[]string{"No edge between 1 and 3"}},
		{"coverage", tsp.Validate(tsp.Seq{1, 2, 1, 2}, cycle),
			[]string{"Not all nodes visited (visited 2, expected 4)"}},
		{"closure", tsp.Validate(tsp.Seq{1, 2, 3, 4}, path),
			[]string{"Valid Hamiltonian Path", "First node does not connect with last node of tour"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.res.Messages())

			var buf bytes.Buffer
			require.NoError(t, tc.res.Report(&buf))
			var want string
			for _, m := range tc.want {
				want += m + "\n"
			}
			require.Equal(t, want, buf.String())
		})
	}
}

func TestResult_ErrOnZeroValue(t *testing.T) {
	err := tsp.Result{}.Err()
	require.Error(t, err)
	for _, s := range []error{tsp.ErrSizeMismatch, tsp.ErrEmptyGraph, tsp.ErrMissingEdge, tsp.ErrIncompleteCoverage, tsp.ErrOpenCycle} {
		require.False(t, errors.Is(err, s))
	}
}

func TestReason_StringAndJSON(t *testing.T) {
	require.Equal(t, "open cycle", tsp.ReasonOpenCycle.String())
	require.Equal(t, "unknown", tsp.Reason(99).String())

	g := mustBuild(t, 4, builder.Cycle())
	b, err := json.Marshal(tsp.Validate(tsp.Seq{1, 3, 2, 4}, g))
	require.NoError(t, err)
	require.JSONEq(t, `{"valid":false,"reason":"missing edge","tour_nodes":4,"graph_nodes":4,
		"from":1,"to":3,"visited":1,"path":false}`, string(b))
}

func TestReason_UnmarshalText(t *testing.T) {
	var res tsp.Result
	require.NoError(t, json.Unmarshal([]byte(`{"reason":"open cycle","from":4,"to":1}`), &res))
	require.Equal(t, tsp.ReasonOpenCycle, res.Reason)
	require.ErrorIs(t, res.Err(), tsp.ErrOpenCycle)

	var r tsp.Reason
	require.Error(t, r.UnmarshalText([]byte("sideways")))
}

func TestValidate_ConcurrentReaders(t *testing.T) {
	const n = 40
	g := mustBuild(t, n, builder.Cycle(), builder.Wheel())

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			seq := builder.Identity(n)
			if w%2 == 1 {
				seq[1], seq[2] = seq[2], seq[1] // 1-3 is not an edge
			}
			res := tsp.Validate(tsp.Seq(seq), g)
			if res.Valid == (w%2 == 1) {
				errs <- res.Err()
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected outcome: %v", err)
	}
}
