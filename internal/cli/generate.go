// Package cli: the generate subcommand writes a graph with a planted
// Hamiltonian cycle and the matching tour.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hccheck/builder"
	"github.com/katalvlaran/hccheck/matrix"
	"github.com/katalvlaran/hccheck/tsp"
	"github.com/katalvlaran/hccheck/tsplib"
)

// ErrUnknownKind indicates an unsupported --kind.
var ErrUnknownKind = errors.New("unknown graph kind")

// Generator kinds accepted by --kind.
const (
	KindCycle    = "cycle"
	KindComplete = "complete"
	KindWheel    = "wheel"
	KindRandom   = "random"
)

type generateFlags struct {
	kind     string
	nodes    int
	outGraph string
	outTour  string
	name     string
	seed     int64
	p        float64
}

func newGenerateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a test graph and a Hamiltonian cycle through it",
		Long: `Write an HCP graph with a known Hamiltonian cycle, and that cycle as a
tour file.

Kinds:
  cycle     - the ring 1-2-...-n-1
  complete  - every pair of nodes adjacent
  wheel     - a ring 1..n-1 plus hub n joined to every ring node
  random    - a ring through a seeded random permutation plus chords added
              with probability --p; the tour is written starting at node 1

Examples:
  hccheck generate --kind cycle --nodes 10 --out-graph ring.hcp --out-tour ring.tour
  hccheck generate --kind random --nodes 500 --p 0.01 --seed 7 --out-graph r.hcp --out-tour r.tour`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.kind, "kind", "k", KindCycle, "Graph kind: cycle, complete, wheel or random")
	fl.IntVarP(&f.nodes, "nodes", "n", 10, "Number of nodes")
	fl.StringVar(&f.outGraph, "out-graph", "", "Graph output path")
	fl.StringVar(&f.outTour, "out-tour", "", "Tour output path")
	fl.StringVar(&f.name, "name", "", "NAME written to both files (default: graph file base name)")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (0 = time based)")
	fl.Float64Var(&f.p, "p", 0.05, "Chord probability for --kind random")
	_ = cmd.MarkFlagRequired("out-graph")
	_ = cmd.MarkFlagRequired("out-tour")

	return cmd
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	adj, tour, err := generate(f.kind, f.nodes, f.p, seed)
	if err != nil {
		return err
	}

	name := f.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(f.outGraph), filepath.Ext(f.outGraph))
	}
	if err = writeFile(f.outGraph, func(fh *os.File) error { return tsplib.WriteGraph(fh, name, adj) }); err != nil {
		return err
	}
	if err = writeFile(f.outTour, func(fh *os.File) error { return tsplib.WriteTour(fh, name+".tour", tour) }); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d nodes, %d edges) and %s\n",
		f.outGraph, adj.NodeCount(), adj.EdgeCount(), f.outTour)

	return nil
}

// minGenerateNodes is the smallest order with a simple Hamiltonian cycle.
const minGenerateNodes = 3

// generate builds the adjacency for kind and a Hamiltonian cycle through it.
func generate(kind string, n int, p float64, seed int64) (*matrix.Adjacency, []int, error) {
	if n < minGenerateNodes {
		return nil, nil, fmt.Errorf("generate: n=%d < min=%d: %w", n, minGenerateNodes, builder.ErrTooFewVertices)
	}
	opts := []builder.BuilderOption{builder.WithSeed(seed)}

	var (
		cons []builder.Constructor
		tour = builder.Identity(n)
	)
	switch kind {
	case KindCycle:
		cons = []builder.Constructor{builder.Cycle()}
	case KindComplete:
		cons = []builder.Constructor{builder.Complete()}
	case KindWheel:
		cons = []builder.Constructor{builder.Wheel()}
	case KindRandom:
		order, err := builder.Shuffle(n, opts...)
		if err != nil {
			return nil, nil, err
		}
		// Written rotated to start at node 1, the same cycle as order.
		tour = tsp.Canonical(order)
		cons = []builder.Constructor{builder.CycleThrough(order), builder.RandomChords(p)}
	default:
		return nil, nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}

	adj, err := builder.Build(n, opts, cons...)
	if err != nil {
		return nil, nil, err
	}

	return adj, tour, nil
}

func writeFile(path string, write func(*os.File) error) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return write(fh)
}
