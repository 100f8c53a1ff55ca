// Package cli: loading the graph, validating tours concurrently and
// rendering the text or JSON report.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hccheck/config"
	"github.com/katalvlaran/hccheck/tsp"
	"github.com/katalvlaran/hccheck/tsplib"
)

// GraphReport summarizes the graph file.
type GraphReport struct {
	File        string   `json:"file"`
	Nodes       int      `json:"nodes"`
	Edges       int      `json:"edges"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// TourReport is the outcome for one tour file.
type TourReport struct {
	File        string     `json:"file"`
	Nodes       int        `json:"nodes"`
	Sequence    []int      `json:"sequence,omitempty"`
	Diagnostics []string   `json:"diagnostics,omitempty"`
	Result      tsp.Result `json:"result"`
	Messages    []string   `json:"messages,omitempty"`
}

// Report is everything one check run produced.
type Report struct {
	Graph GraphReport  `json:"graph"`
	Tours []TourReport `json:"tours"`
}

// AllValid reports whether every tour is a Hamiltonian cycle.
func (r *Report) AllValid() bool {
	for _, t := range r.Tours {
		if !t.Result.Valid {
			return false
		}
	}

	return true
}

// runCheck reads the graph once and validates each tour against it. Tours
// are loaded and validated in parallel, bounded by cfg.Workers, and share the
// graph read-only. Only fatal read errors are returned.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger, graphPath string, tourPaths []string) (*Report, error) {
	opts := []tsplib.Option{
		tsplib.WithLogger(logger),
		tsplib.WithMaxDimension(cfg.MaxDimension),
	}

	g, err := tsplib.LoadGraph(graphPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", graphPath, err)
	}
	logger.Debug("graph loaded", "file", graphPath, "nodes", g.NodeCount(), "edges", g.EdgeCount)

	rep := &Report{
		Graph: GraphReport{
			File:        graphPath,
			Nodes:       g.NodeCount(),
			Edges:       g.EdgeCount,
			Diagnostics: errorStrings(g.Diagnostics),
		},
		Tours: make([]TourReport, len(tourPaths)),
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, path := range tourPaths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := tsplib.LoadTour(path, opts...)
			if err != nil {
				return fmt.Errorf("tour %s: %w", path, err)
			}
			res := tsp.Validate(t, g)
			logger.Debug("tour validated", "file", path, "valid", res.Valid, "reason", res.Reason.String())

			tr := TourReport{
				File:        path,
				Nodes:       t.NodeCount(),
				Diagnostics: errorStrings(t.Diagnostics),
				Result:      res,
			}
			if cfg.PrintPath {
				tr.Sequence = t.Nodes()
			}
			if cfg.Verbose {
				tr.Messages = res.Messages()
			}
			rep.Tours[i] = tr

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}

// write renders r as JSON or as the classic text report.
func (r *Report) write(w io.Writer, cfg *config.Config) error {
	if cfg.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	ew := &errWriter{w: w}
	ew.printf("Graph has %d nodes and %d edges\n", r.Graph.Nodes, r.Graph.Edges)
	for i, t := range r.Tours {
		if len(r.Tours) > 1 {
			if i > 0 {
				ew.printf("\n")
			}
			ew.printf("%s:\n", t.File)
		}
		ew.printf("Tour has %d nodes\n", t.Nodes)
		for _, m := range t.Messages {
			ew.printf("%s\n", m)
		}
		if cfg.PrintPath {
			ew.printf("%s\n", tsp.FormatPath(t.Sequence))
		}
		if !cfg.Verbose {
			ew.printf("%s\n", verdict(t.Result))
		}
	}

	return ew.err
}

// verdict is the one-line outcome printed when verbose output is off.
func verdict(res tsp.Result) string {
	if res.Valid {
		return "valid Hamiltonian cycle"
	}

	return "invalid: " + res.Err().Error()
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}

	return out
}

// errWriter keeps the first write error so the report body stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
