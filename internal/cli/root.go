// Package cli implements the hccheck command line.
// This file holds the root command, flag resolution and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hccheck/config"
)

// =============================================================================
// Exit codes
// =============================================================================

const (
	// ExitFailure is returned for usage, configuration and read errors.
	ExitFailure = 1

	// ExitInvalidTour is returned under --strict-exit when a tour is not a
	// Hamiltonian cycle.
	ExitInvalidTour = 2
)

// ExitError carries a process exit code out of a command. Execute does not
// print it; the command has already written its report.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}

	return ExitFailure
}

// =============================================================================
// Root command
// =============================================================================

// rootFlags mirrors config.Config for the command line. Only flags the user
// actually set override the loaded configuration.
type rootFlags struct {
	configPath string
	verbose    bool
	printPath  bool
	strictExit bool
	json       bool
	watch      bool
	workers    int
	logLevel   string
	logFormat  string
}

// NewRootCommand builds a fresh command tree. Tests build their own so flag
// state never leaks between runs.
func NewRootCommand() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "hccheck GRAPH TOUR [TOUR...]",
		Short: "Check whether tours are Hamiltonian cycles of a graph",
		Long: `Checks if a tour is a valid Hamiltonian Path/Cycle for a graph.

GRAPH is an HCP file with an EDGE_DATA_SECTION edge list. Each TOUR is a
tour file with a TOUR_SECTION. Several tours are validated concurrently
against the same graph.

Examples:
  hccheck alb1000.hcp alb1000.tour
  hccheck --json graph.hcp a.tour b.tour
  hccheck --strict-exit --verbose=false graph.hcp solution.tour
  hccheck --watch graph.hcp solution.tour`,
		Args:          cobra.MinimumNArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runRoot(cmd, &f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
	fl.BoolVarP(&f.verbose, "verbose", "v", true, "Print why a tour passes or fails")
	fl.BoolVar(&f.printPath, "print-path", false, "Print each tour as a node list")
	fl.BoolVar(&f.strictExit, "strict-exit", false, "Exit with status 2 when a tour is invalid")
	fl.BoolVar(&f.json, "json", false, "Output as JSON")
	fl.BoolVarP(&f.watch, "watch", "w", false, "Re-check whenever the graph or a tour changes")
	fl.IntVar(&f.workers, "workers", 0, "Maximum concurrent tour checks (0 = one per CPU)")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newGenerateCommand())

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	cmd := NewRootCommand()
	err := cmd.Execute()
	var exit *ExitError
	if err != nil && !errors.As(err, &exit) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}

	return err
}

func runRoot(cmd *cobra.Command, f *rootFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	graphPath, tourPaths := args[0], args[1:]

	if f.watch {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd.OutOrStdout(), cfg, logger, graphPath, tourPaths)
	}

	rep, err := runCheck(ctx, cfg, logger, graphPath, tourPaths)
	if err != nil {
		return err
	}
	if err = rep.write(cmd.OutOrStdout(), cfg); err != nil {
		return err
	}
	if cfg.StrictExit && !rep.AllValid() {
		return &ExitError{Code: ExitInvalidTour, Err: errors.New("invalid tour")}
	}

	return nil
}

// resolveConfig loads --config (plus the environment) and then applies
// every flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fl.Changed("print-path") {
		cfg.PrintPath = f.printPath
	}
	if fl.Changed("strict-exit") {
		cfg.StrictExit = f.strictExit
	}
	if fl.Changed("json") {
		cfg.JSON = f.json
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
