// Package main provides the CLI entry point for idiomark, a suite of
// micro-benchmarks contrasting inefficient and efficient container
// idioms.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KuanYung/idiomark/report"
	"github.com/KuanYung/idiomark/suite"
	"github.com/KuanYung/idiomark/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "idiomark",
		Short: "Micro-benchmarks contrasting container idioms",
		Long: `Idiomark times inefficient and efficient renditions of common
container operations (argument passing, string growth, slice
pre-allocation, lookups, copying) and reports how they compare.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		benchmarks []string
		seed       int64
		scale      float64
		outputJSON bool
		noSummary  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite",
		Long: `Run the benchmarks in sequence, printing one timing line per
variant, then a comparison summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd.Context(), logger, runConfig{
				benchmarks: benchmarks,
				seed:       seed,
				scale:      scale,
				outputJSON: outputJSON,
				noSummary:  noSummary,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&benchmarks, "benchmarks", nil,
		"Benchmarks to run (default: all, see 'idiomark list')")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed for input data (0 = use current time)")
	flags.Float64Var(&scale, "scale", 1.0,
		"Multiplier applied to benchmark input sizes")
	flags.BoolVar(&outputJSON, "json", false,
		"Output summary as JSON instead of a table")
	flags.BoolVar(&noSummary, "no-summary", false,
		"Skip the post-run summary")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available benchmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, b := range suite.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", b.Name, b.Title)
			}

			return nil
		},
	}
}

type runConfig struct {
	benchmarks []string
	seed       int64
	scale      float64
	outputJSON bool
	noSummary  bool
}

func runSuite(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	if cfg.scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", cfg.scale)
	}

	benches := suite.All()

	if len(cfg.benchmarks) > 0 {
		var err error

		benches, err = suite.Select(cfg.benchmarks)
		if err != nil {
			return fmt.Errorf("select benchmarks: %w", err)
		}
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.InfoContext(ctx, "starting benchmarks",
		slog.Int("count", len(benches)),
		slog.Int64("seed", seed),
		slog.Float64("scale", cfg.scale),
	)

	gen := workload.NewGenerator(workload.Config{Seed: seed})
	results := suite.Run(os.Stdout, benches, suite.Params{
		Gen:   gen,
		Scale: cfg.scale,
	})

	if !cfg.noSummary {
		fmt.Fprintln(os.Stdout)

		if cfg.outputJSON {
			if err := report.GenerateJSON(os.Stdout, results); err != nil {
				return fmt.Errorf("generate JSON summary: %w", err)
			}
		} else {
			if err := report.Generate(os.Stdout, results); err != nil {
				return fmt.Errorf("generate summary: %w", err)
			}
		}
	}

	logger.InfoContext(ctx, "benchmarks complete")

	return nil
}
