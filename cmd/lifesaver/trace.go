package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesaver/internal/life"
	"github.com/san-kum/lifesaver/internal/metrics"
	"github.com/san-kum/lifesaver/internal/trace"
	"github.com/spf13/cobra"
)

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newStderrLogger(cmd)
	if err != nil {
		return err
	}

	b, _ := cfg.GridBoundary()
	rng := life.NewRNG(cfg.Seed)
	grid := life.New(cfg.Trace.Height, cfg.Trace.Width, b, rng)

	runner := trace.New(grid)
	population := metrics.NewPopulation()
	runner.AddMetric(population)
	runner.AddMetric(metrics.NewDensity())
	runner.AddMetric(metrics.NewActivity())

	logger.Info("trace", "height", grid.Height(), "width", grid.Width(), "boundary", b, "seed", rng.Seed())
	start := time.Now()
	result, err := runner.Run(cmd.Context(), trace.Config{
		Generations:      cfg.Trace.Generations,
		StopAtFixedPoint: stopFixed,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("trace finished", "generations", result.Generations, "elapsed", time.Since(start), "fixed_point", result.FixedPoint)

	if len(result.Populations) > 1 {
		caption := fmt.Sprintf("population (%s, %dx%d, seed %d)", b, grid.Height(), grid.Width(), rng.Seed())
		graph := asciigraph.Plot(result.Float64s(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "generations\t%d\n", result.Generations)
	fmt.Fprintf(w, "fixed_point\t%v\n", result.FixedPoint)
	fmt.Fprintf(w, "peak\t%d\n", population.Peak())
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if dump {
		fmt.Fprintln(cmd.OutOrStdout())
		return grid.Print(cmd.OutOrStdout())
	}
	return nil
}
