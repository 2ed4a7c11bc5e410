package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/anneal/internal/automation"
	"github.com/san-kum/anneal/internal/config"
	"github.com/san-kum/anneal/internal/objective"
	"github.com/san-kum/anneal/internal/viz"
)

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	results, runErr := automation.RunScenario(scenario, objective.NewRegistry())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOBJECTIVE\tKMAX\tSEED\tFINAL\tCOST")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t(%.4f, %.4f)\t%.6g\n",
			i+1,
			r.Step.Objective,
			r.Step.Kmax,
			r.Step.Seed,
			viz.Round(r.Result.Final.X, viz.DisplayPlaces),
			viz.Round(r.Result.Final.Y, viz.DisplayPlaces),
			r.Result.FinalCost,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range results {
		if !r.Step.Save {
			continue
		}
		cfg := &config.Config{
			Objective: r.Step.Objective,
			Bounds:    config.BoundsConfig{A: r.Step.A, B: r.Step.B},
			Kmax:      r.Step.Kmax,
			Seed:      r.Step.Seed,
		}
		if err := saveRun(cfg, r.Result); err != nil {
			return err
		}
	}

	return runErr
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	results, err := automation.RunTrials(&automation.TrialsConfig{
		Objective: cfg.Objective,
		Config:    cfg.AnnealConfig(),
		NumTrials: numTrials,
		SeedStart: cfg.Seed,
		Tolerance: tolerance,
	}, objective.NewRegistry())
	if err != nil {
		return err
	}

	stats := automation.Stats(results)
	fmt.Printf("%s: %d trials from seed %d, kmax %d\n", cfg.Objective, len(results), cfg.Seed, cfg.Kmax)
	fmt.Printf("  success (cost <= %g): %d/%d\n", tolerance, stats.Successes, len(results))
	fmt.Printf("  best cost: %.6g (seed %d)\n", stats.BestCost, stats.BestSeed)
	fmt.Printf("  mean cost: %.6g\n", stats.MeanCost)

	return nil
}
