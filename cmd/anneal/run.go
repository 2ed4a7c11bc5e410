package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/anneal/internal/anneal"
	"github.com/san-kum/anneal/internal/config"
	"github.com/san-kum/anneal/internal/metrics"
	"github.com/san-kum/anneal/internal/objective"
	"github.com/san-kum/anneal/internal/storage"
	"github.com/san-kum/anneal/internal/viz"
)

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Objective = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Objective, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Objective))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			fileCfg.Objective = args[0]
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("a") {
		cfg.Bounds.A = boundA
	}
	if flags.Changed("b") {
		cfg.Bounds.B = boundB
	}
	if flags.Changed("kmax") {
		cfg.Kmax = kmax
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("plot-width") {
		cfg.Plot.Width = plotWidth
	}
	if flags.Changed("plot-height") {
		cfg.Plot.Height = plotHeight
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newAnnealer(cfg *config.Config) (*anneal.Annealer, error) {
	registry := objective.NewRegistry()
	f, err := registry.Get(cfg.Objective)
	if err != nil {
		return nil, err
	}

	a := anneal.New(f, rand.New(rand.NewSource(cfg.Seed)))
	for _, m := range metrics.Defaults() {
		a.AddMetric(m)
	}
	return a, nil
}

func runAnneal(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	a, err := newAnnealer(cfg)
	if err != nil {
		return err
	}

	slog.Info("starting run", "objective", cfg.Objective, "a", cfg.Bounds.A, "b", cfg.Bounds.B, "kmax", cfg.Kmax, "seed", cfg.Seed)
	start := time.Now()

	result, err := a.Run(cfg.AnnealConfig())
	if err != nil {
		return err
	}

	slog.Info("run complete", "elapsed", time.Since(start), "final_cost", result.FinalCost)

	fmt.Println(viz.Summary(cfg.Objective, result))
	fmt.Println()
	fmt.Println(viz.PlotTrajectory(result.Trajectory, cfg.Plot.Width, cfg.Plot.Height))

	return saveRun(cfg, result)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	a, err := newAnnealer(cfg)
	if err != nil {
		return err
	}

	slog.Debug("starting live run", "objective", cfg.Objective, "kmax", cfg.Kmax, "seed", cfg.Seed)

	result, err := viz.RunLive(a, cfg.AnnealConfig(), cfg.Objective, viz.LiveOptions{
		Width:  cfg.Plot.Width,
		Height: cfg.Plot.Height,
	})
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(cfg.Objective, result))

	return saveRun(cfg, result)
}

func saveRun(cfg *config.Config, result *anneal.Result) error {
	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(cfg.Objective, cfg.Seed, cfg.AnnealConfig(), result)
	if errors.Is(err, storage.ErrNonFinite) {
		slog.Warn("run not saved", "error", err)
		return nil
	}
	if err != nil {
		return err
	}

	slog.Debug("run saved", "dir", dataDir, "id", runID)
	fmt.Printf("run id: %s\n", runID)
	return nil
}
