package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/anneal/internal/config"
	"github.com/san-kum/anneal/internal/export"
	"github.com/san-kum/anneal/internal/objective"
	"github.com/san-kum/anneal/internal/storage"
	"github.com/san-kum/anneal/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOBJECTIVE\tTIME\tKMAX\tSEED\tFINAL\tCOST")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t(%.4f, %.4f)\t%.6g\n",
			run.ID,
			run.Objective,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Kmax,
			run.Seed,
			viz.Round(run.Final.X, viz.DisplayPlaces),
			viz.Round(run.Final.Y, viz.DisplayPlaces),
			run.FinalCost,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trajectory, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("objective: %s\n", meta.Objective)
	fmt.Printf("final: (%.4f, %.4f) cost %.6g\n\n",
		viz.Round(meta.Final.X, viz.DisplayPlaces), viz.Round(meta.Final.Y, viz.DisplayPlaces), meta.FinalCost)

	fmt.Println(viz.PlotTrajectory(trajectory, plotWidth, plotHeight))

	if svgPath != "" {
		if err := export.SaveSVG(svgPath, trajectory, plotWidth*10, plotHeight*25, "#00ff00"); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		slog.Info("svg written", "path", svgPath)
	}
	return nil
}

type exportData struct {
	*storage.RunMetadata
	Trajectory []float64 `json:"trajectory"`
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trajectory, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData{RunMetadata: meta, Trajectory: trajectory})
}

func plotSurface(cmd *cobra.Command, args []string) error {
	out, err := viz.AcceptanceSurface(maxDelta, temps, plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for objective: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		cfg := config.GetPreset(args[0], p)
		fmt.Printf("  %-10s bounds [%g, %g]  kmax %d\n", p, cfg.Bounds.A, cfg.Bounds.B, cfg.Kmax)
	}
	return nil
}

func listObjectives(cmd *cobra.Command, args []string) error {
	registry := objective.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMINIMUM")
	for _, name := range registry.List() {
		p, err := registry.Minimum(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, p)
	}
	return w.Flush()
}
