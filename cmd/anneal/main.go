package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/anneal/internal/viz"
)

var (
	dataDir  string
	logLevel string
	// Kernel settings
	boundA float64
	boundB float64
	kmax   int
	seed   int64
	// Plot size
	plotWidth  int
	plotHeight int
	// Config file
	configFile string
	// Preset name
	preset string
	noSave bool
	// Acceptance surface
	maxDelta float64
	temps    []float64
	svgPath  string
	// Trials
	numTrials int
	tolerance float64
)

// main registers the commands and flags and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "anneal",
		Short:         "simulated annealing lab",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".anneal", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [objective]",
		Short: "minimize an objective",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnneal,
	}
	addKernelFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	liveCmd := &cobra.Command{
		Use:   "live [objective]",
		Short: "minimize an objective with a live view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addKernelFlags(liveCmd)
	liveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the trajectory to an SVG file")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	surfaceCmd := &cobra.Command{
		Use:   "surface",
		Short: "plot the acceptance probability against cost increase",
		Args:  cobra.NoArgs,
		RunE:  plotSurface,
	}
	surfaceCmd.Flags().Float64Var(&maxDelta, "max-delta", 5, "largest cost increase shown")
	surfaceCmd.Flags().Float64SliceVar(&temps, "temps", viz.DefaultTemperatures, "temperatures to draw")
	surfaceCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width")
	surfaceCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets [objective]",
		Short: "list available presets for an objective",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	objectivesCmd := &cobra.Command{
		Use:   "objectives",
		Short: "list objective functions",
		Args:  cobra.NoArgs,
		RunE:  listObjectives,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scenario of annealing runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store any run")

	trialsCmd := &cobra.Command{
		Use:   "trials [objective]",
		Short: "repeat a run over consecutive seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrials,
	}
	addKernelFlags(trialsCmd)
	trialsCmd.Flags().IntVar(&numTrials, "n", 20, "number of trials")
	trialsCmd.Flags().Float64Var(&tolerance, "tolerance", 1e-3, "final cost counted as a success")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, surfaceCmd, presetsCmd, objectivesCmd, batchCmd, trialsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKernelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&boundA, "a", -2, "first bound of the initial sampling interval")
	cmd.Flags().Float64Var(&boundB, "b", 2, "second bound of the initial sampling interval")
	cmd.Flags().IntVar(&kmax, "kmax", 1000, "number of iterations")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width")
	cmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func setupLogger(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
}
