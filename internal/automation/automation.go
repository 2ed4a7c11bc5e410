package automation

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/anneal/internal/anneal"
	"github.com/san-kum/anneal/internal/metrics"
	"github.com/san-kum/anneal/internal/objective"
)

// Scenario defines a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario.
type ScenarioStep struct {
	Objective string  `yaml:"objective"`
	A         float64 `yaml:"a"`
	B         float64 `yaml:"b"`
	Kmax      int     `yaml:"kmax"`
	Seed      int64   `yaml:"seed"`
	Save      bool    `yaml:"save"`
}

// StepResult pairs a scenario step with its outcome.
type StepResult struct {
	Step   ScenarioStep
	Result *anneal.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(scenario *Scenario, registry *objective.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		slog.Info("running scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "objective", step.Objective)

		f, err := registry.Get(step.Objective)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		a := anneal.New(f, rand.New(rand.NewSource(step.Seed)))
		for _, m := range metrics.Defaults() {
			a.AddMetric(m)
		}

		result, err := a.Run(anneal.Config{A: step.A, B: step.B, Kmax: step.Kmax})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Result: result})
	}

	return results, nil
}

// TrialsConfig repeats one run over consecutive seeds.
type TrialsConfig struct {
	Objective string
	Config    anneal.Config
	NumTrials int
	SeedStart int64
	// Tolerance is the final cost at or below which a trial counts as a
	// success.
	Tolerance float64
}

type TrialResult struct {
	TrialID   int
	Seed      int64
	Final     anneal.Point
	FinalCost float64
	Success   bool
}

// RunTrials executes the trials one after another.
func RunTrials(cfg *TrialsConfig, registry *objective.Registry) ([]TrialResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("number of trials must be positive, got %d", cfg.NumTrials)
	}

	f, err := registry.Get(cfg.Objective)
	if err != nil {
		return nil, err
	}

	results := make([]TrialResult, 0, cfg.NumTrials)

	for trial := 0; trial < cfg.NumTrials; trial++ {
		seed := cfg.SeedStart + int64(trial)

		result, err := anneal.New(f, rand.New(rand.NewSource(seed))).Run(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		results = append(results, TrialResult{
			TrialID:   trial,
			Seed:      seed,
			Final:     result.Final,
			FinalCost: result.FinalCost,
			Success:   result.FinalCost <= cfg.Tolerance,
		})

		if (trial+1)%10 == 0 {
			slog.Debug("trials progress", "done", trial+1, "total", cfg.NumTrials)
		}
	}

	return results, nil
}

// TrialStats summarizes a set of trials.
type TrialStats struct {
	Successes int
	Failures  int
	BestCost  float64
	BestSeed  int64
	MeanCost  float64
}

func Stats(results []TrialResult) TrialStats {
	stats := TrialStats{BestCost: math.Inf(1)}
	if len(results) == 0 {
		return stats
	}

	sum := 0.0
	for _, r := range results {
		if r.Success {
			stats.Successes++
		} else {
			stats.Failures++
		}
		if r.FinalCost < stats.BestCost {
			stats.BestCost = r.FinalCost
			stats.BestSeed = r.Seed
		}
		sum += r.FinalCost
	}
	stats.MeanCost = sum / float64(len(results))

	return stats
}
