package config

import "sort"

var Presets = map[string]map[string]*Config{
	"rosenbrock": {
		"classic": {
			Objective: "rosenbrock", Kmax: 1000,
			Bounds: BoundsConfig{A: -2, B: 2},
			Plot:   PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		},
		"wide": {
			Objective: "rosenbrock", Kmax: 5000,
			Bounds: BoundsConfig{A: -5, B: 5},
			Plot:   PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		},
		"quick": {
			Objective: "rosenbrock", Kmax: 100,
			Bounds: BoundsConfig{A: -2, B: 2},
			Plot:   PlotConfig{Width: 60, Height: 8},
		},
	},
	"himmelblau": {
		"classic": {
			Objective: "himmelblau", Kmax: 2000,
			Bounds: BoundsConfig{A: -5, B: 5},
			Plot:   PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		},
	},
	"rastrigin": {
		"classic": {
			Objective: "rastrigin", Kmax: 5000,
			Bounds: BoundsConfig{A: -5.12, B: 5.12},
			Plot:   PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		},
	},
	"sphere": {
		"classic": {
			Objective: "sphere", Kmax: 500,
			Bounds: BoundsConfig{A: -10, B: 10},
			Plot:   PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		},
	},
	"booth": {
		"classic": {
			Objective: "booth", Kmax: 1000,
			Bounds: BoundsConfig{A: -10, B: 10},
			Plot:   PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(objective, preset string) *Config {
	objectivePresets, ok := Presets[objective]
	if !ok {
		return nil
	}
	cfg, ok := objectivePresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(objective string) []string {
	objectivePresets, ok := Presets[objective]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(objectivePresets))
	for name := range objectivePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
