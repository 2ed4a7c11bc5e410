package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/anneal/internal/anneal"
)

// PlotTrajectory draws incumbent cost against iteration. Leading and
// trailing infinite costs are trimmed; infinite costs inside the finite span
// are left as gaps and the plot is then drawn at full length, since
// resampling across a gap turns its neighbours into NaN.
func PlotTrajectory(trajectory []float64, width, height int) string {
	if len(trajectory) == 0 {
		return "no iterations to plot"
	}

	first, last := -1, -1
	for i, c := range trajectory {
		if isFinite(c) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return "no finite costs to plot"
	}

	data := make([]float64, 0, last-first+1)
	gaps := false
	for _, c := range trajectory[first : last+1] {
		if !isFinite(c) {
			data = append(data, math.NaN())
			gaps = true
			continue
		}
		data = append(data, c)
	}

	caption := fmt.Sprintf("incumbent cost over %d iterations", len(trajectory))
	if first > 0 || last < len(trajectory)-1 {
		caption = fmt.Sprintf("incumbent cost, iterations %d-%d of %d", first, last, len(trajectory))
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	}
	if !gaps {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(data, opts...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DefaultTemperatures are the curves drawn by AcceptanceSurface when none
// are given.
var DefaultTemperatures = []float64{1, 0.5, 0.1, 0.01}

var surfaceColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
}

// AcceptanceSurface draws the probability exp(-delta/T) of accepting a move
// that is worse by delta, for delta in [0, maxDelta] and each temperature.
func AcceptanceSurface(maxDelta float64, temps []float64, width, height int) (string, error) {
	if !(maxDelta > 0) || math.IsInf(maxDelta, 0) {
		return "", fmt.Errorf("max delta must be positive and finite, got %v", maxDelta)
	}
	if len(temps) == 0 {
		return "", errors.New("at least one temperature is required")
	}
	if width < 2 {
		return "", fmt.Errorf("width must be at least 2, got %d", width)
	}

	series := make([][]float64, len(temps))
	labels := make([]string, len(temps))
	for i, t := range temps {
		if !(t > 0) || math.IsInf(t, 0) {
			return "", fmt.Errorf("temperature must be positive and finite, got %v", t)
		}
		series[i] = make([]float64, width)
		for j := range series[i] {
			delta := maxDelta * float64(j) / float64(width-1)
			series[i][j] = anneal.AcceptanceProbability(delta, t)
		}
		labels[i] = fmt.Sprintf("T=%g", t)
	}

	colors := make([]asciigraph.AnsiColor, len(temps))
	for i := range colors {
		colors[i] = surfaceColors[i%len(surfaceColors)]
	}

	caption := fmt.Sprintf("P(accept) = exp(-delta/T), delta in [0, %g]; %s", maxDelta, strings.Join(labels, ", "))
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	), nil
}
