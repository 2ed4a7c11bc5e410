package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/anneal/internal/anneal"
)

// DisplayPlaces is the rounding applied to coordinates in reports.
const DisplayPlaces = 4

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func formatPoint(p anneal.Point) string {
	return fmt.Sprintf("(%.*f, %.*f)", DisplayPlaces, Round(p.X, DisplayPlaces), DisplayPlaces, Round(p.Y, DisplayPlaces))
}

// Summary renders the outcome of a run for the console.
func Summary(objective string, result *anneal.Result) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("anneal: " + objective))
	b.WriteString("\n")
	b.WriteString(row("final", bestStyle.Render(formatPoint(result.Final))))
	b.WriteString("\n")
	b.WriteString(row("final cost", bestStyle.Render(fmt.Sprintf("%.6g", result.FinalCost))))
	b.WriteString("\n")
	b.WriteString(row("initial", formatPoint(result.Initial)))
	b.WriteString("\n")
	b.WriteString(row("initial cost", fmt.Sprintf("%.6g", result.InitialCost)))
	b.WriteString("\n")
	b.WriteString(row("iterations", fmt.Sprintf("%d", result.Iterations())))
	b.WriteString("\n")
	b.WriteString(row("accepted", fmt.Sprintf("%d (improved %d, uphill %d)", result.Accepted, result.Improved, result.Uphill)))

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(row(name, fmt.Sprintf("%.6f", result.Metrics[name])))
	}

	return panelStyle.Render(b.String())
}
