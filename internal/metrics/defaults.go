package metrics

import "github.com/san-kum/anneal/internal/anneal"

// Defaults returns the metrics attached to every CLI run.
func Defaults() []anneal.Metric {
	return []anneal.Metric{
		NewAcceptanceRate(),
		NewUphillRate(),
		NewImprovement(),
	}
}
