// Package viz renders annealing runs in the terminal.
//
//   - [Summary]: styled report of the final candidate, costs and metrics
//   - [PlotTrajectory]: incumbent cost against iteration
//   - [AcceptanceSurface]: exp(-delta/T) curves for a set of temperatures
//   - [LiveModel]: Bubble Tea model that follows a run step by step
//
// # Key Bindings
//
//	q / Esc / Ctrl+C - leave the live view
package viz
