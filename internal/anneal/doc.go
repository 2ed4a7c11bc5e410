// Package anneal implements simulated annealing over a two-dimensional
// continuous search space.
//
// The package defines the search primitives and the single search loop:
//
//   - [Point]: a candidate (x, y)
//   - [Objective]: the cost function to minimize
//   - [Source]: the caller-owned random source
//   - [Annealer]: runs the search for a fixed iteration budget
//
// # Example
//
//	src := rand.New(rand.NewSource(42))
//	a := anneal.New(anneal.Func(objective.Rosenbrock), src)
//	result, err := a.Run(anneal.Config{A: -2, B: 2, Kmax: 1000})
//
// # Schedule
//
// The temperature falls linearly from 1 at k=0 to 1/kmax at k=kmax-1. A
// proposal is always accepted when it strictly lowers the cost; otherwise it
// is accepted with probability exp(-delta/T).
//
// # Thread Safety
//
// Annealer instances are NOT thread-safe and neither is the Source they
// draw from. Use one Annealer and one Source per goroutine.
package anneal
