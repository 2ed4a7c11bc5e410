package anneal

import "math"

// Temperature is the linear cooling schedule (kmax-k)/kmax. It is 1 at k=0
// and 1/kmax at k=kmax-1; it is only defined for 0 <= k < kmax.
func Temperature(k, kmax int) float64 {
	return float64(kmax-k) / float64(kmax)
}

// AcceptanceProbability is exp(-delta/t) for a cost change delta at
// temperature t. It exceeds 1 for improving moves. An undefined delta
// (+Inf minus +Inf) yields NaN, which no uniform draw is less than.
func AcceptanceProbability(delta, t float64) float64 {
	return math.Exp(-delta / t)
}
