package anneal

import (
	"fmt"
	"math"
)

type Annealer struct {
	f         Objective
	src       Source
	metrics   []Metric
	observers []Observer
}

func New(f Objective, src Source) *Annealer {
	return &Annealer{
		f:         f,
		src:       src,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (a *Annealer) AddMetric(m Metric)     { a.metrics = append(a.metrics, m) }
func (a *Annealer) AddObserver(o Observer) { a.observers = append(a.observers, o) }

// Run performs exactly cfg.Kmax iterations starting from a candidate drawn
// uniformly from the bounds. An objective error is returned unwrapped with a
// nil result.
func (a *Annealer) Run(cfg Config) (*Result, error) {
	if err := a.validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range a.metrics {
		m.Reset()
	}

	lo, hi := cfg.Bounds()
	x := lo + a.src.Float64()*(hi-lo)
	y := lo + a.src.Float64()*(hi-lo)
	current := Point{X: x, Y: y}

	cost, err := a.cost(current)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Initial:     current,
		InitialCost: cost,
		Trajectory:  make([]float64, 0, cfg.Kmax),
		Metrics:     make(map[string]float64),
	}

	for k := 0; k < cfg.Kmax; k++ {
		dx := a.src.NormFloat64()
		dy := a.src.NormFloat64()
		proposal := current.Add(dx, dy)

		t := Temperature(k, cfg.Kmax)

		proposalCost, err := a.cost(proposal)
		if err != nil {
			return nil, err
		}

		previous := cost
		accepted, p := accept(proposalCost, cost, t, a.src)
		improved := proposalCost < cost
		if accepted {
			current, cost = proposal, proposalCost
			result.Accepted++
			if improved {
				result.Improved++
			} else {
				result.Uphill++
			}
		}

		result.Trajectory = append(result.Trajectory, cost)

		step := Step{
			K:            k,
			Temperature:  t,
			Proposal:     proposal,
			ProposalCost: proposalCost,
			Probability:  p,
			Accepted:     accepted,
			Improved:     improved,
			Incumbent:    current,
			Cost:         cost,
			PreviousCost: previous,
		}
		for _, m := range a.metrics {
			m.Observe(step)
		}
		for _, obs := range a.observers {
			obs.OnStep(step)
		}
	}

	result.Final = current
	result.FinalCost = cost

	for _, m := range a.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (a *Annealer) validateConfig(cfg Config) error {
	if a.f == nil {
		return ErrNilObjective
	}
	if a.src == nil {
		return ErrNilSource
	}
	if cfg.Kmax < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidIterations, cfg.Kmax)
	}
	if math.IsNaN(cfg.A) || math.IsInf(cfg.A, 0) || math.IsNaN(cfg.B) || math.IsInf(cfg.B, 0) {
		return fmt.Errorf("%w, got [%g, %g]", ErrInvalidBounds, cfg.A, cfg.B)
	}
	return nil
}

// cost evaluates the objective. NaN is reported as +Inf so that an undefined
// cost never wins a comparison.
func (a *Annealer) cost(p Point) (float64, error) {
	c, err := a.f.Eval(p.X, p.Y)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(c) {
		return math.Inf(1), nil
	}
	return c, nil
}

// accept decides whether the proposal replaces the incumbent. A strict
// improvement is accepted without consuming a uniform draw.
func accept(proposalCost, cost, t float64, src Source) (bool, float64) {
	p := AcceptanceProbability(proposalCost-cost, t)
	if proposalCost < cost {
		return true, p
	}
	return src.Float64() < p, p
}
