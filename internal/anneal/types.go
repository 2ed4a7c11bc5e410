package anneal

import (
	"fmt"
	"math"
)

// Point is a candidate in the search space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Objective is the cost function being minimized. An error aborts the run
// and is returned to the caller as is.
type Objective interface {
	Eval(x, y float64) (float64, error)
}

// Func adapts a plain cost function to Objective.
type Func func(x, y float64) float64

func (f Func) Eval(x, y float64) (float64, error) {
	return f(x, y), nil
}

// Source supplies the random draws: uniform [0,1) for initialization and
// acceptance, standard normal for proposals. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

// Step describes one iteration after its accept/reject decision.
type Step struct {
	K            int
	Temperature  float64
	Proposal     Point
	ProposalCost float64
	Probability  float64
	Accepted     bool
	Improved     bool
	Incumbent    Point
	Cost         float64
	PreviousCost float64
}

type Observer interface {
	OnStep(s Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s Step)

func (f ObserverFunc) OnStep(s Step) { f(s) }

type Metric interface {
	Name() string
	Observe(s Step)
	Value() float64
	Reset()
}

// Config holds the bounds used to draw the initial candidate and the
// iteration budget. A and B may be given in either order.
type Config struct {
	A    float64
	B    float64
	Kmax int
}

func DefaultConfig() Config {
	return Config{
		A:    -2,
		B:    2,
		Kmax: 1000,
	}
}

// Bounds returns the interval spanned by A and B as (lo, hi).
func (c Config) Bounds() (float64, float64) {
	return math.Min(c.A, c.B), math.Max(c.A, c.B)
}

type Result struct {
	Initial     Point
	InitialCost float64
	Final       Point
	FinalCost   float64
	Trajectory  []float64
	Accepted    int
	Improved    int
	Uphill      int
	Metrics     map[string]float64
}

// Iterations is the number of iterations that ran.
func (r *Result) Iterations() int {
	return len(r.Trajectory)
}
