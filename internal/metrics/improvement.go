package metrics

import "github.com/san-kum/anneal/internal/anneal"

// Improvement is the drop in incumbent cost between the start of the run
// and the latest step.
type Improvement struct {
	name    string
	start   float64
	last    float64
	samples int
}

func NewImprovement() *Improvement {
	return &Improvement{
		name: "improvement",
	}
}

func (m *Improvement) Name() string {
	return m.name
}

func (m *Improvement) Observe(s anneal.Step) {
	if m.samples == 0 {
		m.start = s.PreviousCost
	}
	m.samples++
	m.last = s.Cost
}

func (m *Improvement) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.start - m.last
}

func (m *Improvement) Reset() {
	m.start = 0
	m.last = 0
	m.samples = 0
}
