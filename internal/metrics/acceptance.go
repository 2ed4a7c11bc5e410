package metrics

import "github.com/san-kum/anneal/internal/anneal"

// AcceptanceRate is the fraction of proposals that replaced the incumbent.
type AcceptanceRate struct {
	name     string
	accepted int
	samples  int
}

func NewAcceptanceRate() *AcceptanceRate {
	return &AcceptanceRate{
		name: "acceptance_rate",
	}
}

func (a *AcceptanceRate) Name() string {
	return a.name
}

func (a *AcceptanceRate) Observe(s anneal.Step) {
	a.samples++
	if s.Accepted {
		a.accepted++
	}
}

func (a *AcceptanceRate) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.accepted) / float64(a.samples)
}

func (a *AcceptanceRate) Reset() {
	a.accepted = 0
	a.samples = 0
}

// UphillRate is the fraction of proposals accepted without improving the
// incumbent.
type UphillRate struct {
	name    string
	uphill  int
	samples int
}

func NewUphillRate() *UphillRate {
	return &UphillRate{
		name: "uphill_rate",
	}
}

func (u *UphillRate) Name() string {
	return u.name
}

func (u *UphillRate) Observe(s anneal.Step) {
	u.samples++
	if s.Accepted && !s.Improved {
		u.uphill++
	}
}

func (u *UphillRate) Value() float64 {
	if u.samples == 0 {
		return 0
	}
	return float64(u.uphill) / float64(u.samples)
}

func (u *UphillRate) Reset() {
	u.uphill = 0
	u.samples = 0
}
