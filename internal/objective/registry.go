package objective

import (
	"fmt"
	"sort"

	"github.com/san-kum/anneal/internal/anneal"
)

type entry struct {
	fn      anneal.Func
	minimum anneal.Point
}

type Registry struct {
	objectives map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{
		objectives: make(map[string]entry),
	}

	r.Register("rosenbrock", Rosenbrock, anneal.Point{X: 1, Y: 1})
	r.Register("sphere", Sphere, anneal.Point{})
	r.Register("himmelblau", Himmelblau, anneal.Point{X: 3, Y: 2})
	r.Register("rastrigin", Rastrigin, anneal.Point{})
	r.Register("booth", Booth, anneal.Point{X: 1, Y: 3})

	return r
}

// Register adds or replaces a named objective together with a known
// minimizer.
func (r *Registry) Register(name string, fn anneal.Func, minimum anneal.Point) {
	r.objectives[name] = entry{fn: fn, minimum: minimum}
}

func (r *Registry) Get(name string) (anneal.Objective, error) {
	e, ok := r.objectives[name]
	if !ok {
		return nil, fmt.Errorf("unknown objective: %s (available: %v)", name, r.List())
	}
	return e.fn, nil
}

// Minimum returns a known minimizer of the named objective.
func (r *Registry) Minimum(name string) (anneal.Point, error) {
	e, ok := r.objectives[name]
	if !ok {
		return anneal.Point{}, fmt.Errorf("unknown objective: %s", name)
	}
	return e.minimum, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.objectives))
	for name := range r.objectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
