package objective

import (
	"math"
	"testing"

	"github.com/san-kum/anneal/internal/anneal"
)

func TestRosenbrock(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{1, 1, 0},
		{0, 0, 1},
		{-1, 1, 4},
		{2, 4, 1},
		{0, 1, 101},
	}

	for _, tt := range tests {
		if got := Rosenbrock(tt.x, tt.y); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Rosenbrock(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMinimaAreZero(t *testing.T) {
	r := NewRegistry()

	for _, name := range r.List() {
		f, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		p, err := r.Minimum(name)
		if err != nil {
			t.Fatalf("minimum %s: %v", name, err)
		}

		v, err := f.Eval(p.X, p.Y)
		if err != nil {
			t.Fatalf("eval %s: %v", name, err)
		}
		if math.Abs(v) > 1e-12 {
			t.Errorf("%s at %v = %v, want 0", name, p, v)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("expected error for unknown objective")
	}
	if _, err := r.Minimum("nonexistent"); err == nil {
		t.Error("expected error for unknown objective")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("flat", func(x, y float64) float64 { return 0 }, anneal.Point{})

	names := r.List()
	want := []string{"booth", "flat", "himmelblau", "rastrigin", "rosenbrock", "sphere"}
	if len(names) != len(want) {
		t.Fatalf("expected %d objectives, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
