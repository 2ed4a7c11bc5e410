package objective

import "math"

// Rosenbrock is the banana valley (1-x)^2 + 100(y-x^2)^2, minimum 0 at (1, 1).
func Rosenbrock(x, y float64) float64 {
	a := 1 - x
	b := y - x*x
	return a*a + 100*b*b
}

// Sphere is x^2 + y^2, minimum 0 at the origin.
func Sphere(x, y float64) float64 {
	return x*x + y*y
}

// Himmelblau has four minima of 0, one of them at (3, 2).
func Himmelblau(x, y float64) float64 {
	a := x*x + y - 11
	b := x + y*y - 7
	return a*a + b*b
}

// Rastrigin is highly multimodal with its global minimum 0 at the origin.
func Rastrigin(x, y float64) float64 {
	return 20 + x*x - 10*math.Cos(2*math.Pi*x) + y*y - 10*math.Cos(2*math.Pi*y)
}

// Booth has its minimum 0 at (1, 3).
func Booth(x, y float64) float64 {
	a := x + 2*y - 7
	b := 2*x + y - 5
	return a*a + b*b
}
