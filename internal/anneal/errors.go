package anneal

import "errors"

// Configuration errors returned by Annealer.Run before any iteration.
var (
	// ErrInvalidIterations indicates a negative iteration budget.
	ErrInvalidIterations = errors.New("anneal: iteration budget must be non-negative")

	// ErrInvalidBounds indicates a NaN or infinite search bound.
	ErrInvalidBounds = errors.New("anneal: bounds must be finite")

	// ErrNilObjective indicates the annealer was built without an objective.
	ErrNilObjective = errors.New("anneal: nil objective")

	// ErrNilSource indicates the annealer was built without a random source.
	ErrNilSource = errors.New("anneal: nil random source")
)
