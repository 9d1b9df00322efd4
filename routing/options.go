package routing

import "fmt"

// Options defines parameters for the search.
type Options struct {
	// AverageSpeed divides the great-circle distance in the default heuristic.
	AverageSpeed float64
	// HeuristicWeight scales h. Values above 1 give weighted A*, which expands
	// fewer nodes but only guarantees a cost within HeuristicWeight of optimal.
	HeuristicWeight float64
	// Heuristic replaces TravelTime(AverageSpeed) when set.
	Heuristic Heuristic
	// MaxExpansions aborts a search with ErrExpansionLimit; 0 means no limit.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

func WithAverageSpeed(speed float64) Option {
	return func(o *Options) { o.AverageSpeed = speed }
}

func WithHeuristicWeight(weight float64) Option {
	return func(o *Options) { o.HeuristicWeight = weight }
}

func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

func defaultOptions() Options {
	return Options{
		AverageSpeed:    DefaultAverageSpeed,
		HeuristicWeight: 1,
	}
}

func (o Options) validate() error {
	if o.Heuristic == nil && !(o.AverageSpeed > 0) {
		return fmt.Errorf("%w: average speed must be positive, got %v", ErrInvalidOption, o.AverageSpeed)
	}
	if !(o.HeuristicWeight >= 1) {
		return fmt.Errorf("%w: heuristic weight must be at least 1, got %v", ErrInvalidOption, o.HeuristicWeight)
	}
	if o.MaxExpansions < 0 {
		return fmt.Errorf("%w: max expansions must not be negative, got %d", ErrInvalidOption, o.MaxExpansions)
	}
	return nil
}
