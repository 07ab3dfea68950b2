package generator

import "github.com/alcazar-gen/alcazar/internal/sat"

const DefaultMaxAttempts = 1000

// Options configures board generation.
type Options struct {
	Width  int
	Height int
	// Seed makes generation reproducible; 0 draws a seed from the system
	// entropy source.
	Seed int64
	// MaxAttempts bounds how many entry/exit pairs are sampled before
	// generation gives up.
	MaxAttempts int
	// Solver constructs the SAT backend. nil means the in-process solver.
	Solver func() sat.Solver
	// Verbose logs minimization progress.
	Verbose bool
}

// DefaultOptions returns standard generator options for the given
// dimensions.
func DefaultOptions(width, height int) *Options {
	return &Options{
		Width:       width,
		Height:      height,
		MaxAttempts: DefaultMaxAttempts,
	}
}
