package ilp

// Config consolidates the tolerances and iteration/node/cut caps used
// throughout the package into named, per-call values, rather than
// scattering inconsistent literals across each engine.
type Config struct {
	// ZeroEps is the tolerance for snapping near-zero tableau entries to
	// exactly zero after a pivot, and for "no entries of the wrong sign"
	// optimality/feasibility checks.
	ZeroEps float64
	// FracEps is the tolerance for detecting a fractional RHS or
	// variable value (distance from the nearest integer).
	FracEps float64
	// IntEps is the tolerance for declaring a value integer-feasible.
	IntEps float64
	// PivotEps is the tolerance below which a candidate pivot element is
	// treated as a zero pivot.
	PivotEps float64

	// MaxPrimalIterations caps a single primal simplex run.
	MaxPrimalIterations int
	// MaxDualIterations caps a single dual simplex run.
	MaxDualIterations int
	// MaxNodes caps the number of branch-and-bound nodes explored.
	MaxNodes int
	// MaxCuts caps the number of Gomory cuts added by the cutting-plane
	// engine.
	MaxCuts int
}

// DefaultConfig returns a reasonable set of tolerances and caps:
// ZeroEps ~= 1e-9, FracEps ~= 1e-7, IntEps ~= 1e-6, PivotEps ~= 1e-15,
// and caps generous enough for textbook-sized models.
func DefaultConfig() Config {
	return Config{
		ZeroEps:              1e-9,
		FracEps:              1e-7,
		IntEps:               1e-6,
		PivotEps:             1e-15,
		MaxPrimalIterations:  10000,
		MaxDualIterations:    10000,
		MaxNodes:             10000,
		MaxCuts:              200,
	}
}
