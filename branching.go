package ilp

import "math"

// selectBranchVariable picks, among the fractional integer/binary
// variables in x, the one with the largest fractional part, tie-breaking
// on smallest variable index. Returns -1 if x is already integer
// feasible.
//
// A branch-and-bound driver can pick its branching variable by several
// heuristics (largest coefficient, most-infeasible, naive round-robin);
// only the most-infeasible rule is used here, so the others are dropped
// rather than carried as dead configuration knobs.
func selectBranchVariable(x []float64, integral []bool, cfg Config) int {
	branchOn := -1
	bestFrac := cfg.IntEps

	for j, isIntegral := range integral {
		if !isIntegral {
			continue
		}
		frac := fractionalPart(x[j])
		if frac < cfg.IntEps {
			continue
		}
		if frac > bestFrac {
			bestFrac = frac
			branchOn = j
		}
	}
	return branchOn
}

// fractionalPart returns |v - round(v)|.
func fractionalPart(v float64) float64 {
	return math.Abs(v - math.Round(v))
}

// isIntegerFeasible reports whether every integer/binary variable in x
// is within IntEps of an integer, and every binary variable additionally
// lies in [0, 1] within IntEps.
func isIntegerFeasible(x []float64, integral, binary []bool, cfg Config) bool {
	for j, isIntegral := range integral {
		if !isIntegral {
			continue
		}
		if fractionalPart(x[j]) >= cfg.IntEps {
			return false
		}
		if binary[j] && (x[j] < -cfg.IntEps || x[j] > 1+cfg.IntEps) {
			return false
		}
	}
	return true
}
