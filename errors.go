package ilp

import "fmt"

// FailureKind distinguishes the structured failure modes a solve can
// produce from ordinary branch-and-bound outcomes (infeasible nodes are
// not failures; they are pruned and logged).
type FailureKind string

const (
	// Unbounded: the primal simplex's entering column had no positive
	// pivot candidate.
	Unbounded FailureKind = "Unbounded"
	// Infeasible: the dual simplex's leaving row had no negative entry
	// to pivot on.
	Infeasible FailureKind = "Infeasible"
	// ZeroPivot: the selected pivot element was within PivotEps of zero.
	ZeroPivot FailureKind = "ZeroPivot"
	// IterationCap: a per-phase or per-engine iteration, node, or cut
	// cap was reached.
	IterationCap FailureKind = "IterationCap"
	// MalformedModel: a constraint's coefficient vector length did not
	// match the variable count, or similar shape mismatch.
	MalformedModel FailureKind = "MalformedModel"
	// NotApplicable: the knapsack engine was given a model that is not
	// a 0/1 knapsack. Always returned as data, never as an error.
	NotApplicable FailureKind = "NotApplicable"
)

// SolverError is the structured error type surfaced by every engine in
// this package. Callers distinguish failure modes by Kind rather than by
// string matching or type-switching on ad hoc error types.
type SolverError struct {
	Kind FailureKind
	Msg  string
}

func (e *SolverError) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// IsKind reports whether err is a *SolverError of the given kind.
func IsKind(err error, kind FailureKind) bool {
	se, ok := err.(*SolverError)
	return ok && se.Kind == kind
}
