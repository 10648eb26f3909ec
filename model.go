package ilp

import "github.com/pkg/errors"

// Objective is the optimization sense of a Model.
type Objective int

const (
	Minimize Objective = iota
	Maximize
)

// VarType constrains the values a Variable may take.
type VarType int

const (
	// ContinuousNonNegative variables satisfy x >= 0.
	ContinuousNonNegative VarType = iota
	// ContinuousNonPositive variables satisfy x <= 0.
	ContinuousNonPositive
	// Integer variables satisfy x >= 0 and must be integral at a solution.
	Integer
	// Binary variables are Integer with an implicit x <= 1 upper bound.
	Binary
)

func (t VarType) isIntegral() bool {
	return t == Integer || t == Binary
}

// Variable is one column of the model: a name (used only for reporting
// the solution map), its objective coefficient, and its type.
type Variable struct {
	Name        string
	Coefficient float64
	Type        VarType
}

// Relation is the comparison operator of a Constraint.
type Relation int

const (
	LE Relation = iota
	GE
	EQ
)

// Constraint is one row of the model: a coefficient per variable, a
// relation, and a right-hand side.
type Constraint struct {
	Coefficients []float64
	Relation     Relation
	RHS          float64
}

// Model is the immutable, canonical representation of an LP/ILP problem
// handed to a solver. Solvers clone-on-normalize; they never mutate a
// Model in place.
type Model struct {
	Objective   Objective
	Variables   []Variable
	Constraints []Constraint
}

// Bound is a single branching decision: either x[VarIndex] <= Value
// (IsUpper) or x[VarIndex] >= Value (!IsUpper).
type Bound struct {
	VarIndex int
	IsUpper  bool
	Value    float64
}

// Validate checks the structural invariant that every constraint's
// coefficient vector has exactly one entry per variable.
func (m Model) Validate() error {
	if len(m.Variables) == 0 {
		return &SolverError{Kind: MalformedModel, Msg: "model has no variables"}
	}
	for i, c := range m.Constraints {
		if len(c.Coefficients) != len(m.Variables) {
			return errors.Wrapf(&SolverError{Kind: MalformedModel, Msg: "coefficient count mismatch"},
				"constraint %d has %d coefficients, want %d", i, len(c.Coefficients), len(m.Variables))
		}
	}
	return nil
}

// objectiveCoefficients returns the model's objective coefficients in
// variable order.
func (m Model) objectiveCoefficients() []float64 {
	c := make([]float64, len(m.Variables))
	for i, v := range m.Variables {
		c[i] = v.Coefficient
	}
	return c
}
