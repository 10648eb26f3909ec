package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolvePrimal_ReturnsEveryIterationIncludingTheStart(t *testing.T) {
	cfg := DefaultConfig()
	iterations, err := SolvePrimal(testModel(), cfg)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(iterations), 1)
}

func TestSolveDual_AcceptsPreprocessedTableau(t *testing.T) {
	cfg := DefaultConfig()
	tab, err := BuildTableau(testModel(), cfg)
	assert.NoError(t, err)

	iterations, err := SolveDual(tab, cfg)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(iterations), 1)
}

func TestSolveBranchAndBound_NamesResultByVariable(t *testing.T) {
	cfg := DefaultConfig()
	model := Model{
		Objective: Maximize,
		Variables: []Variable{
			{Name: "x1", Coefficient: 1, Type: Integer},
			{Name: "x2", Coefficient: 1, Type: Integer},
		},
		Constraints: []Constraint{
			{Coefficients: []float64{1, 2}, Relation: LE, RHS: 4},
			{Coefficients: []float64{3, 2}, Relation: LE, RHS: 6},
		},
	}

	res, err := SolveBranchAndBound(model, cfg)
	assert.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Contains(t, res.BestX, "x1")
	assert.Contains(t, res.BestX, "x2")
	assert.NotEmpty(t, res.Log)
}

func TestSolveKnapsack_NotApplicableCarriesReason(t *testing.T) {
	cfg := DefaultConfig()
	model := Model{
		Objective:   Minimize,
		Variables:   []Variable{{Name: "x1", Coefficient: 1, Type: Binary}},
		Constraints: []Constraint{{Coefficients: []float64{1}, Relation: LE, RHS: 1}},
	}

	res := SolveKnapsack(model, cfg)
	assert.False(t, res.Applicability.Applicable)
	assert.False(t, res.HasCandidate)
}
