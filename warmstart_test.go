package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWarmStartTableau_NewRowPricedOutAgainstBasis(t *testing.T) {
	cfg := DefaultConfig()
	model := Model{
		Objective: Maximize,
		Variables: []Variable{
			{Name: "x1", Coefficient: 3},
			{Name: "x2", Coefficient: 2},
		},
		Constraints: []Constraint{
			{Coefficients: []float64{1, 1}, Relation: LE, RHS: 4},
			{Coefficients: []float64{1, 3}, Relation: LE, RHS: 6},
		},
	}
	cm, err := canonicalize(model, nil, cfg)
	assert.NoError(t, err)
	tab := buildFreshTableau(cm, cfg)

	iterations, err := runPrimalSimplex(tab, cfg)
	assert.NoError(t, err)
	parent := iterations[len(iterations)-1]

	child := buildWarmStartTableau(parent, 0, true, 1, cfg)
	assert.Equal(t, parent.rowsTotal()+1, child.rowsTotal())
	assert.Equal(t, parent.cols()+1, child.cols())

	lastRow := child.rowsTotal() - 1
	// the new row must carry zero in every column that was basic in the
	// parent: otherwise the basis's other rows would no longer be unit
	// columns once this row joins the system.
	for _, basicCol := range parent.basis {
		assert.InDelta(t, 0.0, child.at(lastRow, basicCol), 1e-9)
	}
}

func TestBuildWarmStartTableau_LowerBoundNegatesRow(t *testing.T) {
	cfg := DefaultConfig()
	model := Model{
		Objective: Maximize,
		Variables: []Variable{{Name: "x1", Coefficient: 1}},
		Constraints: []Constraint{
			{Coefficients: []float64{1}, Relation: LE, RHS: 10},
		},
	}
	cm, err := canonicalize(model, nil, cfg)
	assert.NoError(t, err)
	parent := buildFreshTableau(cm, cfg)

	child := buildWarmStartTableau(parent, 0, false, 3, cfg)
	lastRow := child.rowsTotal() - 1
	assert.Equal(t, -1.0, child.at(lastRow, 0))
	assert.Equal(t, -3.0, child.rhs(lastRow))
	assert.Equal(t, TagSurplus, child.rowTags[len(child.rowTags)-1])
}
