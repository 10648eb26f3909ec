package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testModel() Model {
	return Model{
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
}

func TestBuildFreshTableau_Shape(t *testing.T) {
	cfg := DefaultConfig()
	cm, err := canonicalize(testModel(), nil, cfg)
	assert.NoError(t, err)

	tab := buildFreshTableau(cm, cfg)
	assert.Equal(t, 3, tab.rowsTotal()) // objective row + 2 constraint rows
	assert.Equal(t, 5, tab.cols())      // 2 decision + 2 slack + RHS

	// objective row is -c in the decision columns.
	assert.Equal(t, -3.0, tab.at(0, 0))
	assert.Equal(t, -2.0, tab.at(0, 1))

	assert.Equal(t, []int{2, 3}, tab.basis)
}

func TestPivot_ZeroPivotRejected(t *testing.T) {
	cfg := DefaultConfig()
	cm, _ := canonicalize(testModel(), nil, cfg)
	tab := buildFreshTableau(cm, cfg)

	err := tab.pivot(1, 3) // column 3 is row 2's own slack, zero in row 1
	assert.Error(t, err)
	assert.True(t, IsKind(err, ZeroPivot))
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cm, _ := canonicalize(testModel(), nil, cfg)
	tab := buildFreshTableau(cm, cfg)

	clone := tab.clone()
	clone.set(0, 0, 999)
	assert.NotEqual(t, tab.at(0, 0), clone.at(0, 0))
}

func TestGrowInsertColumnBeforeRHS_PreservesExistingData(t *testing.T) {
	cfg := DefaultConfig()
	cm, _ := canonicalize(testModel(), nil, cfg)
	tab := buildFreshTableau(cm, cfg)
	oldRHS := tab.rhs(1)

	grown := tab.growInsertColumnBeforeRHS(TagSlack)
	assert.Equal(t, tab.rowsTotal()+1, grown.rowsTotal())
	assert.Equal(t, tab.cols()+1, grown.cols())
	assert.Equal(t, oldRHS, grown.rhs(1))
	assert.Equal(t, 0.0, grown.at(1, grown.rhsCol()-1))
}

func TestFormatCell(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"negative zero", -0.0000000001, "0"},
		{"integer-looking", 4.0, "4"},
		{"negative integer", -3.0, "-3"},
		{"fractional", 1.25, "1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.FormatCell(tt.in))
		})
	}
}
