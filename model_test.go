package ilp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestModelValidate_RejectsCoefficientCountMismatch(t *testing.T) {
	model := Model{
		Variables: []Variable{{Name: "x1"}, {Name: "x2"}},
		Constraints: []Constraint{
			{Coefficients: []float64{1}, Relation: LE, RHS: 1},
		},
	}
	err := model.Validate()
	assert.Error(t, err)
	assert.True(t, IsKind(errors.Cause(err), MalformedModel))
}

func TestModelValidate_RejectsNoVariables(t *testing.T) {
	model := Model{}
	err := model.Validate()
	assert.Error(t, err)
	assert.True(t, IsKind(err, MalformedModel))
}

func TestModelValidate_AcceptsWellFormedModel(t *testing.T) {
	err := testModel().Validate()
	assert.NoError(t, err)
}

func TestVarTypeIsIntegral(t *testing.T) {
	assert.True(t, Integer.isIntegral())
	assert.True(t, Binary.isIntegral())
	assert.False(t, ContinuousNonNegative.isIntegral())
	assert.False(t, ContinuousNonPositive.isIntegral())
}
