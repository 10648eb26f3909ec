package ilp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolverError_ErrorMessage(t *testing.T) {
	err := &SolverError{Kind: Unbounded, Msg: "no positive entry"}
	assert.Equal(t, "Unbounded: no positive entry", err.Error())
}

func TestSolverError_ErrorMessageWithoutMsg(t *testing.T) {
	err := &SolverError{Kind: Infeasible}
	assert.Equal(t, "Infeasible", err.Error())
}

func TestIsKind_FalseForOtherErrorTypes(t *testing.T) {
	assert.False(t, IsKind(errors.New("boom"), Unbounded))
}

func TestIsKind_MatchesKind(t *testing.T) {
	err := &SolverError{Kind: ZeroPivot}
	assert.True(t, IsKind(err, ZeroPivot))
	assert.False(t, IsKind(err, Infeasible))
}
