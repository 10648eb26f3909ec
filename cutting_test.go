package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCuttingPlane_AllIntegerSolutionOnBinaryIP(t *testing.T) {
	cfg := DefaultConfig()
	model := knapsackModel(40, []float64{2, 3, 3, 5, 2, 4}, []float64{11, 8, 6, 14, 10, 10})

	result, err := runCuttingPlane(model, cfg)
	assert.NoError(t, err)
	assert.InDelta(t, 13.0, result.z, 1e-6)
	for _, v := range result.x {
		assert.InDelta(t, v, roundToNearestInt(v), 1e-6)
	}
	assert.GreaterOrEqual(t, len(result.tableaus), 1)
}

func TestChooseCutSourceRow_PrefersRowWhereFractionalVariableIsBasic(t *testing.T) {
	cfg := DefaultConfig()
	tab := newTableau(2, 1, cfg)
	tab.set(1, 0, 1)
	tab.set(1, 2, 1.5)
	tab.basis[0] = 0 // variable 0 basic in row 1 with fractional RHS

	cm := &canonicalModel{n: 2, integral: []bool{true, true}, binary: []bool{false, false}}
	row, ok := chooseCutSourceRow(tab, 0, cm, cfg)
	assert.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestInsertGomoryCut_NewRowUsesFloorMinusEntry(t *testing.T) {
	cfg := DefaultConfig()
	tab := newTableau(1, 1, cfg)
	tab.set(1, 0, 0.4)
	tab.set(1, 1, 1)
	tab.set(1, 2, 2.7)

	cut := insertGomoryCut(tab, 1, cfg)
	lastRow := cut.rowsTotal() - 1
	assert.InDelta(t, -0.4, cut.at(lastRow, 0), 1e-9)
	assert.InDelta(t, -0.7, cut.rhs(lastRow), 1e-9)
}
