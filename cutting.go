package ilp

import (
	"fmt"
	"math"
)

// cuttingPlaneResult is the raw outcome of a Gomory cutting-plane run.
type cuttingPlaneResult struct {
	tableaus  []*Tableau
	cutsAdded int
	x         []float64
	z         float64
	tree      *logTree
}

// runCuttingPlane implements the Gomory fractional-cut loop: solve the
// LP, find the first fractional integer/binary variable, cut it off by
// inserting a new row derived from its basic constraint row, and
// re-solve with Dual Simplex. It shares the
// row/column insertion topology of the branch-and-bound warm-start
// (growInsertColumnBeforeRHS) since both append one slack column before
// RHS and one new row at the bottom.
func runCuttingPlane(model Model, cfg Config) (cuttingPlaneResult, error) {
	var autoBounds []Bound
	for j, v := range model.Variables {
		if v.Type == Integer {
			autoBounds = append(autoBounds, Bound{VarIndex: j, IsUpper: true, Value: 1})
		}
	}

	cm, err := canonicalize(model, autoBounds, cfg)
	if err != nil {
		return cuttingPlaneResult{}, err
	}

	t := buildFreshTableau(cm, cfg)
	tree := newLogTree()
	tableaus := []*Tableau{t.clone()}

	for cutsAdded := 0; cutsAdded <= cfg.MaxCuts; {
		if t.needsDualRepair() {
			iters, err := runDualSimplex(t, cfg)
			tableaus = append(tableaus, iters[1:]...)
			t = iters[len(iters)-1]
			if err != nil {
				return cuttingPlaneResult{tableaus: tableaus, cutsAdded: cutsAdded, tree: tree}, err
			}
		}

		iters, err := runPrimalSimplex(t, cfg)
		tableaus = append(tableaus, iters[1:]...)
		t = iters[len(iters)-1]
		if err != nil {
			return cuttingPlaneResult{tableaus: tableaus, cutsAdded: cutsAdded, tree: tree}, err
		}

		y := t.extractX()
		x := cm.unflip(y)

		j := firstFractionalIntegerVar(x, cm.integral, cfg)
		if j == -1 {
			return cuttingPlaneResult{tableaus: tableaus, cutsAdded: cutsAdded, x: x, z: cm.trueObjective(x), tree: tree}, nil
		}
		if cutsAdded == cfg.MaxCuts {
			break
		}

		sourceRow, ok := chooseCutSourceRow(t, j, cm, cfg)
		if !ok {
			tree.record(formatCutLabel(cutsAdded+1), CUT_ROW_DEGENERATE, cm.trueObjective(x))
			return cuttingPlaneResult{tableaus: tableaus, cutsAdded: cutsAdded, x: x, z: cm.trueObjective(x), tree: tree}, nil
		}

		t = insertGomoryCut(t, sourceRow, cfg)
		cutsAdded++
		tableaus = append(tableaus, t.clone())
		tree.record(formatCutLabel(cutsAdded), CUT_INSERTED, cm.trueObjective(x))
	}

	return cuttingPlaneResult{tableaus: tableaus, cutsAdded: cfg.MaxCuts, tree: tree},
		&SolverError{Kind: IterationCap, Msg: "cutting plane exceeded max cuts"}
}

func formatCutLabel(n int) string {
	return fmt.Sprintf("Cut%d", n)
}

// firstFractionalIntegerVar returns the smallest index of an
// integer/binary variable whose value in x is more than FracEps from
// the nearest integer, or -1 if none.
func firstFractionalIntegerVar(x []float64, integral []bool, cfg Config) int {
	for j, isIntegral := range integral {
		if isIntegral && isFractional(x[j], cfg) {
			return j
		}
	}
	return -1
}

// chooseCutSourceRow applies a row-priority rule: prefer the row where
// the fractional variable is basic, then any row whose basic column is
// an integer variable with fractional RHS, then any row with a
// fractional RHS; within each tier, skip rows whose fractional part is
// degenerately close to 0 or 1.
func chooseCutSourceRow(t *Tableau, fracVar int, cm *canonicalModel, cfg Config) (int, bool) {
	rows := t.rowsTotal()
	var candidates []int
	seen := make(map[int]bool)

	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			candidates = append(candidates, i)
		}
	}

	for i := 1; i < rows; i++ {
		if t.basis[i-1] == fracVar {
			add(i)
		}
	}
	for i := 1; i < rows; i++ {
		col := t.basis[i-1]
		if col >= 0 && col < cm.n && cm.integral[col] && isFractional(t.rhs(i), cfg) {
			add(i)
		}
	}
	for i := 1; i < rows; i++ {
		if isFractional(t.rhs(i), cfg) {
			add(i)
		}
	}

	for _, i := range candidates {
		if isFractional(t.rhs(i), cfg) {
			return i, true
		}
	}
	return -1, false
}

// insertGomoryCut grows the tableau by one row and one slack column:
// the new row's coefficient for every existing non-RHS column is
// floor(a)-a where a is that column's entry in the source row, the new
// slack column is +1, and the new RHS is the negated fractional part of
// the source row's RHS.
func insertGomoryCut(t *Tableau, sourceRow int, cfg Config) *Tableau {
	child := t.growInsertColumnBeforeRHS(TagSlack)
	lastRow := child.rowsTotal() - 1
	newSlackCol := child.rhsCol() - 1

	span := t.cols() - 1
	for j := 0; j < span; j++ {
		a := t.at(sourceRow, j)
		coeff := math.Floor(a) - a
		if math.Abs(coeff) < cfg.ZeroEps {
			coeff = 0
		}
		child.set(lastRow, j, coeff)
	}
	child.set(lastRow, newSlackCol, 1)
	child.set(lastRow, child.rhsCol(), -fracPartNonneg(t.rhs(sourceRow)))
	child.basis[lastRow-1] = newSlackCol

	return child
}

// fracPartNonneg returns v's fractional part in [0, 1).
func fracPartNonneg(v float64) float64 {
	return v - math.Floor(v)
}

func isFractional(v float64, cfg Config) bool {
	f := fracPartNonneg(v)
	return f > cfg.FracEps && f < 1-cfg.FracEps
}
