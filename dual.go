package ilp

import "math"

// leavingRowDual picks the most negative RHS among constraint rows,
// tie-breaking on smallest row index. Returns -1 once every RHS is
// non-negative (primal feasible).
func (t *Tableau) leavingRowDual() int {
	row := -1
	worst := -t.cfg.ZeroEps
	rows := t.rowsTotal()
	for i := 1; i < rows; i++ {
		v := t.rhs(i)
		if v < worst {
			worst = v
			row = i
		}
	}
	return row
}

// enteringColumnDual picks, among the columns with a negative entry in
// the leaving row, the one minimizing |objective row entry / leaving
// row entry|, tie-breaking on smallest column index. Returns -1 if no
// column qualifies (primal infeasible).
func (t *Tableau) enteringColumnDual(leave int) int {
	col := -1
	bestRatio := math.Inf(1)
	for j := 0; j < t.cols()-1; j++ {
		v := t.at(leave, j)
		if v >= -t.cfg.ZeroEps {
			continue
		}
		ratio := math.Abs(t.at(0, j) / v)
		if ratio < bestRatio {
			bestRatio = ratio
			col = j
		}
	}
	return col
}

// needsDualRepair reports whether the tableau has any negative RHS
// (primal infeasible, dual simplex's entry condition).
func (t *Tableau) needsDualRepair() bool {
	return t.leavingRowDual() != -1
}

// runDualSimplex iterates pivots restoring primal feasibility (driving
// every RHS non-negative) while preserving dual feasibility (the
// objective row stays non-negative throughout), recording every
// tableau including the starting one.
func runDualSimplex(start *Tableau, cfg Config) ([]*Tableau, error) {
	iterations := []*Tableau{start.clone()}
	current := start

	for iter := 0; iter < cfg.MaxDualIterations; iter++ {
		leave := current.leavingRowDual()
		if leave == -1 {
			return iterations, nil
		}

		enter := current.enteringColumnDual(leave)
		if enter == -1 {
			return iterations, &SolverError{Kind: Infeasible, Msg: "no negative entry in leaving row"}
		}

		if err := current.pivot(leave, enter); err != nil {
			return iterations, err
		}
		iterations = append(iterations, current.clone())
	}

	return iterations, &SolverError{Kind: IterationCap, Msg: "dual simplex exceeded max iterations"}
}
