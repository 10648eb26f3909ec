package ilp

// enteringColumnPrimal picks the most negative objective-row entry
// (maximize convention), tie-breaking on smallest column index. Returns
// -1 once no entry would still improve the objective.
func (t *Tableau) enteringColumnPrimal() int {
	best := -t.cfg.ZeroEps
	col := -1
	for j := 0; j < t.cols()-1; j++ {
		v := t.at(0, j)
		if v < best {
			best = v
			col = j
		}
	}
	return col
}

// leavingRowPrimal runs the minimum-ratio test among rows with a
// positive entry in the entering column, tie-breaking on smallest row
// index. Returns -1 (unbounded) if no row qualifies.
func (t *Tableau) leavingRowPrimal(enter int) int {
	row := -1
	bestRatio := 0.0
	rows := t.rowsTotal()
	for i := 1; i < rows; i++ {
		v := t.at(i, enter)
		if v <= t.cfg.ZeroEps {
			continue
		}
		ratio := t.rhs(i) / v
		if row == -1 || ratio < bestRatio {
			bestRatio = ratio
			row = i
		}
	}
	return row
}

// isPrimalOptimal reports whether the objective row has no entry that
// would still improve the objective.
func (t *Tableau) isPrimalOptimal() bool {
	return t.enteringColumnPrimal() == -1
}

// runPrimalSimplex iterates pivots until the objective row contains no
// improving entry, recording every tableau including the starting one.
func runPrimalSimplex(start *Tableau, cfg Config) ([]*Tableau, error) {
	iterations := []*Tableau{start.clone()}
	current := start

	for iter := 0; iter < cfg.MaxPrimalIterations; iter++ {
		enter := current.enteringColumnPrimal()
		if enter == -1 {
			return iterations, nil
		}

		leave := current.leavingRowPrimal(enter)
		if leave == -1 {
			return iterations, &SolverError{Kind: Unbounded, Msg: "no positive entry in entering column"}
		}

		if err := current.pivot(leave, enter); err != nil {
			return iterations, err
		}
		iterations = append(iterations, current.clone())
	}

	return iterations, &SolverError{Kind: IterationCap, Msg: "primal simplex exceeded max iterations"}
}
