package ilp

// canonicalModel is the normalized, all-<= form of a Model, plus the
// bookkeeping needed to recover the original variable values and
// objective from a solved tableau.
//
// Internally every engine always maximizes: for a Minimize model, c is
// stored negated, and the caller-facing objective is recomputed from
// the original coefficients (trueObjective). Continuous variables constrained to x <= 0 are represented
// via the substitution y = -x (see DESIGN.md); signFlip records which
// columns need to be flipped back when reporting x.
type canonicalModel struct {
	n        int
	c        []float64 // internal (maximize-oriented, sign-flip applied) objective coefficients
	origC    []float64 // original per-variable objective coefficients, unflipped
	signFlip []float64 // +1 or -1 per variable

	rows    [][]float64
	rhs     []float64
	rowTags []RowTag

	integral []bool // true for Integer/Binary variables
	binary   []bool // true for Binary variables

	objective Objective
}

// canonicalize normalizes model to all-<= form and appends one row per
// branching bound. bounds may be nil for the root model.
func canonicalize(model Model, bounds []Bound, cfg Config) (*canonicalModel, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	n := len(model.Variables)
	cm := &canonicalModel{
		n:         n,
		c:         make([]float64, n),
		origC:     model.objectiveCoefficients(),
		signFlip:  make([]float64, n),
		integral:  make([]bool, n),
		binary:    make([]bool, n),
		objective: model.Objective,
	}

	for j, v := range model.Variables {
		flip := 1.0
		if v.Type == ContinuousNonPositive {
			flip = -1.0
		}
		cm.signFlip[j] = flip

		internalC := v.Coefficient
		if model.Objective == Minimize {
			internalC = -internalC
		}
		cm.c[j] = internalC * flip

		cm.integral[j] = v.Type.isIntegral()
		cm.binary[j] = v.Type == Binary
	}

	for _, con := range model.Constraints {
		switch con.Relation {
		case LE:
			cm.appendRow(signFlipRow(con.Coefficients, cm.signFlip), con.RHS, TagSlack)
		case GE:
			negated := negateRow(con.Coefficients)
			cm.appendRow(signFlipRow(negated, cm.signFlip), -con.RHS, TagSurplus)
		case EQ:
			cm.appendRow(signFlipRow(con.Coefficients, cm.signFlip), con.RHS, TagSlack)
			negated := negateRow(con.Coefficients)
			cm.appendRow(signFlipRow(negated, cm.signFlip), -con.RHS, TagSurplus)
		}
	}

	for _, b := range bounds {
		row := make([]float64, n)
		if b.IsUpper {
			row[b.VarIndex] = 1
			cm.appendRow(signFlipRow(row, cm.signFlip), b.Value, TagSlack)
		} else {
			row[b.VarIndex] = -1
			cm.appendRow(signFlipRow(row, cm.signFlip), -b.Value, TagSurplus)
		}
	}

	for j, v := range model.Variables {
		if v.Type == Binary {
			row := make([]float64, n)
			row[j] = 1
			cm.appendRow(signFlipRow(row, cm.signFlip), 1, TagSlack)
		}
	}

	return cm, nil
}

func (cm *canonicalModel) appendRow(coeffs []float64, rhs float64, tag RowTag) {
	cm.rows = append(cm.rows, coeffs)
	cm.rhs = append(cm.rhs, rhs)
	cm.rowTags = append(cm.rowTags, tag)
}

func negateRow(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = -v
	}
	return out
}

// signFlipRow applies the per-variable y = -x substitution to a
// coefficient row. It always returns a fresh slice so callers may keep
// referencing the original.
func signFlipRow(in []float64, signFlip []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v * signFlip[i]
	}
	return out
}

// unflip converts internal y values back to the original x values.
func (cm *canonicalModel) unflip(y []float64) []float64 {
	x := make([]float64, len(y))
	for j, v := range y {
		x[j] = v * cm.signFlip[j]
	}
	return x
}

// trueObjective computes sum(origC[j] * x[j]) for the caller-facing
// objective value, computed against the original coefficients, not the
// canonical row.
func (cm *canonicalModel) trueObjective(x []float64) float64 {
	var z float64
	for j, v := range x {
		z += cm.origC[j] * v
	}
	return z
}

// isBetter reports whether a strictly improves on b in the model's
// original objective sense, regardless of the internal maximize
// convention.
func (cm *canonicalModel) isBetter(a, b float64, cfg Config) bool {
	if cm.objective == Maximize {
		return a > b+cfg.ZeroEps
	}
	return a < b-cfg.ZeroEps
}
