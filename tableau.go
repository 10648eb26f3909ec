package ilp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RowTag names the auxiliary column introduced by a constraint row, for
// header naming: S for a slack variable (row was <= as given), E for a
// surplus variable (row was >= and got negated into <=).
type RowTag byte

const (
	TagSlack   RowTag = 'S'
	TagSurplus RowTag = 'E'
)

// Tableau is the dense (m+1) x (n+m+1) matrix representation shared by
// every engine in this package: row 0 is the objective row (always
// stored in maximize-convention, see canonical.go), rows 1..m are
// constraint rows, columns 0..n-1 are decision variables, columns
// n..n+m-1 are one slack/surplus per row (in the order rows were
// canonicalized, growing as rows/columns are inserted), and the last
// column is the right-hand side.
//
// basis[i] holds the column index basic in constraint row i+1. It is
// maintained incrementally on every pivot rather than re-derived by
// scanning for unit columns.
type Tableau struct {
	data *mat.Dense

	nVars int
	nAux  int // number of slack/surplus columns present (== number of constraint rows)

	basis   []int
	rowTags []RowTag

	cfg Config
}

func (t *Tableau) nRows() int { return t.nAux }
func (t *Tableau) rhsCol() int {
	r, _ := t.data.Dims()
	_ = r
	return t.nVars + t.nAux
}

// newTableau allocates a zeroed (m+1) x (n+m+1) tableau.
func newTableau(n, m int, cfg Config) *Tableau {
	return &Tableau{
		data:    mat.NewDense(m+1, n+m+1, nil),
		nVars:   n,
		nAux:    m,
		basis:   make([]int, m),
		rowTags: make([]RowTag, m),
		cfg:     cfg,
	}
}

// buildFreshTableau constructs the initial tableau from a canonical
// model. Row 0 is always stored as -c (the model's internal
// coefficients are already oriented so that "maximize" is the uniform
// convention; see canonical.go).
func buildFreshTableau(cm *canonicalModel, cfg Config) *Tableau {
	n := cm.n
	m := len(cm.rows)
	t := newTableau(n, m, cfg)

	for j := 0; j < n; j++ {
		t.data.Set(0, j, -cm.c[j])
	}

	for i := 0; i < m; i++ {
		row := cm.rows[i]
		for j := 0; j < n; j++ {
			t.data.Set(i+1, j, row[j])
		}
		t.data.Set(i+1, n+i, 1)
		t.data.Set(i+1, t.rhsCol(), cm.rhs[i])
		t.rowTags[i] = cm.rowTags[i]
		t.basis[i] = n + i
	}

	return t
}

// clone returns a deep, independent copy of the tableau, used both for
// recording iteration snapshots and for per-node warm-start seeds.
func (t *Tableau) clone() *Tableau {
	c := &Tableau{
		data:    mat.DenseCopyOf(t.data),
		nVars:   t.nVars,
		nAux:    t.nAux,
		basis:   append([]int(nil), t.basis...),
		rowTags: append([]RowTag(nil), t.rowTags...),
		cfg:     t.cfg,
	}
	return c
}

// at/set are thin wrappers kept so pivot arithmetic reads like the
// textbook tableau method rather than gonum matrix algebra.
func (t *Tableau) at(i, j int) float64   { return t.data.At(i, j) }
func (t *Tableau) set(i, j int, v float64) { t.data.Set(i, j, v) }

func (t *Tableau) cols() int {
	_, c := t.data.Dims()
	return c
}

func (t *Tableau) rowsTotal() int {
	r, _ := t.data.Dims()
	return r
}

// rhs returns the right-hand side of constraint row i (1-based: row 1 is
// the first constraint row).
func (t *Tableau) rhs(i int) float64 { return t.at(i, t.rhsCol()) }

// pivot performs Gauss-Jordan elimination bringing column pc into the
// basis at row pr, snapping near-zero drift to exactly zero afterward.
// pr and pc are in full-tableau coordinates (pr >= 1).
func (t *Tableau) pivot(pr, pc int) error {
	pivotVal := t.at(pr, pc)
	if math.Abs(pivotVal) < t.cfg.PivotEps {
		return &SolverError{Kind: ZeroPivot, Msg: fmt.Sprintf("pivot element at row %d col %d is %.3g", pr, pc, pivotVal)}
	}

	pivotRow := t.data.RawRowView(pr)
	for j := range pivotRow {
		pivotRow[j] /= pivotVal
	}

	rows := t.rowsTotal()
	for i := 0; i < rows; i++ {
		if i == pr {
			continue
		}
		factor := t.at(i, pc)
		if factor == 0 {
			continue
		}
		row := t.data.RawRowView(i)
		for j := range row {
			row[j] -= factor * pivotRow[j]
			if math.Abs(row[j]) < t.cfg.ZeroEps {
				row[j] = 0
			}
		}
	}
	for j := range pivotRow {
		if math.Abs(pivotRow[j]) < t.cfg.ZeroEps {
			pivotRow[j] = 0
		}
	}

	t.basis[pr-1] = pc
	return nil
}

// detectBasis re-derives the basis array by scanning for unit-vector
// columns, independently of the basis array maintained by pivot. No
// engine or test in this package calls it.
func (t *Tableau) detectBasis() []int {
	m := t.nRows()
	rows := t.rowsTotal()
	cols := t.cols()
	found := make([]int, m)
	for i := range found {
		found[i] = -1
	}

	for j := 0; j < cols-1; j++ {
		basicRow := -1
		ok := true
		for i := 1; i < rows; i++ {
			v := t.at(i, j)
			if math.Abs(v-1) < t.cfg.ZeroEps {
				if basicRow != -1 {
					ok = false
					break
				}
				basicRow = i
			} else if math.Abs(v) > t.cfg.ZeroEps {
				ok = false
				break
			}
		}
		if ok && basicRow != -1 && found[basicRow-1] == -1 {
			found[basicRow-1] = j
		}
	}
	return found
}

// extractX reads decision-variable values off the basis array: a basic
// column reads as its row's RHS, a non-basic column reads as zero.
func (t *Tableau) extractX() []float64 {
	x := make([]float64, t.nVars)
	for row, col := range t.basis {
		if col >= 0 && col < t.nVars {
			x[col] = t.rhs(row + 1)
		}
	}
	return x
}

// growInsertColumnBeforeRHS grows the tableau by exactly one row and one
// column, moving the old RHS column to the new last column and leaving
// the inserted column (at the old RHS position) zeroed in every existing
// row. This is the shared topology behind both the B&B warm-start
// surgery and Gomory cut insertion; both callers fill in the new row
// and the inserted column's entries themselves afterward.
func (t *Tableau) growInsertColumnBeforeRHS(newRowTag RowTag) *Tableau {
	oldRHSCol := t.rhsCol()
	grown := mat.DenseCopyOf(t.data.Grow(1, 1))

	rows := t.rowsTotal()
	for i := 0; i < rows; i++ {
		grown.Set(i, oldRHSCol+1, grown.At(i, oldRHSCol))
		grown.Set(i, oldRHSCol, 0)
	}

	nt := &Tableau{
		data:    grown,
		nVars:   t.nVars,
		nAux:    t.nAux + 1,
		basis:   append(append([]int(nil), t.basis...), -1),
		rowTags: append(append([]RowTag(nil), t.rowTags...), newRowTag),
		cfg:     t.cfg,
	}
	return nt
}

// FormatCell renders a tableau entry the way a report layer would:
// values within ZeroEps of zero as "0" (so negative zero never shows),
// integer-looking values (within 1e-9 of an integer) without decimals,
// otherwise two decimal places.
func (cfg Config) FormatCell(v float64) string {
	if math.Abs(v) < cfg.ZeroEps {
		return "0"
	}
	rounded := math.Round(v)
	if math.Abs(v-rounded) < 1e-9 {
		return fmt.Sprintf("%d", int64(rounded))
	}
	return fmt.Sprintf("%.2f", v)
}
