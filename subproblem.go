package ilp

import (
	"fmt"
	"math"
)

// seed is the transient handoff from a branch-and-bound parent to one
// of its children: the parent's final tableau plus the one new bound
// the child introduces. It is consumed exactly once, by bnbNode.solve,
// and then forgotten.
type seed struct {
	parentTableau *Tableau
	varIndex      int
	isUpper       bool
	bound         float64
}

// bnbNode is one node of the branch-and-bound search tree. It carries
// no copy of the constraint matrices: everything it needs to solve is
// either its seed (warm-start path) or the canonical model shared
// read-only by the whole search (fresh path).
type bnbNode struct {
	label  string
	depth  int
	bounds []Bound

	seed *seed

	x          []float64
	objective  float64
	isInteger  bool
	infeasible bool
	solverUsed string

	// finalTableau is kept only long enough to seed this node's children;
	// the driver drops it once both children have been created.
	finalTableau *Tableau
}

// solve runs the node-solve pipeline: build (warm-start or fresh)
// Iteration-0, repair with Dual Simplex if
// infeasible, optimize with Primal Simplex, then extract x and the true
// objective. A failure at either simplex stage marks the node infeasible
// rather than returning an error: an infeasible node is a pruned branch,
// not a solver failure.
func (n *bnbNode) solve(cm *canonicalModel, cfg Config) {
	var t *Tableau
	if n.seed != nil {
		t = buildWarmStartTableau(n.seed.parentTableau, n.seed.varIndex, n.seed.isUpper, n.seed.bound, cfg)
		n.solverUsed = "WarmStart"
	} else {
		t = buildFreshTableau(cm, cfg)
		n.solverUsed = "Fresh"
	}

	if t.needsDualRepair() {
		iters, err := runDualSimplex(t, cfg)
		t = iters[len(iters)-1]
		n.solverUsed += "+Dual"
		if err != nil {
			n.infeasible = true
			n.solverUsed += "Failed"
			return
		}
	}

	iters, err := runPrimalSimplex(t, cfg)
	t = iters[len(iters)-1]
	n.solverUsed += "+Primal"
	if err != nil {
		n.infeasible = true
		n.solverUsed += "Failed"
		return
	}

	y := t.extractX()
	x := cm.unflip(y)
	n.x = x
	n.objective = cm.trueObjective(x)
	n.isInteger = isIntegerFeasible(x, cm.integral, cm.binary, cfg)
	n.finalTableau = t
}

// branch creates this node's floor (.1) and ceil (.2) children on
// variable j, seeded from this node's final tableau.
func (n *bnbNode) branch(j int) (floor, ceil *bnbNode) {
	v := n.x[j]
	floorBound := Bound{VarIndex: j, IsUpper: true, Value: math.Floor(v)}
	ceilBound := Bound{VarIndex: j, IsUpper: false, Value: math.Ceil(v)}

	floor = &bnbNode{
		label:  n.label + ".1",
		depth:  n.depth + 1,
		bounds: append(append([]Bound(nil), n.bounds...), floorBound),
		seed:   &seed{parentTableau: n.finalTableau, varIndex: j, isUpper: true, bound: floorBound.Value},
	}
	ceil = &bnbNode{
		label:  n.label + ".2",
		depth:  n.depth + 1,
		bounds: append(append([]Bound(nil), n.bounds...), ceilBound),
		seed:   &seed{parentTableau: n.finalTableau, varIndex: j, isUpper: false, bound: ceilBound.Value},
	}
	return floor, ceil
}

func (n *bnbNode) String() string {
	return fmt.Sprintf("%s (depth %d, z=%.4f, integer=%v, infeasible=%v)", n.label, n.depth, n.objective, n.isInteger, n.infeasible)
}
