package ilp

import (
	"math"
	"sort"
)

// KnapsackApplicability reports whether a Model satisfies the
// preconditions of the specialized 0/1 knapsack engine: maximize,
// exactly one <= capacity constraint, every variable Binary,
// and nonnegative weights and capacity. A model that fails this check
// is data, not an error: the engine simply has nothing to contribute.
type KnapsackApplicability struct {
	Applicable bool
	Reason     string
}

func checkKnapsackApplicability(model Model) KnapsackApplicability {
	if model.Objective != Maximize {
		return KnapsackApplicability{Reason: "objective is not maximize"}
	}
	if len(model.Constraints) != 1 || model.Constraints[0].Relation != LE {
		return KnapsackApplicability{Reason: "model does not have exactly one <= constraint"}
	}
	for _, v := range model.Variables {
		if v.Type != Binary {
			return KnapsackApplicability{Reason: "not every variable is binary"}
		}
	}
	con := model.Constraints[0]
	if con.RHS < 0 {
		return KnapsackApplicability{Reason: "capacity is negative"}
	}
	for _, w := range con.Coefficients {
		if w < 0 {
			return KnapsackApplicability{Reason: "a weight is negative"}
		}
	}
	return KnapsackApplicability{Applicable: true}
}

type knapsackNodeStatus string

const (
	knapsackUnsolved   knapsackNodeStatus = "Unsolved"
	knapsackUnbranched knapsackNodeStatus = "Unbranched"
	knapsackBranched   knapsackNodeStatus = "Branched"
	knapsackCandidate  knapsackNodeStatus = "Candidate"
	knapsackInfeasible knapsackNodeStatus = "Infeasible"
)

// knapsackNode is one node of the knapsack search tree.
type knapsackNode struct {
	label       string
	parentLabel string
	status      knapsackNodeStatus

	fixed map[int]int // variable index -> fixed 0/1 decision along this path

	fracVar    int // index of the fractional pivot variable, -1 if none
	x          []float64
	objective  float64
	weightUsed float64
}

// rankByRatio orders variable indices by profit/weight ratio descending;
// zero-weight variables rank infinitely high.
func rankByRatio(profit, weight []float64) []int {
	idx := make([]int, len(profit))
	for i := range idx {
		idx[i] = i
	}
	ratio := func(j int) float64 {
		if weight[j] == 0 {
			return math.Inf(1)
		}
		return profit[j] / weight[j]
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := ratio(idx[a]), ratio(idx[b])
		if ra != rb {
			return ra > rb
		}
		return idx[a] < idx[b]
	})
	return idx
}

// solveKnapsackNode fills the node's free capacity greedily in rank
// order under its fixed decisions: whole items while they fit, one
// fractional item at the point capacity runs out, zero afterward.
func solveKnapsackNode(n *knapsackNode, profit, weight []float64, capacity float64, rank []int, cfg Config) {
	x := make([]float64, len(profit))
	remaining := capacity
	for j, v := range n.fixed {
		if v == 1 {
			x[j] = 1
			remaining -= weight[j]
		}
	}
	if remaining < -cfg.ZeroEps {
		n.status = knapsackInfeasible
		return
	}

	n.fracVar = -1
	for _, j := range rank {
		if _, isFixed := n.fixed[j]; isFixed {
			continue
		}
		if weight[j] <= remaining {
			x[j] = 1
			remaining -= weight[j]
		} else {
			x[j] = remaining / weight[j]
			n.fracVar = j
			remaining = 0
			break
		}
	}

	n.x = x
	n.weightUsed = capacity - remaining
	var z float64
	for j, v := range x {
		z += profit[j] * v
	}
	n.objective = z

	if n.fracVar == -1 {
		n.status = knapsackCandidate
	} else {
		n.status = knapsackUnbranched
	}
}

// branch fixes the fractional pivot variable to 0 (.1) and to 1 (.2) in
// two children.
func (n *knapsackNode) branch() (fixZero, fixOne *knapsackNode) {
	n.status = knapsackBranched
	fixZero = &knapsackNode{label: n.label + ".1", parentLabel: n.label, fixed: withFixed(n.fixed, n.fracVar, 0), status: knapsackUnsolved}
	fixOne = &knapsackNode{label: n.label + ".2", parentLabel: n.label, fixed: withFixed(n.fixed, n.fracVar, 1), status: knapsackUnsolved}
	return
}

func withFixed(in map[int]int, j, v int) map[int]int {
	out := make(map[int]int, len(in)+1)
	for k, val := range in {
		out[k] = val
	}
	out[j] = v
	return out
}

// knapsackResult is the raw outcome of a knapsack search.
type knapsackResult struct {
	applicability KnapsackApplicability
	nodes         []*knapsackNode
	best          *knapsackNode
}

// runKnapsack drives the specialized 0/1 knapsack branch-and-bound:
// depth-first over an explicit stack, bounding on the LP-relaxation
// objective of each unbranched node against the best candidate found
// so far.
func runKnapsack(model Model, cfg Config) knapsackResult {
	app := checkKnapsackApplicability(model)
	if !app.Applicable {
		return knapsackResult{applicability: app}
	}

	con := model.Constraints[0]
	profit := model.objectiveCoefficients()
	weight := con.Coefficients
	capacity := con.RHS
	rank := rankByRatio(profit, weight)

	root := &knapsackNode{label: "Root", fixed: map[int]int{}, status: knapsackUnsolved}
	solveKnapsackNode(root, profit, weight, capacity, rank, cfg)

	nodes := []*knapsackNode{root}
	var best *knapsackNode
	var stack []*knapsackNode

	switch root.status {
	case knapsackCandidate:
		best = root
	case knapsackUnbranched:
		stack = append(stack, root)
	}

	for len(stack) > 0 && len(nodes) < cfg.MaxNodes {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c0, c1 := n.branch()
		for _, c := range []*knapsackNode{c0, c1} {
			solveKnapsackNode(c, profit, weight, capacity, rank, cfg)
			nodes = append(nodes, c)

			switch c.status {
			case knapsackInfeasible:
				// pruned: infeasible under its fixed decisions.
			case knapsackCandidate:
				if best == nil || c.objective > best.objective+cfg.ZeroEps {
					best = c
				}
			case knapsackUnbranched:
				if best != nil && c.objective <= best.objective+cfg.ZeroEps {
					continue // pruned: relaxation no better than the incumbent
				}
				stack = append(stack, c)
			}
		}
	}

	return knapsackResult{applicability: app, nodes: nodes, best: best}
}
