package ilp

// branchAndBoundResult is the raw outcome of a search: the incumbent
// node (nil if none was found), the number of nodes explored, and the
// recorded decision trace. api.go translates this into the public
// BranchAndBoundResult.
type branchAndBoundResult struct {
	incumbent     *bnbNode
	nodesExplored int
	tree          *logTree
}

// runBranchAndBound performs the depth-first search: an explicit stack
// standing in for the call stack a recursive walk would use, so the
// search stays single-threaded and non-suspending, without recursion
// depth tied to the tree's depth.
//
// There is no worker pool, no candidate channel, and no WaitGroup: one
// node is solved at a time, and its children (if any) are pushed before
// the next pop.
func runBranchAndBound(cm *canonicalModel, cfg Config) (branchAndBoundResult, error) {
	tree := newLogTree()

	root := &bnbNode{label: "Root", depth: 0}
	root.solve(cm, cfg)

	result := branchAndBoundResult{nodesExplored: 1, tree: tree}

	if root.infeasible {
		tree.record(root.label, INITIAL_RELAXATION_INFEASIBLE, 0)
		return result, nil
	}
	if root.isInteger {
		tree.record(root.label, INITIAL_RELAXATION_INTEGER, root.objective)
		result.incumbent = root
		return result, nil
	}

	stack := pushChildren(nil, root, cm, cfg)

	for len(stack) > 0 {
		if result.nodesExplored >= cfg.MaxNodes {
			return result, &SolverError{Kind: IterationCap, Msg: "branch-and-bound exceeded max nodes"}
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n.solve(cm, cfg)
		result.nodesExplored++

		if n.infeasible {
			tree.record(n.label, NODE_INFEASIBLE, 0)
			continue
		}

		if result.incumbent != nil && !cm.isBetter(n.objective, result.incumbent.objective, cfg) {
			tree.record(n.label, WORSE_THAN_INCUMBENT, n.objective)
			continue
		}

		if n.isInteger {
			result.incumbent = n
			tree.record(n.label, BETTER_THAN_INCUMBENT_FEASIBLE, n.objective)
			continue
		}

		tree.record(n.label, BETTER_THAN_INCUMBENT_BRANCHING, n.objective)
		stack = pushChildren(stack, n, cm, cfg)
	}

	return result, nil
}

// pushChildren branches n and pushes its ceil child first, then its
// floor child, so the floor child is the next one popped: depth-first,
// floor-branch-first, matching the .1-before-.2 child-label ordering.
func pushChildren(stack []*bnbNode, n *bnbNode, cm *canonicalModel, cfg Config) []*bnbNode {
	j := selectBranchVariable(n.x, cm.integral, cfg)
	if j == -1 {
		return stack
	}
	floor, ceil := n.branch(j)
	n.finalTableau = nil
	return append(stack, ceil, floor)
}
