package ilp

// BuildTableau canonicalizes model and returns its Iteration-0 tableau,
// letting a caller preprocess (e.g. warm-start, inject cuts) before
// handing it to SolveDual, which accepts a raw tableau rather than a
// model.
func BuildTableau(model Model, cfg Config) (*Tableau, error) {
	cm, err := canonicalize(model, nil, cfg)
	if err != nil {
		return nil, err
	}
	return buildFreshTableau(cm, cfg), nil
}

// SolvePrimal canonicalizes model, builds its tableau, and runs Primal
// Simplex to optimality, returning the initial tableau followed by
// every post-pivot tableau.
func SolvePrimal(model Model, cfg Config) ([]*Tableau, error) {
	t, err := BuildTableau(model, cfg)
	if err != nil {
		return nil, err
	}
	return runPrimalSimplex(t, cfg)
}

// SolveDual runs Dual Simplex on an already-built tableau, returning the
// initial tableau followed by every post-pivot tableau.
func SolveDual(t *Tableau, cfg Config) ([]*Tableau, error) {
	return runDualSimplex(t, cfg)
}

// BranchAndBoundResult is the public result of SolveBranchAndBound.
type BranchAndBoundResult struct {
	BestX         map[string]float64
	BestObjective float64
	Feasible      bool
	NodesExplored int
	Log           string
}

// SolveBranchAndBound runs the depth-first branch-and-bound search
// over model's LP relaxations.
func SolveBranchAndBound(model Model, cfg Config) (BranchAndBoundResult, error) {
	cm, err := canonicalize(model, nil, cfg)
	if err != nil {
		return BranchAndBoundResult{}, err
	}

	raw, err := runBranchAndBound(cm, cfg)
	res := BranchAndBoundResult{NodesExplored: raw.nodesExplored}
	if raw.tree != nil {
		res.Log = raw.tree.String()
	}
	if raw.incumbent != nil {
		res.Feasible = true
		res.BestObjective = raw.incumbent.objective
		res.BestX = namedX(model, raw.incumbent.x)
	}
	return res, err
}

// CuttingPlaneResult is the public result of SolveCuttingPlane.
type CuttingPlaneResult struct {
	X         map[string]float64
	Z         float64
	CutsAdded int
	Tableaus  []*Tableau
	Log       string
}

// SolveCuttingPlane runs the Gomory fractional-cut loop over model.
func SolveCuttingPlane(model Model, cfg Config) (CuttingPlaneResult, error) {
	raw, err := runCuttingPlane(model, cfg)
	res := CuttingPlaneResult{CutsAdded: raw.cutsAdded, Tableaus: raw.tableaus}
	if raw.tree != nil {
		res.Log = raw.tree.String()
	}
	if raw.x != nil {
		res.X = namedX(model, raw.x)
		res.Z = raw.z
	}
	return res, err
}

// KnapsackResult is the public result of SolveKnapsack.
type KnapsackResult struct {
	Applicability KnapsackApplicability
	NodesExplored int
	HasCandidate  bool
	BestX         map[string]float64
	BestObjective float64
}

// SolveKnapsack runs the specialized 0/1 knapsack branch-and-bound, or
// reports why model does not qualify for it.
func SolveKnapsack(model Model, cfg Config) KnapsackResult {
	raw := runKnapsack(model, cfg)
	res := KnapsackResult{Applicability: raw.applicability, NodesExplored: len(raw.nodes)}
	if raw.best != nil {
		res.HasCandidate = true
		res.BestObjective = raw.best.objective
		res.BestX = namedX(model, raw.best.x)
	}
	return res
}

// namedX maps a decision-variable value slice back to variable names for
// the caller-facing result structs.
func namedX(model Model, x []float64) map[string]float64 {
	m := make(map[string]float64, len(x))
	for j, v := range model.Variables {
		m[v.Name] = x[j]
	}
	return m
}
