// Package ilp implements the numerical core of a linear and mixed-integer
// linear programming solver: a tableau-based primal simplex, a dual
// simplex that repairs negative right-hand sides, a branch-and-bound
// driver over LP relaxations with warm-started tableaux, a Gomory
// cutting-plane loop, and a specialized binary-knapsack branch-and-bound.
//
// The package consumes a Model built from Variables and Constraints and
// returns iteration histories and final solutions. Parsing model
// definitions from disk, console interaction, and report formatting are
// external concerns left to callers.
package ilp
