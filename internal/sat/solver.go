package sat

import "github.com/limaJavier/classicsat/internal/cnf"

// Solver decides the satisfiability of a CNF formula. Solve reports whether
// the formula is satisfiable; solvers that construct a model while searching
// (DPLL) also return the satisfying assignment, the saturation-based ones
// return nil. All implementations agree on the verdict for any well-formed
// formula.
type Solver interface {
	Solve(formula cnf.Formula) (cnf.Assignment, bool)
}
