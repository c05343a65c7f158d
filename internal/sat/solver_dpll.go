package sat

import (
	"maps"

	"github.com/limaJavier/classicsat/internal/cnf"
	"github.com/samber/lo"
)

// dpllSolver runs unit propagation and chronological backtracking directly on
// the symbol-level formula, threading a partial assignment through the
// search.
type dpllSolver struct{}

func NewDPLLSolver() Solver {
	return &dpllSolver{}
}

func (solver *dpllSolver) Solve(formula cnf.Formula) (cnf.Assignment, bool) {
	if lo.SomeBy(formula.Clauses, func(clause cnf.Clause) bool { return len(clause) == 0 }) {
		return nil, false
	}
	return search(formula, cnf.Assignment{})
}

// search owns its assignment map: unit propagation extends it in place, and
// each branch recurses on its own clone, so sibling branches never observe
// each other's decisions. Simplify already returns fresh formulas, which keeps
// earlier search states intact for backtracking.
func search(formula cnf.Formula, assignment cnf.Assignment) (cnf.Assignment, bool) {
	for {
		symbol, sign, ok := formula.FindUnitClause()
		if !ok {
			break
		}
		if assigned, ok := assignment[symbol]; ok && assigned != sign {
			return nil, false // conflicting unit clause
		}
		assignment[symbol] = sign
		simplified, ok := formula.Simplify(cnf.Assignment{symbol: sign})
		if !ok {
			return nil, false
		}
		if len(simplified.Clauses) == 0 {
			return assignment, true
		}
		formula = simplified
	}

	if len(formula.Clauses) == 0 {
		return assignment, true
	}

	branch, ok := lo.Find(formula.Symbols, func(symbol string) bool {
		_, assigned := assignment[symbol]
		return !assigned
	})
	if !ok {
		return assignment, true
	}

	for _, sign := range []int{cnf.Positive, cnf.Negative} {
		simplified, ok := formula.Simplify(cnf.Assignment{branch: sign})
		if !ok {
			continue
		}
		trail := maps.Clone(assignment)
		trail[branch] = sign
		if result, ok := search(simplified, trail); ok {
			return result, true
		}
	}
	return nil, false
}
