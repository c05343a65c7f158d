package sat

import (
	"slices"

	"github.com/limaJavier/classicsat/internal/cnf"
	"github.com/samber/lo"
)

// dpSolver implements the Davis-Putnam variable-elimination procedure over
// flat integer clauses.
type dpSolver struct{}

func NewDPSolver() Solver {
	return &dpSolver{}
}

func (solver *dpSolver) Solve(formula cnf.Formula) (cnf.Assignment, bool) {
	return nil, eliminate(flatten(formula))
}

// eliminate picks the smallest variable still present, replaces every clause
// mentioning it with the resolvents of its positive and negative occurrences
// and recurses on the rest. The variable set shrinks by one per step, but the
// clause count can grow exponentially along the way; no memoization is
// attempted. Tautological resolvents are always true and would carry their
// variables forever, so they are dropped.
func eliminate(clauses [][]int) bool {
	if lo.SomeBy(clauses, func(clause []int) bool { return len(clause) == 0 }) {
		return false
	}
	if len(clauses) == 0 {
		return true
	}

	variable := 0
	for _, clause := range clauses {
		for _, literal := range clause {
			if v := abs(literal); variable == 0 || v < variable {
				variable = v
			}
		}
	}

	positive := lo.Filter(clauses, func(clause []int, _ int) bool {
		return slices.Contains(clause, variable)
	})
	negative := lo.Filter(clauses, func(clause []int, _ int) bool {
		return slices.Contains(clause, -variable)
	})
	rest := lo.Filter(clauses, func(clause []int, _ int) bool {
		return !slices.Contains(clause, variable) && !slices.Contains(clause, -variable)
	})

	next := slices.Clone(rest)
	for _, c1 := range positive {
		for _, c2 := range negative {
			resolvent := resolveOn(c1, c2, variable)
			if len(resolvent) == 0 {
				return false
			}
			if isTautology(resolvent) {
				continue
			}
			next = append(next, resolvent)
		}
	}
	return eliminate(next)
}
