package sat

import (
	"slices"

	"github.com/limaJavier/classicsat/internal/cnf"
)

// resolutionSolver decides satisfiability by closing the clause set under
// pairwise resolution.
type resolutionSolver struct{}

func NewResolutionSolver() Solver {
	return &resolutionSolver{}
}

func (solver *resolutionSolver) Solve(formula cnf.Formula) (cnf.Assignment, bool) {
	return nil, saturate(flatten(formula))
}

// saturate runs full resolution passes until either the empty clause is
// derived (unsatisfiable) or a pass adds nothing new (satisfiable). The known
// set only ever grows, with no subsumption or eviction; the clause space over
// a fixed variable set is finite, so the loop terminates.
func saturate(clauses [][]int) bool {
	known := make([][]int, 0, len(clauses))
	seen := make(map[string]bool, len(clauses))
	for _, clause := range clauses {
		if len(clause) == 0 {
			return false
		}
		if k := key(clause); !seen[k] {
			seen[k] = true
			known = append(known, clause)
		}
	}

	for {
		var derived [][]int
		for i := 0; i < len(known); i++ {
			for j := i + 1; j < len(known); j++ {
				resolvent, ok := resolve(known[i], known[j])
				if !ok {
					continue
				}
				if len(resolvent) == 0 {
					return false
				}
				if k := key(resolvent); !seen[k] {
					seen[k] = true
					derived = append(derived, resolvent)
				}
			}
		}
		if len(derived) == 0 {
			return true
		}
		known = append(known, derived...)
	}
}

// resolve finds the first literal of c1 whose negation occurs in c2 and
// returns the union of the two remainders. The scan stops at the first
// complementary pair even when several exist.
func resolve(c1, c2 []int) ([]int, bool) {
	for _, literal := range c1 {
		if slices.Contains(c2, -literal) {
			return resolveOn(c1, c2, literal), true
		}
	}
	return nil, false
}
