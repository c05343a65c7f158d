package sat

import (
	"fmt"
	"math/rand/v2"

	"github.com/limaJavier/classicsat/internal/cnf"
)

// GenerateFormula builds a random CNF formula over the given number of
// variables, in the shape the DIMACS parser produces. Every clause holds at
// least one literal.
func GenerateFormula(variables int, clauses int) cnf.Formula {
	generated := make([]cnf.Clause, clauses)
	for i := range clauses {
		clause := cnf.Clause{}
		for j := 1; j <= variables; j++ {
			if rand.Float32() < 0.5 {
				continue
			}
			sign := cnf.Positive
			if rand.Float32() < 0.5 {
				sign = cnf.Negative
			}
			clause[fmt.Sprintf("x%v", j)] = sign
		}

		if len(clause) == 0 {
			sign := cnf.Positive
			if rand.Float32() < 0.5 {
				sign = cnf.Negative
			}
			clause[fmt.Sprintf("x%v", 1+rand.IntN(variables))] = sign
		}
		generated[i] = clause
	}
	return cnf.NewFormula(generated)
}

// AssertSolution reports whether the assignment is a well-formed model of the
// formula: every sign is valid and every clause is satisfied.
func AssertSolution(formula cnf.Formula, assignment cnf.Assignment) bool {
	for _, sign := range assignment {
		if sign != cnf.Positive && sign != cnf.Negative {
			return false
		}
	}
	return formula.IsSatisfied(assignment)
}
