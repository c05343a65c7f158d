package sat

import (
	"strings"
	"testing"

	"github.com/limaJavier/classicsat/internal/cnf"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, input string) cnf.Formula {
	t.Helper()
	formula, err := cnf.Parse(strings.NewReader(input))
	assert.NoError(t, err)
	return formula
}

func TestDPVerdicts(t *testing.T) {
	solver := NewDPSolver()

	// Arrange
	scenarios := []struct {
		name        string
		input       string
		satisfiable bool
	}{
		{"two clauses over two variables", "p cnf 2 2\n1 2 0\n-1 -2 0\n", true},
		{"conflicting unit clauses", "p cnf 1 2\n1 0\n-1 0\n", false},
		{"single wide clause", "p cnf 3 1\n1 2 3 0\n", true},
		{"repeated conflicting units", "p cnf 1 4\n1 0\n-1 0\n1 0\n-1 0\n", false},
		{"empty problem", "p cnf 0 0\n", true},
		{"forced chain", "p cnf 3 3\n1 0\n-1 2 0\n-2 3 0\n", true},
		{"unsatisfiable triangle", "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n", false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Act
			assignment, satisfiable := solver.Solve(mustParse(t, scenario.input))

			// Assert
			assert.Equal(t, scenario.satisfiable, satisfiable)
			assert.Nil(t, assignment)
		})
	}
}

func TestDPEmptyClauseIsUnsatisfiable(t *testing.T) {
	solver := NewDPSolver()
	formula := cnf.NewFormula([]cnf.Clause{{"x1": cnf.Positive}, {}})

	_, satisfiable := solver.Solve(formula)

	assert.False(t, satisfiable)
}

func TestEliminateTerminatesOnComplementaryPairs(t *testing.T) {
	// Resolving {1,2} with {-1,-2} yields the tautology {2,-2}; keeping it
	// would re-derive itself forever.
	satisfiable := eliminate([][]int{{1, 2}, {-1, -2}})

	assert.True(t, satisfiable)
}
