package sat

import (
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/classicsat/internal/cnf"
	"github.com/samber/lo"
)

// flatten converts the formula's clauses into sets of signed integers. The
// variable of a symbol is its position in the formula's sorted symbol list
// plus one, so the same symbol maps to the same integer in every clause. Each
// flat clause is sorted and duplicate-free.
func flatten(formula cnf.Formula) [][]int {
	variables := make(map[string]int, len(formula.Symbols))
	for i, symbol := range formula.Symbols {
		variables[symbol] = i + 1
	}

	clauses := make([][]int, 0, len(formula.Clauses))
	for _, clause := range formula.Clauses {
		literals := make([]int, 0, len(clause))
		for symbol, sign := range clause {
			literals = append(literals, sign*variables[symbol])
		}
		slices.Sort(literals)
		clauses = append(clauses, literals)
	}
	return clauses
}

// resolveOn resolves two clauses on the complementary pair (literal,
// -literal), returning the sorted union of the remainders. Complementary
// pairs over other variables are left in place.
func resolveOn(c1, c2 []int, literal int) []int {
	merged := make(map[int]bool, len(c1)+len(c2))
	for _, l := range c1 {
		if l != literal {
			merged[l] = true
		}
	}
	for _, l := range c2 {
		if l != -literal {
			merged[l] = true
		}
	}
	resolvent := lo.Keys(merged)
	slices.Sort(resolvent)
	return resolvent
}

func isTautology(clause []int) bool {
	return lo.SomeBy(clause, func(literal int) bool {
		return slices.Contains(clause, -literal)
	})
}

// key renders a flat clause as a canonical set-membership key. Flat clauses
// are sorted, so equal clause sets produce equal keys.
func key(clause []int) string {
	tokens := lo.Map(clause, func(literal int, _ int) string {
		return strconv.Itoa(literal)
	})
	return strings.Join(tokens, " ")
}

func abs(literal int) int {
	if literal < 0 {
		return -literal
	}
	return literal
}
