package cnf

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Sign of a literal occurrence: Positive for a plain variable, Negative for
// its negation. The same values encode truth in an Assignment.
const (
	Positive = 1
	Negative = -1
)

// Clause maps each of its symbols to the sign of the occurrence. A symbol
// appears at most once: when an input clause repeats a variable, the later
// sign overwrites the earlier one, so a clause holding both a literal and its
// negation is never represented and tautologies go undetected.
type Clause map[string]int

// Assignment maps symbols to signs; a symbol absent from the map is
// unassigned.
type Assignment map[string]int

// Formula is a conjunction of clauses together with the list of symbols
// occurring in them, sorted by variable index.
type Formula struct {
	Clauses []Clause
	Symbols []string
}

// NewFormula collects the symbols occurring in the given clauses and sorts
// them by variable index, so that x2 precedes x10.
func NewFormula(clauses []Clause) Formula {
	occurring := make(map[string]bool)
	for _, clause := range clauses {
		for symbol := range clause {
			occurring[symbol] = true
		}
	}
	symbols := lo.Keys(occurring)
	sortSymbols(symbols)
	return Formula{Clauses: clauses, Symbols: symbols}
}

// IsSatisfied reports whether every clause contains at least one literal whose
// assigned sign matches its recorded sign. Unassigned symbols never satisfy a
// clause.
func (formula Formula) IsSatisfied(assignment Assignment) bool {
	return lo.EveryBy(formula.Clauses, func(clause Clause) bool {
		for symbol, sign := range clause {
			if assignment[symbol] == sign {
				return true
			}
		}
		return false
	})
}

// FindUnitClause returns the symbol and sign of the first clause holding
// exactly one literal, in clause insertion order.
func (formula Formula) FindUnitClause() (string, int, bool) {
	for _, clause := range formula.Clauses {
		if len(clause) == 1 {
			for symbol, sign := range clause {
				return symbol, sign, true
			}
		}
	}
	return "", 0, false
}

// Simplify applies a partial assignment: clauses containing a matching literal
// are dropped, falsified literals are removed from the rest. It reports false
// when a clause loses every literal without being satisfied, which makes the
// formula unsatisfiable under the assignment. The receiver is left untouched;
// a fresh formula with a recomputed symbol list is returned.
func (formula Formula) Simplify(partial Assignment) (Formula, bool) {
	simplified := make([]Clause, 0, len(formula.Clauses))
	for _, clause := range formula.Clauses {
		satisfied := false
		remaining := Clause{}
		for symbol, sign := range clause {
			assigned, ok := partial[symbol]
			if !ok {
				remaining[symbol] = sign
			} else if assigned == sign {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}
		if len(remaining) == 0 {
			return Formula{}, false
		}
		simplified = append(simplified, remaining)
	}
	return NewFormula(simplified), true
}

// Dimacs serializes the formula back to the DIMACS CNF format, using each
// symbol's variable index as its variable number.
func (formula Formula) Dimacs() string {
	var builder strings.Builder
	variables := 0
	for _, symbol := range formula.Symbols {
		if index := variableIndex(symbol); index > variables {
			variables = index
		}
	}
	fmt.Fprintf(&builder, "p cnf %d %d\n", variables, len(formula.Clauses))
	for _, clause := range formula.Clauses {
		for _, symbol := range clause.sortedSymbols() {
			fmt.Fprintf(&builder, "%d ", clause[symbol]*variableIndex(symbol))
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

func (clause Clause) String() string {
	tokens := lo.Map(clause.sortedSymbols(), func(symbol string, _ int) string {
		if clause[symbol] == Negative {
			return "-" + symbol
		}
		return symbol
	})
	return strings.Join(tokens, " ")
}

func (clause Clause) sortedSymbols() []string {
	symbols := lo.Keys(clause)
	sortSymbols(symbols)
	return symbols
}

func sortSymbols(symbols []string) {
	slices.SortFunc(symbols, func(a, b string) int {
		return variableIndex(a) - variableIndex(b)
	})
}

// variableIndex extracts the numeric suffix of a symbol name such as "x10".
func variableIndex(symbol string) int {
	index, err := strconv.Atoi(symbol[1:])
	if err != nil {
		panic(fmt.Sprintf("malformed symbol %q: %v", symbol, err))
	}
	return index
}
