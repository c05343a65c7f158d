package cnf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	// Arrange
	scenarios := []struct {
		name    string
		input   string
		clauses []Clause
		symbols []string
	}{
		{
			name:    "two clauses over two variables",
			input:   "p cnf 2 2\n1 2 0\n-1 -2 0\n",
			clauses: []Clause{{"x1": Positive, "x2": Positive}, {"x1": Negative, "x2": Negative}},
			symbols: []string{"x1", "x2"},
		},
		{
			name:    "conflicting unit clauses",
			input:   "p cnf 1 2\n1 0\n-1 0\n",
			clauses: []Clause{{"x1": Positive}, {"x1": Negative}},
			symbols: []string{"x1"},
		},
		{
			name:    "single wide clause",
			input:   "p cnf 3 1\n1 2 3 0\n",
			clauses: []Clause{{"x1": Positive, "x2": Positive, "x3": Positive}},
			symbols: []string{"x1", "x2", "x3"},
		},
		{
			name:    "empty problem",
			input:   "p cnf 0 0\n",
			clauses: []Clause{},
			symbols: []string{},
		},
		{
			name:    "comments and blank lines anywhere",
			input:   "c header comment\n\np cnf 2 1\nc between preamble and clauses\n1 -2 0\nc trailing comment\n",
			clauses: []Clause{{"x1": Positive, "x2": Negative}},
			symbols: []string{"x1", "x2"},
		},
		{
			name:    "declared but unused variables are not collected",
			input:   "p cnf 5 1\n2 4 0\n",
			clauses: []Clause{{"x2": Positive, "x4": Positive}},
			symbols: []string{"x2", "x4"},
		},
		{
			name:    "clause count in preamble is declarative only",
			input:   "p cnf 2 7\n1 0\n2 0\n",
			clauses: []Clause{{"x1": Positive}, {"x2": Positive}},
			symbols: []string{"x1", "x2"},
		},
		{
			name:    "zero-only line contributes no clause",
			input:   "p cnf 2 2\n0\n1 0\n",
			clauses: []Clause{{"x1": Positive}},
			symbols: []string{"x1"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Act
			formula, err := Parse(strings.NewReader(scenario.input))

			// Assert
			assert.NoError(t, err)
			if diff := cmp.Diff(scenario.clauses, formula.Clauses, cmp.Comparer(clausesEqual), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("clauses mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(scenario.symbols), len(formula.Symbols))
			for i, symbol := range scenario.symbols {
				assert.Equal(t, symbol, formula.Symbols[i])
			}
		})
	}
}

func clausesEqual(a, b Clause) bool {
	if len(a) != len(b) {
		return false
	}
	for symbol, sign := range a {
		if b[symbol] != sign {
			return false
		}
	}
	return true
}

func TestParseSymbolOrderIsNumeric(t *testing.T) {
	// x10 must sort after x2, not between x1 and x2
	formula, err := Parse(strings.NewReader("p cnf 10 1\n10 1 2 0\n"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "x10"}, formula.Symbols)
}

func TestParseDuplicateLiteralOverwrites(t *testing.T) {
	// A repeated variable keeps only the last sign, so a tautological input
	// clause collapses into a unit clause instead of being detected.
	formula, err := Parse(strings.NewReader("p cnf 1 1\n1 -1 0\n"))
	assert.NoError(t, err)
	assert.Equal(t, []Clause{{"x1": Negative}}, formula.Clauses)

	formula, err = Parse(strings.NewReader("p cnf 1 1\n-1 1 0\n"))
	assert.NoError(t, err)
	assert.Equal(t, []Clause{{"x1": Positive}}, formula.Clauses)
}

func TestParseMalformedPreamble(t *testing.T) {
	scenarios := []string{
		"p cnf 2\n1 0\n",
		"p cnf 2 2 9\n1 0\n",
		"p dnf 2 2\n1 0\n",
		"p cnf two 2\n1 0\n",
		"p cnf 2 two\n1 0\n",
	}

	for _, scenario := range scenarios {
		_, err := Parse(strings.NewReader(scenario))

		assert.Error(t, err)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 1, parseErr.Line)
	}
}

func TestParseUndefinedLiteral(t *testing.T) {
	// Out of the declared range
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 3 0\n"))
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "3")

	// Negative literals report their original spelling
	_, err = Parse(strings.NewReader("p cnf 2 1\n-4 1 0\n"))
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "-4")

	// A clause before any preamble has no declared variables at all
	_, err = Parse(strings.NewReader("1 2 0\np cnf 2 1\n"))
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseInvalidLiteralToken(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 x 0\n"))

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("does-not-exist.cnf")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.cnf")
}

func TestDimacsRoundTrip(t *testing.T) {
	// Arrange
	inputs := []string{
		"p cnf 2 2\n1 2 0\n-1 -2 0\n",
		"p cnf 3 3\n1 -2 3 0\n-1 2 0\n-3 0\n",
		"p cnf 10 2\n10 -1 0\n2 5 0\n",
		"p cnf 0 0\n",
	}

	for _, input := range inputs {
		// Act
		formula, err := Parse(strings.NewReader(input))
		assert.NoError(t, err)
		reparsed, err := Parse(strings.NewReader(formula.Dimacs()))
		assert.NoError(t, err)

		// Assert
		if diff := cmp.Diff(formula.Clauses, reparsed.Clauses, cmp.Comparer(clausesEqual), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, formula.Symbols, reparsed.Symbols)
	}
}
