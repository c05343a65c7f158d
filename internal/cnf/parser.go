package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a malformed DIMACS input line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParseFile reads a DIMACS CNF formula from the file at path.
func ParseFile(path string) (Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return Formula{}, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads a formula in the DIMACS CNF format. Comment lines may appear
// anywhere. The preamble declares the variable space x1..x<nvars>; a literal
// referring to a variable outside it is an error. The declared clause count is
// ignored. Literal tokens "0" are discarded wherever they appear, and a line
// whose literals all vanish contributes no clause.
func Parse(r io.Reader) (Formula, error) {
	variables := make(map[int]string)
	var clauses []Clause
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "c"):
			continue
		case strings.HasPrefix(line, "p"):
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Formula{}, &ParseError{Line: lineNumber, Msg: fmt.Sprintf("invalid preamble %q", line)}
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil {
				return Formula{}, &ParseError{Line: lineNumber, Msg: fmt.Sprintf("variable count %q is not an integer", fields[2])}
			}
			if _, err := strconv.Atoi(fields[3]); err != nil {
				return Formula{}, &ParseError{Line: lineNumber, Msg: fmt.Sprintf("clause count %q is not an integer", fields[3])}
			}
			for i := 1; i <= count; i++ {
				variables[i] = "x" + strconv.Itoa(i)
			}
		default:
			clause := Clause{}
			for _, token := range strings.Fields(line) {
				if token == "0" {
					continue
				}
				literal, err := strconv.Atoi(token)
				if err != nil {
					return Formula{}, &ParseError{Line: lineNumber, Msg: fmt.Sprintf("invalid literal %q", token)}
				}
				sign, index := Positive, literal
				if literal < 0 {
					sign, index = Negative, -literal
				}
				symbol, ok := variables[index]
				if !ok {
					return Formula{}, &ParseError{Line: lineNumber, Msg: fmt.Sprintf("literal %d refers to an undefined variable", literal)}
				}
				clause[symbol] = sign
			}
			if len(clause) > 0 {
				clauses = append(clauses, clause)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Formula{}, err
	}
	return NewFormula(clauses), nil
}
