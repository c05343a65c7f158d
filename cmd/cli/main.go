package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/classicsat/internal/cnf"
	"github.com/limaJavier/classicsat/internal/sat"
)

var (
	validSolvers = []string{"dp", "resolution", "dpll"}
	solvers      = map[string]func() sat.Solver{
		"dp":         sat.NewDPSolver,
		"resolution": sat.NewResolutionSolver,
		"dpll":       sat.NewDPLLSolver,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "dpll", "Decision procedure to use. Allowed values are: \"dp\", \"resolution\" and \"dpll\", where \"dpll\" is the default")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <dimacs_input_file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	// Extract input
	formula, err := cnf.ParseFile(flag.Args()[0])
	if err != nil {
		var parseErr *cnf.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "Error parsing DIMACS file: %v\n", parseErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	// Solve
	solver := solvers[solverStr]()
	start := time.Now()
	_, satisfiable := solver.Solve(formula)
	elapsed := time.Since(start)

	if satisfiable {
		fmt.Println("Satisfiable")
	} else {
		fmt.Println("Unsatisfiable")
	}
	fmt.Printf("Time: %.4fs\n", elapsed.Seconds())
}
