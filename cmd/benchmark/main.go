package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/limaJavier/classicsat/internal/cnf"
	"github.com/limaJavier/classicsat/internal/sat"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type SolverType int

const (
	dp SolverType = iota
	resolution
	dpll
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	wrong
)

var (
	solverTypes = map[SolverType]string{
		dp:         "dp",
		resolution: "resolution",
		dpll:       "dpll",
	}
	resultTypes = map[ResultType]string{
		solved:        "solved",
		unsatisfiable: "unsatisfiable",
		wrong:         "wrong",
	}
	solvers = map[SolverType]func() sat.Solver{
		dp:         sat.NewDPSolver,
		resolution: sat.NewResolutionSolver,
		dpll:       sat.NewDPLLSolver,
	}
)

type TestMetadata struct {
	Name        string
	File        string
	Satisfiable bool
}

type Manifest struct {
	Cases []TestMetadata
}

type BenchmarkResult struct {
	Solver   SolverType
	Test     TestMetadata
	Duration int64
	Result   ResultType
}

func main() {
	manifestPtr := flag.String("manifest", "", "Path to the json manifest listing the DIMACS instances to benchmark")
	outPtr := flag.String("out", "benchmark.csv", "Path to the csv file where the results will be written")
	flag.Parse()
	if *manifestPtr == "" {
		log.Fatal("a manifest file must be specified")
	}

	manifest, err := manifestFromJson(*manifestPtr)
	if err != nil {
		log.Fatalf("cannot parse manifest file: %v", err)
	}

	results := make([]BenchmarkResult, 0, len(manifest.Cases)*len(solvers))
	for _, test := range manifest.Cases {
		formula, err := cnf.ParseFile(test.File)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}

		for _, solverType := range []SolverType{dp, resolution, dpll} {
			fmt.Printf("Benchmarking test %q with solver %q\n", test.Name, solverTypes[solverType])

			solver := solvers[solverType]()
			start := time.Now()
			assignment, satisfiable := solver.Solve(formula)
			duration := time.Since(start).Milliseconds()

			results = append(results, BenchmarkResult{
				Solver:   solverType,
				Test:     test,
				Duration: duration,
				Result:   verdictResult(formula, test, assignment, satisfiable),
			})
		}
	}

	if err := toCsv(results, *outPtr); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

// verdictResult classifies a solver run against the expected verdict. A
// satisfiable verdict whose assignment does not satisfy the formula counts as
// wrong even when the verdict itself matches.
func verdictResult(formula cnf.Formula, test TestMetadata, assignment cnf.Assignment, satisfiable bool) ResultType {
	if satisfiable != test.Satisfiable {
		return wrong
	}
	if satisfiable && assignment != nil && !formula.IsSatisfied(assignment) {
		return wrong
	}
	if satisfiable {
		return solved
	}
	return unsatisfiable
}

func manifestFromJson(file string) (Manifest, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Manifest{}, err
	}
	var manifestJson map[string]any
	if err := json.Unmarshal(bytes, &manifestJson); err != nil {
		return Manifest{}, err
	}

	var manifest Manifest
	mapstructure.Decode(manifestJson, &manifest)

	return manifest, nil
}

func toCsv(results []BenchmarkResult, out string) error {
	records := [][]string{{"test", "file", "solver", "duration_ms", "result"}}
	records = append(records, lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			result.Test.Name,
			result.Test.File,
			solverTypes[result.Solver],
			fmt.Sprint(result.Duration),
			resultTypes[result.Result],
		}
	})...)

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	return writer.WriteAll(records)
}
