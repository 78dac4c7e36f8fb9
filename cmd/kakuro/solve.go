package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anuk909/Kakuro-Solver/kakuro"
	"github.com/anuk909/Kakuro-Solver/schema"
	"github.com/anuk909/Kakuro-Solver/solver"
	"github.com/anuk909/Kakuro-Solver/store"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: <input>_sol.json)")
	maxNodes := fs.Int("max-nodes", 0, "Node budget for the search (0 = unlimited)")
	timeout := fs.Duration("timeout", 0, "Wall-clock budget (0 = unlimited)")
	dbPath := fs.String("db", "", "Record the puzzle and result in this database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kakuro solve <puzzle.json> [options]

Solve a Kakuro puzzle and write the solution in the exchange format.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Exit status:
  0  solved
  2  no solution exists (search space exhausted)
  3  budget exceeded before the search concluded

Examples:
  kakuro solve puzzle.json
  kakuro solve puzzle.json --output solved.json
  kakuro solve puzzle.json --timeout 30s --max-nodes 5000000
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}
	inputFile := fs.Arg(0)

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read puzzle: %w", err)
	}
	board, _, err := schema.FromJSON(data)
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	res, err := solver.Solve(ctx, board, solver.Options{MaxNodes: *maxNodes})
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	if *dbPath != "" {
		if err := recordResult(ctx, *dbPath, inputFile, data, board, res); err != nil {
			return fmt.Errorf("record result: %w", err)
		}
	}

	switch res.Outcome {
	case solver.Exhausted:
		fmt.Fprintf(os.Stderr, "No solution exists for %s (%d nodes, %v)\n",
			inputFile, res.Stats.Nodes, res.Stats.Duration.Round(time.Microsecond))
		os.Exit(2)
	case solver.TimedOut:
		fmt.Fprintf(os.Stderr, "Search budget exceeded for %s (%d nodes, %v)\n",
			inputFile, res.Stats.Nodes, res.Stats.Duration.Round(time.Microsecond))
		os.Exit(3)
	}

	out, err := schema.ToJSON(board, res.Solution)
	if err != nil {
		return fmt.Errorf("serialize solution: %w", err)
	}

	outputFile := *output
	if outputFile == "" {
		outputFile = defaultOutputName(inputFile)
	}
	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}

	fmt.Printf("Solved %s in %d nodes (%v)\n",
		inputFile, res.Stats.Nodes, res.Stats.Duration.Round(time.Microsecond))
	fmt.Printf("Writing solution to %s\n", outputFile)
	return nil
}

// defaultOutputName appends _sol before the extension: puzzle.json becomes
// puzzle_sol.json.
func defaultOutputName(input string) string {
	if strings.HasSuffix(input, ".json") {
		return strings.TrimSuffix(input, ".json") + "_sol.json"
	}
	return input + "_sol.json"
}

// recordResult persists the puzzle and the search outcome. The puzzle is
// keyed by file name so repeated solves accumulate under one entry.
func recordResult(ctx context.Context, dbPath, name string, doc []byte, board *kakuro.Board, res *solver.Result) error {
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	puzzle := &store.Puzzle{ID: name, Name: name, Document: doc}
	if err := s.SavePuzzle(ctx, puzzle); err != nil {
		return err
	}

	record := &store.SolveRecord{
		PuzzleID: puzzle.ID,
		Outcome:  res.Outcome.String(),
		Nodes:    res.Stats.Nodes,
		Duration: res.Stats.Duration,
	}
	if res.Outcome == solver.Solved {
		if digest, err := res.Solution.Digest(board); err == nil {
			record.Digest = digest
		}
		if solved, err := schema.ToJSON(board, res.Solution); err == nil {
			record.Solution = solved
		}
	}
	return s.SaveResult(ctx, record)
}
