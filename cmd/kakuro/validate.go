package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/anuk909/Kakuro-Solver/schema"
	"github.com/anuk909/Kakuro-Solver/validation"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	outputJSON := fs.Bool("json", false, "Output the report as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kakuro validate <puzzle.json> [options]

Validate a puzzle file: structural checks on the board and runs, plus full
constraint checks when solution_cells is present.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Checks performed:
  - Exchange format integrity (coordinates, sums, digit range)
  - Run structure (every clue sum has cells to satisfy it)
  - With a solution: coverage, digit range, run sums, distinctness

Examples:
  kakuro validate puzzle.json
  kakuro validate puzzle_sol.json --json
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
	board, solution, err := schema.FromJSON(data)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", inputFile, err)
	}

	runs, err := board.Runs()
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", inputFile, err)
	}

	if solution == nil {
		fmt.Printf("%s is valid (%dx%d, %d runs)\n", inputFile, board.Rows, board.Cols, len(runs))
		return nil
	}

	result := validation.NewValidator(board, runs, solution).Validate()

	if *outputJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printReport(inputFile, result)
	}

	if !result.Valid {
		os.Exit(2)
	}
	return nil
}

func printReport(name string, result *validation.Result) {
	if result.Valid {
		fmt.Printf("%s: solution is valid (%d runs, %d blanks)\n",
			name, result.Summary.Runs, result.Summary.Blanks)
	} else {
		fmt.Printf("%s: solution is INVALID (%d errors)\n", name, result.Summary.Errors)
	}
	for _, issue := range result.Errors {
		fmt.Printf("  error [%s]: %s\n", issue.Category, issue.Message)
	}
	for _, issue := range result.Warnings {
		fmt.Printf("  warning [%s]: %s\n", issue.Category, issue.Message)
	}
}
