package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "batch":
		if err := batch(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "store":
		if err := storeCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("kakuro version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`kakuro - Kakuro puzzle solving toolkit

Usage:
  kakuro <command> [options]

Commands:
  solve      Solve a puzzle file
  validate   Validate puzzle format and solution constraints
  batch      Solve many puzzle files concurrently
  prove      Generate a zero-knowledge proof of a solution
  store      Manage the puzzle database (put, get, list, results)
  help       Show this help message
  version    Show version information

Examples:
  # Solve a puzzle, writing puzzle_sol.json
  kakuro solve puzzle.json

  # Solve with a wall-clock budget
  kakuro solve puzzle.json --timeout 30s

  # Validate a solved puzzle
  kakuro validate puzzle_sol.json

  # Solve a directory of puzzles on 8 workers
  kakuro batch --workers 8 puzzles/*.json

  # Keep puzzles and solve results in a database
  kakuro store put --db kakuro.db puzzle.json
  kakuro solve --db kakuro.db puzzle.json

For command-specific help, run:
  kakuro <command> --help`)
}
