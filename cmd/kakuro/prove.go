package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anuk909/Kakuro-Solver/prover"
	"github.com/anuk909/Kakuro-Solver/schema"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kakuro prove <solved.json>

Generate and verify a zero-knowledge proof that the file's solution
satisfies its board, without the proof revealing the digits. The input must
carry solution_cells.

Examples:
  kakuro prove puzzle_sol.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("solved puzzle file required")
	}
	inputFile := fs.Arg(0)

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read puzzle: %w", err)
	}
	board, solution, err := schema.FromJSON(data)
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}
	if solution == nil {
		return fmt.Errorf("%s carries no solution_cells", inputFile)
	}

	fmt.Printf("Compiling circuit for %dx%d board...\n", board.Rows, board.Cols)
	start := time.Now()
	cb, err := prover.New().Compile(board)
	if err != nil {
		return fmt.Errorf("compile circuit: %w", err)
	}
	fmt.Printf("Compiled %d constraints in %v\n", cb.Constraints, time.Since(start).Round(time.Millisecond))

	start = time.Now()
	proof, err := cb.Prove(solution)
	if err != nil {
		return fmt.Errorf("generate proof: %w", err)
	}
	fmt.Printf("Proof generated in %v\n", time.Since(start).Round(time.Millisecond))

	if err := cb.Verify(proof, solution); err != nil {
		return fmt.Errorf("verify proof: %w", err)
	}
	fmt.Println("Proof verified")

	if digest, err := solution.Digest(board); err == nil {
		fmt.Printf("Solution digest: %s\n", digest)
	}
	return nil
}
