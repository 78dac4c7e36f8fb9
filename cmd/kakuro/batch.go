package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	kakurobatch "github.com/anuk909/Kakuro-Solver/batch"
	"github.com/anuk909/Kakuro-Solver/kakuro"
	"github.com/anuk909/Kakuro-Solver/schema"
	"github.com/anuk909/Kakuro-Solver/solver"
)

func batch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Worker goroutines (0 = number of CPUs)")
	timeout := fs.Duration("timeout", 0, "Wall-clock budget for the whole batch (0 = unlimited)")
	maxNodes := fs.Int("max-nodes", 0, "Per-puzzle node budget (0 = unlimited)")
	write := fs.Bool("write", false, "Write <input>_sol.json for each solved puzzle")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kakuro batch [options] <puzzle.json>...

Solve many puzzle files concurrently. Puzzles are independent, so the batch
scales across CPUs with no coordination beyond the shared combination cache.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  kakuro batch puzzles/*.json
  kakuro batch --workers 8 --timeout 2m --write puzzles/*.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("at least one puzzle file required")
	}
	files := fs.Args()

	boards := make([]*kakuro.Board, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		board, _, err := schema.FromJSON(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}
		boards[i] = board
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	results := kakurobatch.SolveAll(ctx, boards, *workers, solver.Options{MaxNodes: *maxNodes})

	solved, exhausted, timedOut, failed := 0, 0, 0, 0
	for i, item := range results {
		switch {
		case item.Err != nil:
			failed++
			fmt.Printf("%-40s error: %v\n", files[i], item.Err)
		case item.Result.Outcome == solver.Solved:
			solved++
			fmt.Printf("%-40s solved (%d nodes, %v)\n",
				files[i], item.Result.Stats.Nodes, item.Result.Stats.Duration.Round(time.Microsecond))
			if *write {
				if err := writeSolution(files[i], item.Board, item.Result); err != nil {
					return err
				}
			}
		case item.Result.Outcome == solver.Exhausted:
			exhausted++
			fmt.Printf("%-40s no solution\n", files[i])
		default:
			timedOut++
			fmt.Printf("%-40s timed out\n", files[i])
		}
	}

	fmt.Printf("\n%d puzzles in %v: %d solved, %d unsatisfiable, %d timed out, %d failed\n",
		len(files), time.Since(start).Round(time.Millisecond), solved, exhausted, timedOut, failed)

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func writeSolution(file string, board *kakuro.Board, res *solver.Result) error {
	out, err := schema.ToJSON(board, res.Solution)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", file, err)
	}
	if err := os.WriteFile(defaultOutputName(file), out, 0o644); err != nil {
		return fmt.Errorf("write solution for %s: %w", file, err)
	}
	return nil
}
