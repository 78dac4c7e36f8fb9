package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anuk909/Kakuro-Solver/schema"
	"github.com/anuk909/Kakuro-Solver/store"
)

func storeCmd(args []string) error {
	if len(args) < 1 {
		storeUsage()
		return fmt.Errorf("store subcommand required")
	}

	sub := args[0]
	rest := args[1:]
	switch sub {
	case "put":
		return storePut(rest)
	case "get":
		return storeGet(rest)
	case "list":
		return storeList(rest)
	case "results":
		return storeResults(rest)
	default:
		storeUsage()
		return fmt.Errorf("unknown store subcommand: %s", sub)
	}
}

func storeUsage() {
	fmt.Fprintf(os.Stderr, `Usage: kakuro store <put|get|list|results> [options]

Manage the puzzle database.

Subcommands:
  put --db kakuro.db puzzle.json      Store a puzzle, printing its ID
  get --db kakuro.db <id>             Write a stored puzzle to stdout
  list --db kakuro.db                 List stored puzzles
  results --db kakuro.db <puzzle-id>  List solve results for a puzzle
`)
}

func openStore(fs *flag.FlagSet, dbPath string) (*store.SQLiteStore, error) {
	if dbPath == "" {
		fs.Usage()
		return nil, fmt.Errorf("--db is required")
	}
	return store.NewSQLiteStore(dbPath)
}

func storePut(args []string) error {
	fs := flag.NewFlagSet("store put", flag.ExitOnError)
	dbPath := fs.String("db", "", "Database file")
	name := fs.String("name", "", "Display name (default: file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("puzzle file required")
	}
	inputFile := fs.Arg(0)

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read puzzle: %w", err)
	}
	// Reject malformed puzzles before they reach the database.
	if _, _, err := schema.FromJSON(data); err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	s, err := openStore(fs, *dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	puzzle := &store.Puzzle{Name: *name, Document: data}
	if puzzle.Name == "" {
		puzzle.Name = inputFile
	}
	if err := s.SavePuzzle(context.Background(), puzzle); err != nil {
		return err
	}
	fmt.Println(puzzle.ID)
	return nil
}

func storeGet(args []string) error {
	fs := flag.NewFlagSet("store get", flag.ExitOnError)
	dbPath := fs.String("db", "", "Database file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("puzzle ID required")
	}

	s, err := openStore(fs, *dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	puzzle, err := s.LoadPuzzle(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}
	os.Stdout.Write(puzzle.Document)
	fmt.Println()
	return nil
}

func storeList(args []string) error {
	fs := flag.NewFlagSet("store list", flag.ExitOnError)
	dbPath := fs.String("db", "", "Database file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := openStore(fs, *dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	puzzles, err := s.ListPuzzles(context.Background())
	if err != nil {
		return err
	}
	for _, p := range puzzles {
		fmt.Printf("%s  %s  %s\n", p.ID, p.CreatedAt.Format(time.RFC3339), p.Name)
	}
	return nil
}

func storeResults(args []string) error {
	fs := flag.NewFlagSet("store results", flag.ExitOnError)
	dbPath := fs.String("db", "", "Database file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("puzzle ID required")
	}

	s, err := openStore(fs, *dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.ResultsFor(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}
	for _, r := range records {
		line := fmt.Sprintf("%s  %-9s  %d nodes  %v",
			r.CreatedAt.Format(time.RFC3339), r.Outcome, r.Nodes, r.Duration.Round(time.Microsecond))
		if r.Digest != "" {
			line += "  " + r.Digest
		}
		fmt.Println(line)
	}
	return nil
}
