// Package store persists puzzles and solve results. Two implementations
// share one interface: an in-memory store for tests and ephemeral use, and a
// SQLite-backed store for durable collections. Puzzles are kept in the
// exchange JSON format so external collaborators can read them directly.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a puzzle or result does not exist.
var ErrNotFound = errors.New("not found")

// Puzzle is a persisted puzzle document.
type Puzzle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Document  []byte    `json:"document"` // exchange-format JSON
	CreatedAt time.Time `json:"created_at"`
}

// SolveRecord captures one completed search over a stored puzzle.
type SolveRecord struct {
	ID        string        `json:"id"`
	PuzzleID  string        `json:"puzzle_id"`
	Outcome   string        `json:"outcome"` // solved, exhausted, timed-out
	Nodes     int           `json:"nodes"`
	Duration  time.Duration `json:"duration"`
	Digest    string        `json:"digest,omitempty"`   // solution commitment
	Solution  []byte        `json:"solution,omitempty"` // exchange JSON with solution_cells
	CreatedAt time.Time     `json:"created_at"`
}

// Store persists puzzles and their solve results.
type Store interface {
	// SavePuzzle stores a puzzle, assigning an ID when none is set.
	SavePuzzle(ctx context.Context, p *Puzzle) error

	// LoadPuzzle retrieves a puzzle by ID.
	LoadPuzzle(ctx context.Context, id string) (*Puzzle, error)

	// ListPuzzles returns all puzzles ordered by creation time.
	ListPuzzles(ctx context.Context) ([]*Puzzle, error)

	// SaveResult stores a solve record, assigning an ID when none is set.
	SaveResult(ctx context.Context, r *SolveRecord) error

	// ResultsFor returns all solve records for a puzzle, oldest first.
	ResultsFor(ctx context.Context, puzzleID string) ([]*SolveRecord, error)

	// Close releases underlying resources.
	Close() error
}
