package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by a SQLite database file.
// Use ":memory:" as the path for a transient database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite-backed store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc's driver allows one writer; serialize access through one
	// connection instead of surfacing SQLITE_BUSY to callers.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT,
		document BLOB NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		puzzle_id TEXT NOT NULL,
		outcome TEXT NOT NULL,
		nodes INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL,
		digest TEXT,
		solution BLOB,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (puzzle_id) REFERENCES puzzles(id)
	);

	CREATE INDEX IF NOT EXISTS idx_results_puzzle ON results(puzzle_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SavePuzzle stores a puzzle, assigning a fresh UUID when none is set.
func (s *SQLiteStore) SavePuzzle(ctx context.Context, p *Puzzle) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO puzzles (id, name, document, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Document, p.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save puzzle: %w", err)
	}
	return nil
}

// LoadPuzzle retrieves a puzzle by ID.
func (s *SQLiteStore) LoadPuzzle(ctx context.Context, id string) (*Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, document, created_at FROM puzzles WHERE id = ?`, id)

	var p Puzzle
	var createdAt int64
	if err := row.Scan(&p.ID, &p.Name, &p.Document, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return &p, nil
}

// ListPuzzles returns all puzzles ordered by creation time.
func (s *SQLiteStore) ListPuzzles(ctx context.Context) ([]*Puzzle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, document, created_at FROM puzzles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []*Puzzle
	for rows.Next() {
		var p Puzzle
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Document, &createdAt); err != nil {
			return nil, fmt.Errorf("scan puzzle: %w", err)
		}
		p.CreatedAt = time.Unix(0, createdAt).UTC()
		puzzles = append(puzzles, &p)
	}
	return puzzles, rows.Err()
}

// SaveResult stores a solve record, assigning a fresh UUID when none is set.
func (s *SQLiteStore) SaveResult(ctx context.Context, r *SolveRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO results
		 (id, puzzle_id, outcome, nodes, duration_ns, digest, solution, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.PuzzleID, r.Outcome, r.Nodes, int64(r.Duration), r.Digest, r.Solution,
		r.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// ResultsFor returns all solve records for a puzzle, oldest first.
func (s *SQLiteStore) ResultsFor(ctx context.Context, puzzleID string) ([]*SolveRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, puzzle_id, outcome, nodes, duration_ns, digest, solution, created_at
		 FROM results WHERE puzzle_id = ? ORDER BY created_at, id`, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var records []*SolveRecord
	for rows.Next() {
		var r SolveRecord
		var durationNS, createdAt int64
		if err := rows.Scan(&r.ID, &r.PuzzleID, &r.Outcome, &r.Nodes, &durationNS,
			&r.Digest, &r.Solution, &createdAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Duration = time.Duration(durationNS)
		r.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, &r)
	}
	return records, rows.Err()
}
