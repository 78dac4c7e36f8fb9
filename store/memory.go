package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and ephemeral use.
// Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
	results map[string][]*SolveRecord // keyed by puzzle ID
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		puzzles: make(map[string]*Puzzle),
		results: make(map[string][]*SolveRecord),
	}
}

// SavePuzzle stores a puzzle, assigning a fresh UUID when none is set.
func (s *MemoryStore) SavePuzzle(ctx context.Context, p *Puzzle) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	cp := *p
	cp.Document = append([]byte(nil), p.Document...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[p.ID] = &cp
	return nil
}

// LoadPuzzle retrieves a puzzle by ID.
func (s *MemoryStore) LoadPuzzle(ctx context.Context, id string) (*Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.puzzles[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ListPuzzles returns all puzzles ordered by creation time.
func (s *MemoryStore) ListPuzzles(ctx context.Context) ([]*Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzles := make([]*Puzzle, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		cp := *p
		puzzles = append(puzzles, &cp)
	}
	sort.Slice(puzzles, func(i, j int) bool {
		if !puzzles[i].CreatedAt.Equal(puzzles[j].CreatedAt) {
			return puzzles[i].CreatedAt.Before(puzzles[j].CreatedAt)
		}
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

// SaveResult stores a solve record, assigning a fresh UUID when none is set.
func (s *MemoryStore) SaveResult(ctx context.Context, r *SolveRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	cp := *r
	cp.Solution = append([]byte(nil), r.Solution...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.PuzzleID] = append(s.results[r.PuzzleID], &cp)
	return nil
}

// ResultsFor returns all solve records for a puzzle, oldest first.
func (s *MemoryStore) ResultsFor(ctx context.Context, puzzleID string) ([]*SolveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*SolveRecord, 0, len(s.results[puzzleID]))
	for _, r := range s.results[puzzleID] {
		cp := *r
		records = append(records, &cp)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
