// Package batch solves independent puzzles concurrently. Each puzzle search
// is pure and shares no mutable state with its siblings, so a plain worker
// pool with one task per puzzle needs no locking beyond the combination
// library's own cache synchronization.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/anuk909/Kakuro-Solver/combos"
	"github.com/anuk909/Kakuro-Solver/kakuro"
	"github.com/anuk909/Kakuro-Solver/solver"
)

// Item pairs one input board with its outcome. Err is set only for
// malformed puzzle data; search outcomes (including TimedOut) land in
// Result.
type Item struct {
	Index  int
	Board  *kakuro.Board
	Result *solver.Result
	Err    error
}

// SolveAll solves every board and returns results in input order.
// workers <= 0 defaults to GOMAXPROCS. The same context bounds all
// searches; canceling it drives the remaining searches to TimedOut.
func SolveAll(ctx context.Context, boards []*kakuro.Board, workers int, opts solver.Options) []Item {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if opts.Library == nil {
		// One shared library so workers reuse each other's combination sets.
		opts.Library = combos.NewLibrary()
	}

	results := make([]Item, len(boards))
	jobs := make(chan int, len(boards))
	resultChan := make(chan Item, len(boards))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res, err := solver.Solve(ctx, boards[idx], opts)
				resultChan <- Item{Index: idx, Board: boards[idx], Result: res, Err: err}
			}
		}()
	}

	for i := range boards {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for item := range resultChan {
		results[item.Index] = item
	}
	return results
}
