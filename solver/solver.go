// Package solver implements the backtracking search engine for Kakuro
// puzzles. The search assigns digits to blank cells in a fixed row-major
// order, trying candidates in ascending order, so identical boards always
// produce identical outcomes. Infeasible partial assignments are pruned
// using per-run distinctness, sum bounds over the remaining digit pool, and
// the combination library's digit masks.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/anuk909/Kakuro-Solver/combos"
	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// Outcome is the terminal state of a search.
type Outcome int

const (
	// Solved means a satisfying assignment was found.
	Solved Outcome = iota
	// Exhausted means the search space was fully explored with no solution.
	// This proves the puzzle unsatisfiable.
	Exhausted
	// TimedOut means the node budget or context deadline was exceeded
	// before the search concluded. Unlike Exhausted, it is inconclusive.
	TimedOut
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case TimedOut:
		return "timed-out"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options configures a search.
type Options struct {
	// MaxNodes bounds the number of candidate trials; 0 means unlimited.
	MaxNodes int
	// Library supplies precomputed combinations. Shared across searches;
	// when nil, Solve allocates a private one.
	Library *combos.Library
}

// DefaultOptions returns an unbounded search with a private library.
func DefaultOptions() Options {
	return Options{}
}

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Result is the complete output of a search. Solution is non-nil only when
// Outcome is Solved.
type Result struct {
	Outcome  Outcome
	Solution kakuro.Solution
	Stats    Stats
}

// runState tracks one sum constraint during search.
type runState struct {
	target     int
	mask       uint16 // digits usable in any combination for (len, target)
	used       uint16 // digits assigned so far
	sum        int
	unassigned int
}

// cellState indexes a blank cell's run memberships. A cell belongs to at
// most one row run and one column run.
type cellState struct {
	at   kakuro.Coord
	runs []int
}

// Solve searches for a digit assignment satisfying every run on the board.
// It returns an error only when run extraction fails (malformed puzzle
// data); on a valid board the result is always one of the three outcomes.
// Cancel or set a deadline on ctx to bound wall-clock time; the flag is
// checked between candidate trials and surfaces as TimedOut.
func Solve(ctx context.Context, b *kakuro.Board, opts Options) (*Result, error) {
	start := time.Now()

	runs, err := b.Runs()
	if err != nil {
		return nil, err
	}

	lib := opts.Library
	if lib == nil {
		lib = combos.NewLibrary()
	}

	// Pre-search feasibility: a run whose target is outside the reachable
	// range, or with an empty combination set, can never be satisfied.
	for _, r := range runs {
		if !lib.Feasible(r.Len(), r.Target) {
			return &Result{Outcome: Exhausted, Stats: Stats{Duration: time.Since(start)}}, nil
		}
	}

	states := make([]runState, len(runs))
	for i, r := range runs {
		states[i] = runState{
			target:     r.Target,
			mask:       lib.DigitMask(r.Len(), r.Target),
			unassigned: r.Len(),
		}
	}

	// Only blanks covered by a run carry constraints; they are assigned in
	// row-major order. A blank outside every run is unconstrained and left
	// out of the solution.
	memberOf := make(map[kakuro.Coord][]int)
	for i, r := range runs {
		for _, at := range r.Cells {
			memberOf[at] = append(memberOf[at], i)
		}
	}
	var cells []cellState
	for _, at := range b.Blanks() {
		if rs, ok := memberOf[at]; ok {
			cells = append(cells, cellState{at: at, runs: rs})
		}
	}

	assigned := make([]int, len(cells))
	nodes := 0
	budget := opts.MaxNodes

	var search func(idx int) (bool, bool) // (solved, aborted)
	search = func(idx int) (bool, bool) {
		if idx == len(cells) {
			return true, false
		}
		cell := cells[idx]
		for d := 1; d <= 9; d++ {
			if ctx.Err() != nil {
				return false, true
			}
			nodes++
			if budget > 0 && nodes > budget {
				return false, true
			}
			if !admissible(states, cell.runs, d) {
				continue
			}
			place(states, cell.runs, d)
			assigned[idx] = d
			if solved, aborted := search(idx + 1); solved || aborted {
				return solved, aborted
			}
			unplace(states, cell.runs, d)
			assigned[idx] = 0
		}
		return false, false
	}

	solved, aborted := search(0)
	stats := Stats{Nodes: nodes, Duration: time.Since(start)}
	switch {
	case solved:
		sol := make(kakuro.Solution, len(cells))
		for i, c := range cells {
			sol[c.at] = assigned[i]
		}
		return &Result{Outcome: Solved, Solution: sol, Stats: stats}, nil
	case aborted:
		return &Result{Outcome: TimedOut, Stats: stats}, nil
	default:
		return &Result{Outcome: Exhausted, Stats: stats}, nil
	}
}

// admissible reports whether digit d can extend every run containing the
// cell: d is unused in the run, appears in the run's combination mask, and
// keeps the target reachable with the remaining unassigned cells drawing
// from the unused digit pool.
func admissible(states []runState, runs []int, d int) bool {
	bit := uint16(1) << uint(d)
	for _, ri := range runs {
		rs := &states[ri]
		if rs.used&bit != 0 || rs.mask&bit == 0 {
			return false
		}
		newSum := rs.sum + d
		if newSum > rs.target {
			return false
		}
		rem := rs.unassigned - 1
		if rem == 0 {
			if newSum != rs.target {
				return false
			}
			continue
		}
		avail := ^(rs.used | bit)
		need := rs.target - newSum
		if need < poolMin(avail, rem) || need > poolMax(avail, rem) {
			return false
		}
	}
	return true
}

// poolMin sums the n smallest available digits.
func poolMin(avail uint16, n int) int {
	sum := 0
	for d := 1; d <= 9 && n > 0; d++ {
		if avail&(1<<uint(d)) != 0 {
			sum += d
			n--
		}
	}
	if n > 0 {
		// Not enough digits left; make the bound unreachable.
		return 1 << 16
	}
	return sum
}

// poolMax sums the n largest available digits.
func poolMax(avail uint16, n int) int {
	sum := 0
	for d := 9; d >= 1 && n > 0; d-- {
		if avail&(1<<uint(d)) != 0 {
			sum += d
			n--
		}
	}
	if n > 0 {
		return -1
	}
	return sum
}

func place(states []runState, runs []int, d int) {
	bit := uint16(1) << uint(d)
	for _, ri := range runs {
		states[ri].used |= bit
		states[ri].sum += d
		states[ri].unassigned--
	}
}

func unplace(states []runState, runs []int, d int) {
	bit := uint16(1) << uint(d)
	for _, ri := range runs {
		states[ri].used &^= bit
		states[ri].sum -= d
		states[ri].unassigned++
	}
}
