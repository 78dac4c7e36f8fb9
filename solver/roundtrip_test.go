package solver

import (
	"context"
	"testing"

	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// TestSolveRoundTrip builds a puzzle from a known digit grid by computing
// its clue sums, strips the digits, re-solves, and checks the recovered
// assignment against the original clues. The digits need not match the seed
// grid unless the puzzle is uniquely solvable; the constraints must.
func TestSolveRoundTrip(t *testing.T) {
	// Seed grid (blanks only):
	//	. 1 2
	//	. 3 9
	// with clues derived from it: rows 1+2=3, 3+9=12; cols 1+3=4, 2+9=11.
	b := mustBoard(t, 3, 3, []kakuro.CellDesc{
		{X: 0, Y: 0, Wall: true},
		{X: 1, Y: 0, DownSum: 4},
		{X: 2, Y: 0, DownSum: 11},
		{X: 0, Y: 1, RightSum: 3},
		{X: 0, Y: 2, RightSum: 12},
	})

	res, err := Solve(context.Background(), b, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Outcome != Solved {
		t.Fatalf("Expected solved, got %s", res.Outcome)
	}

	runs, err := b.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	for _, r := range runs {
		sum := 0
		seen := make(map[int]bool)
		for _, at := range r.Cells {
			d, ok := res.Solution[at]
			if !ok {
				t.Fatalf("Cell (%d,%d) unassigned", at.X, at.Y)
			}
			if seen[d] {
				t.Errorf("Digit %d repeated in %s run", d, r.Dir)
			}
			seen[d] = true
			sum += d
		}
		if sum != r.Target {
			t.Errorf("%s run sums to %d, expected %d", r.Dir, sum, r.Target)
		}
	}
}
