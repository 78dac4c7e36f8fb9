package validation

import (
	"context"
	"testing"

	"github.com/anuk909/Kakuro-Solver/kakuro"
	"github.com/anuk909/Kakuro-Solver/solver"
)

func crossBoard(t *testing.T) *kakuro.Board {
	t.Helper()
	b, err := kakuro.NewBoard(3, 3, []kakuro.CellDesc{
		{X: 0, Y: 0, Wall: true},
		{X: 1, Y: 0, DownSum: 4},
		{X: 2, Y: 0, DownSum: 6},
		{X: 0, Y: 1, RightSum: 3},
		{X: 0, Y: 2, RightSum: 7},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func TestCheckValidSolution(t *testing.T) {
	b := crossBoard(t)
	sol := kakuro.Solution{
		{X: 1, Y: 1}: 1,
		{X: 2, Y: 1}: 2,
		{X: 1, Y: 2}: 3,
		{X: 2, Y: 2}: 4,
	}

	res, err := Check(b, sol)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !res.Valid {
		t.Errorf("Expected valid solution, got errors: %v", res.Errors)
	}
	if res.Summary.Runs != 4 {
		t.Errorf("Expected 4 runs in summary, got %d", res.Summary.Runs)
	}
}

func TestCheckWrongSum(t *testing.T) {
	b := crossBoard(t)
	sol := kakuro.Solution{
		{X: 1, Y: 1}: 2,
		{X: 2, Y: 1}: 1,
		{X: 1, Y: 2}: 3,
		{X: 2, Y: 2}: 4,
	}
	// Row sums hold (2+1=3, 3+4=7) but column targets 4 and 6 break (5, 5).

	res, err := Check(b, sol)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if res.Valid {
		t.Fatal("Expected invalid solution")
	}
	sumErrors := 0
	for _, issue := range res.Errors {
		if issue.Category == "sum" {
			sumErrors++
		}
	}
	if sumErrors != 2 {
		t.Errorf("Expected 2 sum violations, got %d (%v)", sumErrors, res.Errors)
	}
}

func TestCheckRepeatedDigit(t *testing.T) {
	b, err := kakuro.NewBoard(1, 4, []kakuro.CellDesc{{X: 0, Y: 0, RightSum: 9}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	sol := kakuro.Solution{
		{X: 1, Y: 0}: 3,
		{X: 2, Y: 0}: 3,
		{X: 3, Y: 0}: 3,
	}

	res, err := Check(b, sol)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if res.Valid {
		t.Fatal("Expected invalid solution")
	}
	found := false
	for _, issue := range res.Errors {
		if issue.Category == "distinct" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a distinctness violation, got %v", res.Errors)
	}
}

func TestCheckCoverage(t *testing.T) {
	b := crossBoard(t)

	t.Run("missing digit", func(t *testing.T) {
		sol := kakuro.Solution{
			{X: 1, Y: 1}: 1,
			{X: 2, Y: 1}: 2,
			{X: 1, Y: 2}: 3,
		}
		res, err := Check(b, sol)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if res.Valid {
			t.Fatal("Expected invalid solution")
		}
	})

	t.Run("digit on clue cell", func(t *testing.T) {
		sol := kakuro.Solution{
			{X: 1, Y: 1}: 1,
			{X: 2, Y: 1}: 2,
			{X: 1, Y: 2}: 3,
			{X: 2, Y: 2}: 4,
			{X: 1, Y: 0}: 5,
		}
		res, err := Check(b, sol)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if res.Valid {
			t.Fatal("Expected invalid solution")
		}
	})

	t.Run("digit out of range", func(t *testing.T) {
		sol := kakuro.Solution{
			{X: 1, Y: 1}: 0,
			{X: 2, Y: 1}: 3,
			{X: 1, Y: 2}: 3,
			{X: 2, Y: 2}: 4,
		}
		res, err := Check(b, sol)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if res.Valid {
			t.Fatal("Expected invalid solution")
		}
	})
}

func TestCheckUnconstrainedBlankWarns(t *testing.T) {
	// (0,1) through (2,1) belong to no run: unassigned is a warning, not an
	// error.
	b, err := kakuro.NewBoard(2, 3, []kakuro.CellDesc{{X: 0, Y: 0, RightSum: 3}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	sol := kakuro.Solution{
		{X: 1, Y: 0}: 1,
		{X: 2, Y: 0}: 2,
	}

	res, err := Check(b, sol)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !res.Valid {
		t.Errorf("Expected valid solution, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 3 {
		t.Errorf("Expected 3 coverage warnings, got %d (%v)", len(res.Warnings), res.Warnings)
	}
}

// Every solution the engine produces must validate: the soundness property.
func TestSolverSolutionsValidate(t *testing.T) {
	boards := []*kakuro.Board{crossBoard(t)}

	for _, b := range boards {
		res, err := solver.Solve(context.Background(), b, solver.DefaultOptions())
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if res.Outcome != solver.Solved {
			t.Fatalf("Expected solved, got %s", res.Outcome)
		}
		check, err := Check(b, res.Solution)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !check.Valid {
			t.Errorf("Solver produced an invalid solution: %v", check.Errors)
		}
	}
}
