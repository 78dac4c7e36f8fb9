package kakuro

import (
	"errors"
	"testing"
)

func TestRunsRightAndDown(t *testing.T) {
	// . C C  where (1,0) anchors right=4 over (2,0) and down=3 over (1,1).
	b, err := NewBoard(2, 3, []CellDesc{
		{X: 0, Y: 0, Wall: true},
		{X: 1, Y: 0, RightSum: 4, DownSum: 3},
		{X: 0, Y: 1, Wall: true},
		{X: 2, Y: 1, Wall: true},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	runs, err := b.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	right := runs[0]
	if right.Dir != Row || right.Target != 4 {
		t.Errorf("Expected row run with target 4, got %s target %d", right.Dir, right.Target)
	}
	if right.Len() != 1 || right.Cells[0] != (Coord{X: 2, Y: 0}) {
		t.Errorf("Expected row run cells [(2,0)], got %v", right.Cells)
	}

	down := runs[1]
	if down.Dir != Col || down.Target != 3 {
		t.Errorf("Expected col run with target 3, got %s target %d", down.Dir, down.Target)
	}
	if down.Len() != 1 || down.Cells[0] != (Coord{X: 1, Y: 1}) {
		t.Errorf("Expected col run cells [(1,1)], got %v", down.Cells)
	}
}

func TestRunStopsAtClueAndBoundary(t *testing.T) {
	// Row 0: clue, blank, clue, blank. The first run must stop before the
	// second clue without including it; the second runs to the boundary.
	b, err := NewBoard(1, 4, []CellDesc{
		{X: 0, Y: 0, RightSum: 5},
		{X: 2, Y: 0, RightSum: 7},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	runs, err := b.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Len() != 1 || runs[0].Cells[0] != (Coord{X: 1, Y: 0}) {
		t.Errorf("Expected first run [(1,0)], got %v", runs[0].Cells)
	}
	if runs[1].Len() != 1 || runs[1].Cells[0] != (Coord{X: 3, Y: 0}) {
		t.Errorf("Expected second run [(3,0)], got %v", runs[1].Cells)
	}
}

func TestRunsEmptyRunError(t *testing.T) {
	// Clue's rightward neighbor is a wall: the sum has no cells to satisfy it.
	b, err := NewBoard(1, 3, []CellDesc{
		{X: 0, Y: 0, RightSum: 6},
		{X: 1, Y: 0, Wall: true},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	_, err = b.Runs()
	var emptyRun *EmptyRunError
	if !errors.As(err, &emptyRun) {
		t.Fatalf("Expected EmptyRunError, got %v", err)
	}
	if emptyRun.At != (Coord{X: 0, Y: 0}) || emptyRun.Dir != Row {
		t.Errorf("Expected row run error at (0,0), got %s at %v", emptyRun.Dir, emptyRun.At)
	}
}

func TestRunsClueAtGridEdge(t *testing.T) {
	// A downward clue on the last row has no room for its run.
	b, err := NewBoard(2, 2, []CellDesc{
		{X: 0, Y: 1, DownSum: 8},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if _, err := b.Runs(); err == nil {
		t.Fatal("Expected EmptyRunError for clue at grid edge, got nil")
	}
}

func TestRunsOrderDeterministic(t *testing.T) {
	descs := []CellDesc{
		{X: 0, Y: 0, Wall: true},
		{X: 1, Y: 0, DownSum: 4},
		{X: 2, Y: 0, DownSum: 6},
		{X: 0, Y: 1, RightSum: 5},
		{X: 0, Y: 2, RightSum: 5},
	}
	b, err := NewBoard(3, 3, descs)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	first, err := b.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	second, err := b.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Run counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Dir != second[i].Dir || first[i].Target != second[i].Target {
			t.Errorf("Run %d differs between extractions", i)
		}
	}
}
