package kakuro

import (
	"errors"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(2, 3, []CellDesc{
		{X: 0, Y: 0, RightSum: 3},
		{X: 0, Y: 1, Wall: true},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	if b.Rows != 2 || b.Cols != 3 {
		t.Errorf("Expected 2x3 board, got %dx%d", b.Rows, b.Cols)
	}
	if got := b.KindAt(Coord{X: 0, Y: 0}); got != Clue {
		t.Errorf("Expected clue at (0,0), got %s", got)
	}
	if got := b.KindAt(Coord{X: 0, Y: 1}); got != Wall {
		t.Errorf("Expected wall at (0,1), got %s", got)
	}
	if got := b.KindAt(Coord{X: 1, Y: 0}); got != Blank {
		t.Errorf("Expected implicit blank at (1,0), got %s", got)
	}
	if got := b.KindAt(Coord{X: 3, Y: 0}); got != Wall {
		t.Errorf("Expected out-of-bounds coordinate to report wall, got %s", got)
	}
}

func TestNewBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		descs []CellDesc
		want  any // target for errors.As, or nil for any error
	}{
		{
			name: "duplicate coordinate",
			rows: 3, cols: 3,
			descs: []CellDesc{
				{X: 1, Y: 1, Wall: true},
				{X: 1, Y: 1, RightSum: 4},
			},
			want: &DuplicateCellError{},
		},
		{
			name: "negative right sum",
			rows: 3, cols: 3,
			descs: []CellDesc{{X: 0, Y: 0, RightSum: -2}},
			want:  &InvalidSumError{},
		},
		{
			name: "negative down sum",
			rows: 3, cols: 3,
			descs: []CellDesc{{X: 0, Y: 0, DownSum: -1}},
			want:  &InvalidSumError{},
		},
		{
			name: "out of bounds",
			rows: 2, cols: 2,
			descs: []CellDesc{{X: 5, Y: 0, Wall: true}},
		},
		{
			name: "zero size",
			rows: 0, cols: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.rows, tt.cols, tt.descs)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			switch want := tt.want.(type) {
			case *DuplicateCellError:
				if !errors.As(err, &want) {
					t.Errorf("Expected DuplicateCellError, got %v", err)
				}
			case *InvalidSumError:
				if !errors.As(err, &want) {
					t.Errorf("Expected InvalidSumError, got %v", err)
				}
			}
		})
	}
}

func TestNewBoardIgnoresBareDescriptors(t *testing.T) {
	// Neither wall nor sums: the descriptor is ignored, the cell stays blank.
	b, err := NewBoard(2, 2, []CellDesc{{X: 1, Y: 1}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if got := b.KindAt(Coord{X: 1, Y: 1}); got != Blank {
		t.Errorf("Expected blank, got %s", got)
	}
	if _, ok := b.CellAt(Coord{X: 1, Y: 1}); ok {
		t.Error("Expected no recorded cell for bare descriptor")
	}
}

func TestNewBoardWallWithSumIsClue(t *testing.T) {
	// The wall flag and sums are not mutually exclusive signals; sums win.
	b, err := NewBoard(2, 3, []CellDesc{{X: 0, Y: 0, Wall: true, RightSum: 4}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	c, ok := b.CellAt(Coord{X: 0, Y: 0})
	if !ok || c.Kind != Clue {
		t.Fatalf("Expected clue cell, got %+v (ok=%v)", c, ok)
	}
	if c.RowSum != 4 {
		t.Errorf("Expected row sum 4, got %d", c.RowSum)
	}
}

func TestBlanksRowMajorOrder(t *testing.T) {
	b, err := NewBoard(2, 2, []CellDesc{{X: 0, Y: 0, Wall: true}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	got := b.Blanks()
	want := []Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d blanks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Blank %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestCluesSorted(t *testing.T) {
	b, err := NewBoard(3, 3, []CellDesc{
		{X: 2, Y: 1, DownSum: 5},
		{X: 0, Y: 0, RightSum: 4},
		{X: 1, Y: 0, DownSum: 3},
	})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	clues := b.Clues()
	want := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}
	for i, c := range clues {
		if c.At != want[i] {
			t.Errorf("Clue %d: expected %v, got %v", i, want[i], c.At)
		}
	}
}
