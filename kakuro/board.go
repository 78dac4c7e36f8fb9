// Package kakuro implements the core Kakuro puzzle data structures.
// A Kakuro grid consists of Walls (non-playable), Clues (non-playable cells
// anchoring a rightward and/or downward sum), and Blanks (playable cells
// that must hold digits 1-9). Contiguous sequences of blanks form Runs,
// each governed by one sum constraint with all digits distinct.
package kakuro

import (
	"fmt"
	"sort"
)

// Coord identifies a grid cell. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellKind classifies a board cell.
type CellKind int

const (
	// Blank is a playable cell that must eventually hold a digit 1-9.
	Blank CellKind = iota
	// Wall is a non-playable cell carrying no sum.
	Wall
	// Clue is a non-playable cell anchoring a rightward and/or downward run.
	Clue
)

// String returns the kind name for diagnostics.
func (k CellKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Wall:
		return "wall"
	case Clue:
		return "clue"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// Cell is a non-blank board entry. For Clue cells, RowSum is the target of
// the rightward run and ColSum the target of the downward run; zero means
// the sum is absent. Wall cells carry no sums.
type Cell struct {
	Kind   CellKind
	RowSum int
	ColSum int
}

// CellDesc is a raw cell descriptor as produced by external collaborators
// (scraper, OCR, hand-authored JSON). A descriptor with RightSum or DownSum
// set is a clue; one with only Wall set is a wall; one with neither is
// ignored (the coordinate stays blank).
type CellDesc struct {
	X        int
	Y        int
	Wall     bool
	RightSum int // 0 = absent
	DownSum  int // 0 = absent
}

// Board is an immutable Kakuro grid. Coordinates absent from the cell map
// are implicitly blank when inside the grid bounds.
type Board struct {
	Rows  int
	Cols  int
	cells map[Coord]Cell
}

// NewBoard builds a board from raw cell descriptors.
// It fails on duplicate coordinates, out-of-bounds coordinates, and
// non-positive sums; descriptors carrying neither a wall flag nor a sum are
// ignored. The returned board is fully validated and safe to hand to the
// solver.
func NewBoard(rows, cols int, descs []CellDesc) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %dx%d", rows, cols)
	}

	b := &Board{
		Rows:  rows,
		Cols:  cols,
		cells: make(map[Coord]Cell, len(descs)),
	}

	for _, d := range descs {
		at := Coord{X: d.X, Y: d.Y}
		if d.X < 0 || d.X >= cols || d.Y < 0 || d.Y >= rows {
			return nil, fmt.Errorf("cell (%d,%d) outside %dx%d grid", d.X, d.Y, rows, cols)
		}
		if _, seen := b.cells[at]; seen {
			return nil, &DuplicateCellError{At: at}
		}

		switch {
		case d.RightSum != 0 || d.DownSum != 0:
			// Sums imply a clue even when the wall flag is also set;
			// both signals mean "not a playable cell".
			if d.RightSum < 0 {
				return nil, &InvalidSumError{At: at, Sum: d.RightSum, Dir: Row}
			}
			if d.DownSum < 0 {
				return nil, &InvalidSumError{At: at, Sum: d.DownSum, Dir: Col}
			}
			b.cells[at] = Cell{Kind: Clue, RowSum: d.RightSum, ColSum: d.DownSum}
		case d.Wall:
			b.cells[at] = Cell{Kind: Wall}
		default:
			// Neither wall nor sums: implicit blank, nothing to record.
		}
	}

	return b, nil
}

// KindAt returns the kind of the cell at the given coordinate.
// Coordinates outside the grid report Wall, which lets run extraction treat
// the boundary uniformly.
func (b *Board) KindAt(at Coord) CellKind {
	if at.X < 0 || at.X >= b.Cols || at.Y < 0 || at.Y >= b.Rows {
		return Wall
	}
	if c, ok := b.cells[at]; ok {
		return c.Kind
	}
	return Blank
}

// CellAt returns the non-blank cell at the given coordinate, if any.
func (b *Board) CellAt(at Coord) (Cell, bool) {
	c, ok := b.cells[at]
	return c, ok
}

// Clues returns all clue cells in row-major order.
func (b *Board) Clues() []ClueCell {
	clues := make([]ClueCell, 0, len(b.cells))
	for at, c := range b.cells {
		if c.Kind == Clue {
			clues = append(clues, ClueCell{At: at, RowSum: c.RowSum, ColSum: c.ColSum})
		}
	}
	sort.Slice(clues, func(i, j int) bool {
		if clues[i].At.Y != clues[j].At.Y {
			return clues[i].At.Y < clues[j].At.Y
		}
		return clues[i].At.X < clues[j].At.X
	})
	return clues
}

// Blanks returns all playable coordinates in row-major order
// (ascending y, then x). The order is the solver's assignment order.
func (b *Board) Blanks() []Coord {
	blanks := make([]Coord, 0, b.Rows*b.Cols-len(b.cells))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			at := Coord{X: x, Y: y}
			if b.KindAt(at) == Blank {
				blanks = append(blanks, at)
			}
		}
	}
	return blanks
}

// Descriptors returns the board's non-blank cells as raw descriptors in
// row-major order, suitable for re-serialization. Round-tripping the result
// through NewBoard reproduces the board.
func (b *Board) Descriptors() []CellDesc {
	descs := make([]CellDesc, 0, len(b.cells))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			c, ok := b.cells[Coord{X: x, Y: y}]
			if !ok {
				continue
			}
			d := CellDesc{X: x, Y: y}
			switch c.Kind {
			case Wall:
				d.Wall = true
			case Clue:
				d.RightSum = c.RowSum
				d.DownSum = c.ColSum
			}
			descs = append(descs, d)
		}
	}
	return descs
}

// ClueCell pairs a clue's coordinate with its targets.
type ClueCell struct {
	At     Coord
	RowSum int
	ColSum int
}
