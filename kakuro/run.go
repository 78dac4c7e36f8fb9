package kakuro

// Direction identifies a run's orientation.
type Direction int

const (
	// Row is a rightward run anchored by a clue's RowSum.
	Row Direction = iota
	// Col is a downward run anchored by a clue's ColSum.
	Col
)

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "col"
}

// Run is a contiguous sequence of blank cells governed by one sum
// constraint. Cells are ordered from the anchoring clue outward.
type Run struct {
	Dir    Direction
	Cells  []Coord
	Target int
}

// Len returns the number of cells in the run.
func (r Run) Len() int { return len(r.Cells) }

// extractRun walks from immediately after the clue in the given direction,
// collecting blank coordinates until the first wall, clue, or grid boundary.
func (b *Board) extractRun(clue Coord, dir Direction, target int) Run {
	run := Run{Dir: dir, Target: target}
	dx, dy := 1, 0
	if dir == Col {
		dx, dy = 0, 1
	}
	for at := (Coord{X: clue.X + dx, Y: clue.Y + dy}); b.KindAt(at) == Blank; at = (Coord{X: at.X + dx, Y: at.Y + dy}) {
		run.Cells = append(run.Cells, at)
	}
	return run
}

// Runs derives every sum run on the board, in row-major clue order with a
// clue's rightward run before its downward run. A clue sum with no adjacent
// blank cell yields an EmptyRunError: the puzzle data is malformed and must
// not reach the solver.
func (b *Board) Runs() ([]Run, error) {
	var runs []Run
	for _, clue := range b.Clues() {
		if clue.RowSum > 0 {
			run := b.extractRun(clue.At, Row, clue.RowSum)
			if run.Len() == 0 {
				return nil, &EmptyRunError{At: clue.At, Dir: Row}
			}
			runs = append(runs, run)
		}
		if clue.ColSum > 0 {
			run := b.extractRun(clue.At, Col, clue.ColSum)
			if run.Len() == 0 {
				return nil, &EmptyRunError{At: clue.At, Dir: Col}
			}
			runs = append(runs, run)
		}
	}
	return runs, nil
}
