package kakuro

import "fmt"

// DuplicateCellError reports two descriptors claiming the same coordinate.
type DuplicateCellError struct {
	At Coord
}

func (e *DuplicateCellError) Error() string {
	return fmt.Sprintf("duplicate cell descriptor at (%d,%d)", e.At.X, e.At.Y)
}

// InvalidSumError reports a clue whose target sum is not a positive integer.
type InvalidSumError struct {
	At  Coord
	Sum int
	Dir Direction
}

func (e *InvalidSumError) Error() string {
	return fmt.Sprintf("invalid %s sum %d at (%d,%d)", e.Dir, e.Sum, e.At.X, e.At.Y)
}

// EmptyRunError reports a clue sum with no blank cells to satisfy it.
// This indicates malformed puzzle data, not an unsatisfiable puzzle.
type EmptyRunError struct {
	At  Coord
	Dir Direction
}

func (e *EmptyRunError) Error() string {
	return fmt.Sprintf("clue at (%d,%d) has no blank cells for its %s run", e.At.X, e.At.Y, e.Dir)
}
