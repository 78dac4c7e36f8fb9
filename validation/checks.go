package validation

import (
	"fmt"

	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// checkCoverage verifies the solution assigns exactly the playable cells:
// every run-covered blank has a digit, and no wall, clue, or out-of-bounds
// coordinate carries one. A blank outside every run is unconstrained, so a
// missing digit there is only a warning.
func (v *Validator) checkCoverage() {
	covered := make(map[kakuro.Coord]bool)
	for _, r := range v.runs {
		for _, at := range r.Cells {
			covered[at] = true
		}
	}

	for _, at := range v.board.Blanks() {
		if _, ok := v.solution[at]; ok {
			continue
		}
		if covered[at] {
			v.AddError("coverage", fmt.Sprintf("Blank cell (%d,%d) has no digit", at.X, at.Y),
				[]kakuro.Coord{at})
		} else {
			v.AddWarning("coverage", fmt.Sprintf("Blank cell (%d,%d) belongs to no run and is unassigned", at.X, at.Y),
				[]kakuro.Coord{at})
		}
	}

	for at := range v.solution {
		if kind := v.board.KindAt(at); kind != kakuro.Blank {
			v.AddError("coverage", fmt.Sprintf("Solution assigns a digit to %s cell (%d,%d)", kind, at.X, at.Y),
				[]kakuro.Coord{at})
		}
	}
}

// checkDigits verifies every assigned digit lies in 1..9.
func (v *Validator) checkDigits() {
	for at, d := range v.solution {
		if d < 1 || d > 9 {
			v.AddError("digit", fmt.Sprintf("Digit %d at (%d,%d) outside 1..9", d, at.X, at.Y),
				[]kakuro.Coord{at})
		}
	}
}

// checkRuns verifies each run sums exactly to its target with pairwise
// distinct digits. Runs with missing digits were already reported by
// checkCoverage and are skipped here.
func (v *Validator) checkRuns() {
	for _, r := range v.runs {
		sum := 0
		seen := make(map[int]kakuro.Coord, r.Len())
		complete := true
		for _, at := range r.Cells {
			d, ok := v.solution[at]
			if !ok {
				complete = false
				break
			}
			if prev, dup := seen[d]; dup {
				v.AddError("distinct", fmt.Sprintf("Digit %d repeated in %s run at (%d,%d) and (%d,%d)",
					d, r.Dir, prev.X, prev.Y, at.X, at.Y), r.Cells)
			}
			seen[d] = at
			sum += d
		}
		if complete && sum != r.Target {
			v.AddError("sum", fmt.Sprintf("%s run of %d cells sums to %d, expected %d",
				r.Dir, r.Len(), sum, r.Target), r.Cells)
		}
	}
}
