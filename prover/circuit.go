// Package prover generates zero-knowledge proofs of Kakuro solutions: a
// prover who knows a valid digit assignment for a public board can convince
// a verifier without revealing the digits. The board layout and run targets
// are public; the digits are the secret witness. A packed digit commitment
// is exposed as a public input so a proof can be tied to a stored solution
// digest without disclosing the assignment order's contents.
package prover

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/holiman/uint256"

	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// maxCommitCells bounds how many 4-bit digit nibbles fit in one BN254 field
// element without overflow: 9 * (16^63 - 1) / 15 < 2^252 < p.
const maxCommitCells = 63

// Circuit proves knowledge of a valid solution for one fixed board layout.
// The layout (cell count and run membership) is baked in at compile time;
// only the targets and the commitment vary between proofs over the same
// layout.
type Circuit struct {
	// Digits holds one secret variable per run-covered blank cell, in the
	// board's row-major order.
	Digits []frontend.Variable `gnark:",secret"`

	// Targets holds each run's public sum, in run extraction order.
	Targets []frontend.Variable `gnark:",public"`

	// Commitment is the public packed-nibble commitment over Digits.
	Commitment frontend.Variable `gnark:",public"`

	// runCells[i] indexes the Digits belonging to run i. Not part of the
	// witness; fixed per layout.
	runCells [][]int
}

// Define encodes the Kakuro constraints: each digit in 1..9, each run
// summing exactly to its target with pairwise distinct digits, and the
// commitment matching the packed digits.
func (c *Circuit) Define(api frontend.API) error {
	one := frontend.Variable(1)
	nine := frontend.Variable(9)
	for _, d := range c.Digits {
		api.AssertIsLessOrEqual(one, d)
		api.AssertIsLessOrEqual(d, nine)
	}

	for ri, cells := range c.runCells {
		sum := frontend.Variable(0)
		for _, idx := range cells {
			sum = api.Add(sum, c.Digits[idx])
		}
		api.AssertIsEqual(sum, c.Targets[ri])

		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				api.AssertIsDifferent(c.Digits[cells[i]], c.Digits[cells[j]])
			}
		}
	}

	packed := frontend.Variable(0)
	shift := big.NewInt(1)
	sixteen := big.NewInt(16)
	for _, d := range c.Digits {
		packed = api.Add(packed, api.Mul(d, shift))
		shift = new(big.Int).Mul(shift, sixteen)
	}
	api.AssertIsEqual(packed, c.Commitment)

	return nil
}

// layout captures the compile-time shape shared by circuit template and
// witness assignments.
type layout struct {
	cells    []kakuro.Coord
	cellIdx  map[kakuro.Coord]int
	runCells [][]int
	targets  []int
}

func layoutFor(board *kakuro.Board) (*layout, error) {
	runs, err := board.Runs()
	if err != nil {
		return nil, err
	}

	covered := make(map[kakuro.Coord]bool)
	for _, r := range runs {
		for _, at := range r.Cells {
			covered[at] = true
		}
	}

	l := &layout{cellIdx: make(map[kakuro.Coord]int)}
	for _, at := range board.Blanks() {
		if covered[at] {
			l.cellIdx[at] = len(l.cells)
			l.cells = append(l.cells, at)
		}
	}
	if len(l.cells) == 0 {
		return nil, fmt.Errorf("board has no run-covered cells to prove")
	}
	if len(l.cells) > maxCommitCells {
		return nil, fmt.Errorf("board has %d cells; the commitment supports at most %d", len(l.cells), maxCommitCells)
	}

	for _, r := range runs {
		cells := make([]int, r.Len())
		for i, at := range r.Cells {
			cells[i] = l.cellIdx[at]
		}
		l.runCells = append(l.runCells, cells)
		l.targets = append(l.targets, r.Target)
	}
	return l, nil
}

// template returns an unassigned circuit with the layout's shape, ready for
// compilation.
func (l *layout) template() *Circuit {
	return &Circuit{
		Digits:   make([]frontend.Variable, len(l.cells)),
		Targets:  make([]frontend.Variable, len(l.targets)),
		runCells: l.runCells,
	}
}

// assignment returns a fully assigned circuit for proving or verifying.
func (l *layout) assignment(solution kakuro.Solution) (*Circuit, error) {
	c := l.template()

	commitment := uint256.NewInt(0)
	for i, at := range l.cells {
		d, ok := solution[at]
		if !ok {
			return nil, fmt.Errorf("solution missing cell (%d,%d)", at.X, at.Y)
		}
		if d < 1 || d > 9 {
			return nil, fmt.Errorf("digit %d at (%d,%d) outside 1..9", d, at.X, at.Y)
		}
		c.Digits[i] = d
		nibble := new(uint256.Int).Lsh(uint256.NewInt(uint64(d)), uint(4*i))
		commitment.Or(commitment, nibble)
	}
	for i, target := range l.targets {
		c.Targets[i] = target
	}
	c.Commitment = commitment.ToBig()
	return c, nil
}
