package kakuro

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Solution maps each blank coordinate to its assigned digit 1-9.
// It is total only when every blank cell on the board is covered.
type Solution map[Coord]int

// Clone returns an independent copy of the solution.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	for at, v := range s {
		out[at] = v
	}
	return out
}

// digitsPerWord is how many 4-bit digit nibbles fit in one 256-bit word.
const digitsPerWord = 64

// Digest packs the solution into a canonical hex commitment: digits are
// taken in the board's row-major blank order and packed 4 bits apiece into
// 256-bit words, first digit in the lowest nibble of the first word.
// The digest is the stable identity of an assignment; the store uses it for
// de-duplication and the prover binds it as a public input.
func (s Solution) Digest(b *Board) (string, error) {
	blanks := b.Blanks()
	words := make([]*uint256.Int, 0, (len(blanks)+digitsPerWord-1)/digitsPerWord)

	word := uint256.NewInt(0)
	for i, at := range blanks {
		v, ok := s[at]
		if !ok {
			return "", fmt.Errorf("solution missing blank cell (%d,%d)", at.X, at.Y)
		}
		if v < 1 || v > 9 {
			return "", fmt.Errorf("digit %d at (%d,%d) outside 1..9", v, at.X, at.Y)
		}
		nibble := new(uint256.Int).Lsh(uint256.NewInt(uint64(v)), uint(4*(i%digitsPerWord)))
		word.Or(word, nibble)
		if (i+1)%digitsPerWord == 0 {
			words = append(words, word)
			word = uint256.NewInt(0)
		}
	}
	if len(blanks)%digitsPerWord != 0 || len(blanks) == 0 {
		words = append(words, word)
	}

	hexes := make([]string, len(words))
	for i, w := range words {
		hexes[i] = w.Hex()
	}
	return strings.Join(hexes, ":"), nil
}
