package boggle

import (
	"fmt"
	"math/rand"
)

// letterBank weights common letters more heavily than rare ones.
const letterBank = "AAAAAABBCCDDDEEEEEEEEEEEFFGGHHHHHIIIIIIJKLLLLMM" +
	"NNNNNNOOOOOOOPPQRRRRRSSSSSSTTTTTTTTTUUUVVWWWXYYYZ"

// RandomGrid returns a rows x cols grid of uppercase letters drawn from a
// frequency-weighted letter bank.
func RandomGrid(rows, cols int, rng *rand.Rand) (Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, &MalformedGridError{Row: -1, Reason: fmt.Sprintf("cannot generate a %dx%d grid", rows, cols)}
	}

	grid := make(Grid, rows)
	for r := range grid {
		row := make([]rune, cols)
		for c := range row {
			row[c] = rune(letterBank[rng.Intn(len(letterBank))])
		}
		grid[r] = row
	}
	return grid, nil
}
