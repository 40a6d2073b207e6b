package boggle

import (
	"slices"
	"unicode"
)

// pathFinder collects every path on grid that spells a given word.
type pathFinder struct {
	grid Grid     // Lowercased working copy.
	used [][]bool // Cells on curPath.

	curPath  Path
	allPaths []Path
}

func (p Path) clone() Path {
	return slices.Clone(p)
}

// Valid reports whether p visits no cell twice and every step moves to an
// adjacent cell of g.
func (p Path) Valid(g Grid) bool {
	seen := make(map[Cell]bool, len(p))
	for i, cell := range p {
		if cell.Row < 0 || cell.Row >= g.Rows() || cell.Col < 0 || cell.Col >= len(g[cell.Row]) {
			return false
		}
		if seen[cell] {
			return false
		}
		seen[cell] = true

		if i > 0 && !adjacent(p[i-1], cell) {
			return false
		}
	}
	return true
}

// Spell returns the letters of g along p.
func (p Path) Spell(g Grid) string {
	out := make([]rune, 0, len(p))
	for _, cell := range p {
		out = append(out, g[cell.Row][cell.Col])
	}
	return string(out)
}

// FindPaths returns every path of adjacent, non-repeating cells on grid that
// spells word, ignoring case. Paths are ordered by start cell, row-major.
func FindPaths(grid Grid, word string) ([]Path, error) {
	if err := Validate(grid); err != nil {
		return nil, err
	}

	target := []rune(word)
	for i, r := range target {
		target[i] = unicode.ToLower(r)
	}
	if len(target) == 0 {
		return nil, nil
	}

	pf := pathFinder{
		grid: Normalize(grid),
		used: makeBoolGrid(grid),
	}

	for r := range pf.grid {
		for c := range pf.grid[r] {
			pf.walkPossiblePath(target, r, c)
		}
	}

	return pf.allPaths, nil
}

// FindPath returns one path on grid that spells word, if there is any.
func FindPath(grid Grid, word string) (Path, bool) {
	paths, err := FindPaths(grid, word)
	if err != nil || len(paths) == 0 {
		return nil, false
	}
	return paths[0], true
}

func (pf *pathFinder) walkPossiblePath(word []rune, r, c int) {
	// If row is out of bounds, we can't place a char in this direction.
	if r < 0 || r >= len(pf.grid) {
		return
	}
	// If col is out of bounds, we can't place a char in this direction.
	if c < 0 || c >= len(pf.grid[r]) {
		return
	}

	if pf.used[r][c] || word[0] != pf.grid[r][c] {
		return
	}

	pf.curPath = append(pf.curPath, Cell{r, c})
	defer func() {
		pf.curPath = pf.curPath[:len(pf.curPath)-1]
	}()

	if len(word) == 1 {
		pf.allPaths = append(pf.allPaths, pf.curPath.clone())
		return
	}

	// Mark this grid cell as being unusable for the rest of this path walk.
	pf.used[r][c] = true
	defer func() {
		pf.used[r][c] = false
	}()

	restOfWord := word[1:]

	pf.walkPossiblePath(restOfWord, r-1, c)
	pf.walkPossiblePath(restOfWord, r+1, c)
	pf.walkPossiblePath(restOfWord, r, c-1)
	pf.walkPossiblePath(restOfWord, r, c+1)
	pf.walkPossiblePath(restOfWord, r-1, c-1)
	pf.walkPossiblePath(restOfWord, r-1, c+1)
	pf.walkPossiblePath(restOfWord, r+1, c-1)
	pf.walkPossiblePath(restOfWord, r+1, c+1)
}

func makeBoolGrid(g Grid) [][]bool {
	out := make([][]bool, 0, len(g))
	for _, r := range g {
		out = append(out, make([]bool, len(r)))
	}
	return out
}
