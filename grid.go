package boggle

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Grid is a rectangular board holding one rune per cell, indexed [row][col].
type Grid [][]rune

// Cell is a position on a Grid.
type Cell struct {
	Row, Col int
}

// Path is a sequence of cells, each adjacent to the one before it.
type Path []Cell

// ErrMalformedGrid is matched by every *MalformedGridError.
var ErrMalformedGrid = errors.New("malformed grid")

// MalformedGridError reports a grid that is empty or not rectangular.
type MalformedGridError struct {
	Row    int // Offending row, -1 if the grid has no rows.
	Len    int // Length of the offending row.
	Want   int // Expected row length.
	Reason string
}

func (e *MalformedGridError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed grid: %s", e.Reason)
	}
	return fmt.Sprintf("malformed grid: row %d: %s (got %d cells, want %d)", e.Row, e.Reason, e.Len, e.Want)
}

func (e *MalformedGridError) Unwrap() error {
	return ErrMalformedGrid
}

// Validate returns a *MalformedGridError unless g has at least one row and
// every row has the same, non-zero length.
func Validate(g Grid) error {
	if len(g) == 0 {
		return &MalformedGridError{Row: -1, Reason: "no rows"}
	}

	want := len(g[0])
	for r, row := range g {
		if len(row) == 0 {
			return &MalformedGridError{Row: r, Len: 0, Want: want, Reason: "empty row"}
		}
		if len(row) != want {
			return &MalformedGridError{Row: r, Len: len(row), Want: want, Reason: "row length differs from row 0"}
		}
	}

	return nil
}

// Rows returns the number of rows in g.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in g. g must be valid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of g that can be modified without touching g.
func (g Grid) Clone() Grid {
	out := make(Grid, 0, len(g))
	for _, row := range g {
		out = append(out, append([]rune(nil), row...))
	}
	return out
}

// Normalize returns a lowercased copy of g.
func Normalize(g Grid) Grid {
	out := g.Clone()
	for _, row := range out {
		for c, r := range row {
			row[c] = unicode.ToLower(r)
		}
	}
	return out
}

// String renders g one row per line with cells separated by spaces.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g) * (2*g.Cols() + 1))
	for _, row := range g {
		for c, r := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// neighbors returns the Moore neighborhood of (r, c) clipped to a rows x cols grid.
func neighbors(rows, cols, r, c int) []Cell {
	out := make([]Cell, 0, 8)

	for x := max(0, r-1); x < min(rows, r+2); x++ {
		for y := max(0, c-1); y < min(cols, c+2); y++ {
			if x != r || y != c {
				out = append(out, Cell{x, y})
			}
		}
	}

	return out
}

// adjacent reports whether a and b are distinct cells that touch, diagonals included.
func adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return a != b && dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}
