package boggle

import (
	"slices"

	"github.com/vyevs/boggle/trie"
)

// Solve returns every word in index that can be spelled by a path of
// adjacent, non-repeating cells on grid. Matching ignores the case of the
// grid; index is expected to hold lowercase words.
//
// grid is not modified. A grid that is empty or not rectangular results in
// a *MalformedGridError.
func Solve(grid Grid, index *trie.Trie) (map[string]struct{}, error) {
	if err := Validate(grid); err != nil {
		return nil, err
	}

	s := solver{
		grid:  Normalize(grid),
		index: index,

		found: make(map[string]struct{}, 64),
	}

	for i := range s.grid {
		for j := range s.grid[i] {
			s.wordsFromStart(i, j)
		}
	}

	return s.found, nil
}

type solver struct {
	grid  Grid // Lowercased working copy of the caller's grid.
	index *trie.Trie

	// Words found from every start cell so far.
	found map[string]struct{}
}

// frame is one partial path waiting to be extended.
type frame struct {
	row, col int
	node     *trie.Node // Node spelled by the path so far.
	visited  cellSet    // Cells used by this path only.
}

func (s *solver) cellIdx(r, c int) int {
	return r*s.grid.Cols() + c
}

// wordsFromStart adds to s.found every word whose path begins at (i, j).
func (s *solver) wordsFromStart(i, j int) {
	start, ok := s.index.Root().Child(s.grid[i][j])
	if !ok {
		// No word starts with this letter.
		return
	}
	s.record(start)

	rows, cols := s.grid.Rows(), s.grid.Cols()

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{
		row:     i,
		col:     j,
		node:    start,
		visited: newCellSet(rows * cols).with(s.cellIdx(i, j)),
	})

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.node.NumChildren() == 0 {
			continue
		}

		for _, n := range neighbors(rows, cols, cur.row, cur.col) {
			idx := s.cellIdx(n.Row, n.Col)
			if cur.visited.has(idx) {
				continue
			}

			child, ok := cur.node.Child(s.grid[n.Row][n.Col])
			if !ok {
				// Not a prefix of any word, abandon this direction.
				continue
			}
			s.record(child)

			stack = append(stack, frame{
				row:     n.Row,
				col:     n.Col,
				node:    child,
				visited: cur.visited.with(idx),
			})
		}
	}
}

func (s *solver) record(n *trie.Node) {
	if w, ok := n.Word(); ok {
		s.found[w] = struct{}{}
	}
}

// SortedWords returns the words of a result set in increasing order.
func SortedWords(words map[string]struct{}) []string {
	out := make([]string, 0, len(words))
	for w := range words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
