/*
Package boggle finds every dictionary word that can be traced on a letter grid.

A word is found when its letters can be read along a path of cells where each
cell touches the one before it horizontally, vertically or diagonally, and no
cell is used twice on the same path.

Build a trie.Trie from the dictionary first, then call Solve for the grid:

	index := trie.New(dict...)
	words, err := boggle.Solve(grid, index)

The search starts a depth-first walk from every cell and abandons a path as
soon as its letters are not a prefix of any word in the index. Each path
carries its own set of used cells, so the same letter can take part in
different paths.

ReadDictionary and ReadGrid read the plain text formats used by the boggle
command, and FindPath and RenderPath show where on the grid a word lies.
*/
package boggle
