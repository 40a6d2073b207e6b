package boggle

// cellSet is the set of cells consumed by one search path, one bit per cell.
// Extending a set copies it, so paths branching from the same parent never
// see each other's cells.
type cellSet []uint64

func newCellSet(numCells int) cellSet {
	return make(cellSet, (numCells+63)/64)
}

func (s cellSet) has(i int) bool {
	return s[i/64]&(1<<(i%64)) != 0
}

// with returns a copy of s that also contains i.
func (s cellSet) with(i int) cellSet {
	out := make(cellSet, len(s))
	copy(out, s)
	out[i/64] |= 1 << (i % 64)
	return out
}
