package match3

// AreAdjacent reports whether p1 and p2 are orthogonal neighbors
// (Manhattan distance 1).
func AreAdjacent(p1, p2 Position) bool {
	dr := abs(p1.Row - p2.Row)
	dc := abs(p1.Col - p2.Col)
	return dr+dc == 1
}

// Swap returns a copy of b with the cells at p1 and p2 exchanged.
func Swap(b Board, p1, p2 Position) (Board, error) {
	if err := checkBounds(p1, p2); err != nil {
		return b, err
	}
	b[p1.Row][p1.Col], b[p2.Row][p2.Col] = b[p2.Row][p2.Col], b[p1.Row][p1.Col]
	return b, nil
}

// IsValidSwap reports whether exchanging p1 and p2 would produce at least
// one match. It does not check adjacency and never modifies b.
func IsValidSwap(b Board, p1, p2 Position) (bool, error) {
	swapped, err := Swap(b, p1, p2)
	if err != nil {
		return false, err
	}
	return HasMatches(swapped), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
