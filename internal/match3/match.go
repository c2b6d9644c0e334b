package match3

// FindMatches returns every position that belongs to a horizontal or
// vertical run of three or more identical non-empty colors. A cell in both
// a horizontal and a vertical run appears once. Positions come back in
// row-major order.
func FindMatches(b Board) []Position {
	var marked [BoardSize][BoardSize]bool

	// Horizontal runs
	for r := range BoardSize {
		for c := 0; c < BoardSize-2; c++ {
			color := b[r][c].Color
			if color.IsEmpty() {
				continue
			}
			if b[r][c+1].Color != color || b[r][c+2].Color != color {
				continue
			}
			marked[r][c], marked[r][c+1], marked[r][c+2] = true, true, true
			for k := c + 3; k < BoardSize && b[r][k].Color == color; k++ {
				marked[r][k] = true
			}
		}
	}

	// Vertical runs
	for c := range BoardSize {
		for r := 0; r < BoardSize-2; r++ {
			color := b[r][c].Color
			if color.IsEmpty() {
				continue
			}
			if b[r+1][c].Color != color || b[r+2][c].Color != color {
				continue
			}
			marked[r][c], marked[r+1][c], marked[r+2][c] = true, true, true
			for k := r + 3; k < BoardSize && b[k][c].Color == color; k++ {
				marked[k][c] = true
			}
		}
	}

	var matches []Position
	for r := range BoardSize {
		for c := range BoardSize {
			if marked[r][c] {
				matches = append(matches, Pos(r, c))
			}
		}
	}
	return matches
}

// HasMatches reports whether the board holds at least one run.
func HasMatches(b Board) bool {
	return len(FindMatches(b)) > 0
}

// MarkMatches returns a copy of b with the given cells flagged as matched.
func MarkMatches(b Board, positions []Position) (Board, error) {
	if err := checkBounds(positions...); err != nil {
		return b, err
	}
	for _, p := range positions {
		b[p.Row][p.Col].Matched = true
	}
	return b, nil
}

// ClearMatched returns a copy of b with every matched cell emptied.
func ClearMatched(b Board) Board {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Matched {
				b[r][c].Color = Empty
				b[r][c].Matched = false
			}
		}
	}
	return b
}
