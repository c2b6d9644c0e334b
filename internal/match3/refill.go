package match3

// RefillBoard replaces every empty cell with a new tile drawn uniformly
// from palette and flagged New. Unlike CreateBoard it does not avoid runs:
// refills forming new matches is what keeps a cascade going.
// Non-empty cells pass through unchanged.
func RefillBoard(b Board, rng Rand, palette Palette) (Board, error) {
	if err := palette.Validate(); err != nil {
		return b, err
	}
	for r := range BoardSize {
		for c := range BoardSize {
			if !b[r][c].IsEmpty() {
				continue
			}
			cell := newCell(palette[rng.Intn(len(palette))])
			cell.New = true
			b[r][c] = cell
		}
	}
	return b, nil
}

// ClearNewFlags returns a copy of b with every spawn flag reset.
func ClearNewFlags(b Board) Board {
	for r := range BoardSize {
		for c := range BoardSize {
			b[r][c].New = false
		}
	}
	return b
}
