package match3

// ApplyGravity drops every tile to the bottom of its column, keeping the
// tiles' top-to-bottom order. Cells left above them become empty with
// fresh identities, since they no longer stand for any existing tile.
func ApplyGravity(b Board) Board {
	var out Board
	for c := range BoardSize {
		write := BoardSize - 1
		for r := BoardSize - 1; r >= 0; r-- {
			if b[r][c].IsEmpty() {
				continue
			}
			out[write][c] = b[r][c]
			write--
		}
		for ; write >= 0; write-- {
			out[write][c] = emptyCell()
		}
	}
	return out
}
