package universe

//Normalize shifts the cells so the minimum row and the minimum column are both zero
//returns a new slice, the input is never modified
func Normalize(cells []Cell) []Cell {
	if len(cells) == 0 {
		return []Cell{}
	}
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	return out
}

//Seed places the pattern at the center of the board
//cells which don't fit the board are discarded
func Seed(cells []Cell, d Dimensions) LiveSet {
	live := LiveSet{}
	normalized := Normalize(cells)
	if len(normalized) == 0 || d.Area() == 0 {
		return live
	}

	maxRow, maxCol := 0, 0
	for _, c := range normalized {
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	offRow := centerOffset(d.Rows, maxRow+1)
	offCol := centerOffset(d.Cols, maxCol+1)

	for _, c := range normalized {
		p := Cell{Row: c.Row + offRow, Col: c.Col + offCol}
		if d.Contains(p) {
			live[p] = struct{}{}
		}
	}
	return live
}

//centerOffset returns the floored offset to center span items within size, never negative
func centerOffset(size int, span int) int {
	if size <= span {
		return 0
	}
	return (size - span) / 2
}
