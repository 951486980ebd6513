package universe

//neighbours is the Moore neighbourhood, the 3x3 block without the center
var neighbours = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//Step calculates the next generation walking only the live cells
//the board is surrounded by dead cells, positions outside d are never considered
//the cost is proportional to the count of live cells, not to the board area
func Step(live LiveSet, d Dimensions) LiveSet {
	counts := make(map[Cell]int, len(live)*4)
	for c := range live {
		for _, n := range neighbours {
			p := Cell{Row: c.Row + n.Row, Col: c.Col + n.Col}
			//skip coordinates outside the board
			if !d.Contains(p) {
				continue
			}
			counts[p]++
		}
	}

	next := make(LiveSet, len(live))
	for p, n := range counts {
		if nextState(n, live.Has(p)) {
			next[p] = struct{}{}
		}
	}
	return next
}

//StepDense calculates the next generation walking the entire board
//it allocates the full size grid on each call, live cells outside d are ignored
func StepDense(live LiveSet, d Dimensions) LiveSet {
	next := LiveSet{}
	if d.Area() == 0 {
		return next
	}
	a := createArea(d)
	for c := range live {
		if d.Contains(c) {
			a[c.Row][c.Col] = true
		}
	}
	for y := range a {
		for x := range a[y] {
			if nextState(cellNeighbours(a, d, y, x), a[y][x]) {
				next[Cell{Row: y, Col: x}] = struct{}{}
			}
		}
	}
	return next
}

//nextState applies the Conway's rule: birth on 3, survival on 2 or 3
func nextState(liveNeighbours int, alive bool) bool {
	return liveNeighbours == 3 || (liveNeighbours == 2 && alive)
}

//cellNeighbours calculates the live neighbours around row y, column x
func cellNeighbours(a [][]bool, d Dimensions, y int, x int) (count int) {
	for _, n := range neighbours {
		p := Cell{Row: y + n.Row, Col: x + n.Col}
		if d.Contains(p) && a[p.Row][p.Col] {
			count++
		}
	}
	return
}

//createArea allocates the rows x cols grid backed by one slice
func createArea(d Dimensions) [][]bool {
	area := make([][]bool, d.Rows)
	b := make([]bool, d.Rows*d.Cols)
	for i := range area {
		start := d.Cols * i
		area[i] = b[start : start+d.Cols : start+d.Cols]
	}
	return area
}
