package universe

import "sort"

//Cell is the board position, row first
type Cell struct {
	Row int
	Col int
}

//Dimensions represents the board size
type Dimensions struct {
	Rows int
	Cols int
}

//Contains reports whether c lies within [0, Rows) x [0, Cols)
func (d Dimensions) Contains(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < d.Rows && c.Col < d.Cols
}

//Area returns the number of cells on the board
func (d Dimensions) Area() int {
	if d.Rows <= 0 || d.Cols <= 0 {
		return 0
	}
	return d.Rows * d.Cols
}

//LiveSet is the set of live cells of one generation
type LiveSet map[Cell]struct{}

//NewLiveSet creates the set from cells, duplicates collapse
func NewLiveSet(cells ...Cell) LiveSet {
	s := make(LiveSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s LiveSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s LiveSet) Len() int {
	return len(s)
}

//Cells returns the cells in row-major order
func (s LiveSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

//Equal reports whether both sets hold exactly the same cells
func (s LiveSet) Equal(o LiveSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}
