// Package patterns holds the compiled-in seed templates.
package patterns

import "lifeterm/src/universe"

//LiveChar marks the live cell in the ASCII-art patterns
const LiveChar = 'O'

//Parse converts the ASCII-art lines to cells, row is the line number
//every char other than live is dead
func Parse(lines []string, live rune) []universe.Cell {
	var cells []universe.Cell
	for r, l := range lines {
		c := 0
		for _, ch := range l {
			if ch == live {
				cells = append(cells, universe.Cell{Row: r, Col: c})
			}
			c++
		}
	}
	return cells
}

//cells builds the cell list from [row, col] pairs
func cells(rc ...[2]int) []universe.Cell {
	out := make([]universe.Cell, len(rc))
	for i, p := range rc {
		out[i] = universe.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

//Catalog returns the seed templates in the order they are cycled
func Catalog() []universe.Template {
	return []universe.Template{
		{
			Name:  "Gosper Glider Gun",
			Descr: "period 30 gun, emits gliders until they hit the board edge",
			Cells: cells(
				[2]int{0, 4}, [2]int{0, 5}, [2]int{1, 4}, [2]int{1, 5},
				[2]int{10, 4}, [2]int{10, 5}, [2]int{10, 6},
				[2]int{11, 3}, [2]int{11, 7},
				[2]int{12, 2}, [2]int{12, 8},
				[2]int{13, 2}, [2]int{13, 8},
				[2]int{14, 5},
				[2]int{15, 3}, [2]int{15, 7},
				[2]int{16, 4}, [2]int{16, 5}, [2]int{16, 6},
				[2]int{17, 5},
				[2]int{20, 2}, [2]int{20, 3}, [2]int{20, 4},
				[2]int{21, 2}, [2]int{21, 3}, [2]int{21, 4},
				[2]int{22, 1}, [2]int{22, 5},
				[2]int{24, 0}, [2]int{24, 1}, [2]int{24, 5}, [2]int{24, 6},
				[2]int{34, 2}, [2]int{34, 3}, [2]int{35, 2}, [2]int{35, 3},
			),
		},
		{
			Name:  "Pulsar",
			Descr: "period 3 oscillator",
			Cells: Parse([]string{
				"..OOO...OOO..",
				".............",
				"O....O.O....O",
				"O....O.O....O",
				"O....O.O....O",
				"..OOO...OOO..",
				".............",
				"..OOO...OOO..",
				"O....O.O....O",
				"O....O.O....O",
				"O....O.O....O",
				".............",
				"..OOO...OOO..",
			}, LiveChar),
		},
		{
			Name:  "Acorn",
			Descr: "methuselah, stabilizes after thousands of generations on an open board",
			Cells: cells(
				[2]int{0, 1}, [2]int{1, 3}, [2]int{2, 0}, [2]int{2, 1},
				[2]int{2, 4}, [2]int{2, 5}, [2]int{2, 6},
			),
		},
		{
			Name:  "Lightweight Spaceship",
			Descr: "c/2 orthogonal spaceship",
			Cells: Parse([]string{
				".O..O",
				"O....",
				"O...O",
				"OOOO.",
			}, LiveChar),
		},
	}
}

//Names returns the template names in catalog order
func Names(templates []universe.Template) []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}
