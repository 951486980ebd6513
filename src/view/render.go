package view

import (
	"bytes"
	"fmt"

	"github.com/logrusorgru/aurora"

	"lifeterm/src/universe"
)

//board glyphs
const (
	liveFiller = 'O'
	deadFiller = ' '
)

//boardDimensions returns the board size for the maxX x maxY terminal
func boardDimensions(maxX int, maxY int) universe.Dimensions {
	d := universe.Dimensions{Rows: maxY - statusHeight, Cols: maxX}
	if d.Rows < 0 {
		d.Rows = 0
	}
	if d.Cols < 0 {
		d.Cols = 0
	}
	return d
}

//renderBoard writes d.Rows lines of d.Cols glyphs
//live cells outside the board are not drawn
func renderBoard(live universe.LiveSet, d universe.Dimensions) string {
	if d.Area() == 0 {
		return ""
	}
	grid := make([][]byte, d.Rows)
	for i := range grid {
		grid[i] = bytes.Repeat([]byte{deadFiller}, d.Cols)
	}
	for c := range live {
		if d.Contains(c) {
			grid[c.Row][c.Col] = liveFiller
		}
	}
	return string(bytes.Join(grid, []byte{'\n'}))
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}
