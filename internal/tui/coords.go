package tui

import "github.com/inenovsk1/gridpath/grid"

// cellWidth is how many terminal columns one grid cell spans. Terminal
// glyphs are roughly twice as tall as wide, so two columns per cell
// keeps the board visually square.
const cellWidth = 2

// screenOrigin converts a grid coordinate to the top-left screen
// position of its block.
func screenOrigin(c grid.Coord) (x, y int) {
	return c.Col * cellWidth, c.Row
}

// cellAt converts a screen position to the grid coordinate whose block
// covers it. The result may be out of the grid's bounds; callers check
// with InBounds.
func cellAt(x, y int) grid.Coord {
	col := x / cellWidth
	if x < 0 {
		col = -1
	}
	return grid.Coord{Row: y, Col: col}
}
