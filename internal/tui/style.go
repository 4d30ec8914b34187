package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/inenovsk1/gridpath/grid"
)

// The palette mirrors the classic visualizer colors: white board, black
// walls, light blue start, light purple end, green frontier, red
// visited, pink path.
var (
	colorFree     = tcell.NewRGBColor(255, 255, 255)
	colorObstacle = tcell.NewRGBColor(0, 0, 0)
	colorStart    = tcell.NewRGBColor(102, 204, 255)
	colorEnd      = tcell.NewRGBColor(102, 102, 255)
	colorFrontier = tcell.NewRGBColor(0, 255, 0)
	colorVisited  = tcell.NewRGBColor(255, 0, 0)
	colorPath     = tcell.NewRGBColor(255, 192, 203)
)

// styleFor maps a cell tag to the background style its block is drawn with.
func styleFor(s grid.State) tcell.Style {
	bg := colorFree
	switch s {
	case grid.Obstacle:
		bg = colorObstacle
	case grid.Start:
		bg = colorStart
	case grid.End:
		bg = colorEnd
	case grid.Frontier:
		bg = colorFrontier
	case grid.Visited:
		bg = colorVisited
	case grid.Path:
		bg = colorPath
	}
	return tcell.StyleDefault.Background(bg)
}
