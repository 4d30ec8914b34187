package search

import "github.com/inenovsk1/gridpath/grid"

// reconstructPath walks parent links backward from end and returns the
// path in backward order: end first, then each intermediate cell, with
// the start-adjacent cell last. The start cell, having no parent entry,
// is excluded. Every intermediate cell is retagged Path; the end cell
// keeps its own tag.
func reconstructPath(g *grid.Grid, parent map[grid.Coord]grid.Coord, end grid.Coord) []grid.Coord {
	path := []grid.Coord{end}
	cur, ok := parent[end]
	for ok {
		var prev grid.Coord
		if prev, ok = parent[cur]; !ok {
			break // cur is the start cell
		}
		g.At(cur).State = grid.Path
		path = append(path, cur)
		cur = prev
	}

	return path
}
