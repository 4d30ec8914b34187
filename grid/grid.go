// Package grid provides the rectangular cell model the search engines
// operate on. It supports:
//
//   - Fixed-size construction with every cell Free
//   - Start/End/Obstacle marking with invariant enforcement
//   - On-demand adjacency recomputation honoring current obstacles
//   - Deterministic neighbor ordering (down, up, right, left)
//
// Adjacency is snapshotted by RecomputeAdjacency and does not track
// obstacle changes automatically; callers recompute before each search run.
package grid

import "fmt"

// neighborOffsets is the fixed expansion order: down, up, right, left.
// The order is load-bearing: it decides tie-breaking in BFS and DFS,
// so traversal traces stay reproducible.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular collection of cells addressed by (row, col).
// Row and column counts are fixed at construction.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
	adj        [][]Coord

	start, end       Coord
	hasStart, hasEnd bool
}

// New allocates a rows×cols grid with every cell Free.
// Returns ErrEmptyGrid if either dimension is not positive.
// Adjacency is computed once for the obstacle-free grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = Cell{Coord: Coord{Row: r, Col: c}}
		}
	}
	g.RecomputeAdjacency()

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid rectangle.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index maps a coordinate to its row-major position.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// At returns the cell at c, or nil if c is out of bounds.
// The returned pointer aliases the grid's storage; tag mutations
// through it are visible to subsequent reads.
func (g *Grid) At(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.index(c)]
}

// StateAt returns the tag at c. Out-of-bounds coordinates read as Obstacle,
// which keeps them impassable for any caller that skips bounds checks.
func (g *Grid) StateAt(c Coord) State {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.cells[g.index(c)].State
}

// IsObstacle reports whether the cell at c carries the Obstacle tag.
func (g *Grid) IsObstacle(c Coord) bool {
	return g.StateAt(c) == Obstacle
}

// Start returns the designated start coordinate, if one is set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// End returns the designated end coordinate, if one is set.
func (g *Grid) End() (Coord, bool) { return g.end, g.hasEnd }

// MarkStart designates c as the search origin. Any previously marked
// start cell is demoted to Free, preserving the at-most-one invariant.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) MarkStart(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, c)
	}
	if g.hasStart && g.start != c {
		g.cells[g.index(g.start)].State = Free
	}
	g.cells[g.index(c)].State = Start
	g.start, g.hasStart = c, true

	return nil
}

// MarkEnd designates c as the search target. Any previously marked
// end cell is demoted to Free. Returns ErrOutOfBounds if c is outside
// the grid. Marking the start cell as end is allowed here; the search
// engines reject identical start and end before traversing.
func (g *Grid) MarkEnd(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: end %s", ErrOutOfBounds, c)
	}
	if g.hasEnd && g.end != c {
		g.cells[g.index(g.end)].State = Free
	}
	g.cells[g.index(c)].State = End
	g.end, g.hasEnd = c, true

	return nil
}

// MarkObstacle tags c as impassable. Returns ErrOutOfBounds for
// coordinates outside the grid and ErrOccupied when c currently holds
// the start or end marker. Adjacency is not updated until the next
// RecomputeAdjacency call.
func (g *Grid) MarkObstacle(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: obstacle %s", ErrOutOfBounds, c)
	}
	if (g.hasStart && g.start == c) || (g.hasEnd && g.end == c) {
		return fmt.Errorf("%w: %s", ErrOccupied, c)
	}
	g.cells[g.index(c)].State = Obstacle

	return nil
}

// Reset returns the cell at c to Free. If c held the start or end
// marker, the designation is forgotten as well.
func (g *Grid) Reset(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: reset %s", ErrOutOfBounds, c)
	}
	if g.hasStart && g.start == c {
		g.hasStart = false
	}
	if g.hasEnd && g.end == c {
		g.hasEnd = false
	}
	g.cells[g.index(c)].State = Free

	return nil
}

// Clear returns every cell to Free and forgets the start and end
// designations. Adjacency is recomputed for the now obstacle-free grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Free
	}
	g.hasStart, g.hasEnd = false, false
	g.RecomputeAdjacency()
}

// ClearSearch resets Frontier, Visited and Path tags to Free while
// keeping start, end and obstacle markings, readying the grid for
// another run over the same layout.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		switch g.cells[i].State {
		case Frontier, Visited, Path:
			g.cells[i].State = Free
		}
	}
}

// RecomputeAdjacency rebuilds every cell's neighbor list from the
// current Obstacle tags. It must run before a search whenever obstacles
// changed since the last recomputation. Calling it twice without
// intervening obstacle changes yields identical adjacency (idempotent).
//
// An Obstacle cell gets an empty neighbor list and never appears in
// another cell's list, so adjacency stays symmetric among non-obstacle
// cells. Complexity: O(rows×cols).
func (g *Grid) RecomputeAdjacency() {
	adj := make([][]Coord, len(g.cells))
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.State == Obstacle {
			continue
		}
		nbrs := make([]Coord, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			n := Coord{Row: cell.Coord.Row + d[0], Col: cell.Coord.Col + d[1]}
			if !g.InBounds(n) || g.cells[g.index(n)].State == Obstacle {
				continue
			}
			nbrs = append(nbrs, n)
		}
		adj[i] = nbrs
	}
	g.adj = adj
}

// Neighbors returns the in-bounds, non-obstacle cells adjacent to c in
// the fixed (down, up, right, left) order, as of the last
// RecomputeAdjacency call. The returned slice is shared; callers must
// not modify it. Out-of-bounds coordinates yield nil.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	return g.adj[g.index(c)]
}
