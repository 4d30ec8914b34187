// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/inenovsk1/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid was requested with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrOccupied indicates an obstacle was requested on the start or end cell.
	ErrOccupied = errors.New("grid: cell holds the start or end marker")
)

// State is the traversal-state tag carried by every cell.
// Exactly one tag is active at a time.
type State uint8

const (
	// Free marks an untouched, traversable cell.
	Free State = iota
	// Obstacle marks an impassable cell; it has no adjacency.
	Obstacle
	// Start marks the unique search origin.
	Start
	// End marks the unique search target.
	End
	// Frontier marks a cell discovered but not yet fully expanded.
	Frontier
	// Visited marks a cell whose neighbors have all been examined.
	Visited
	// Path marks a cell on the reconstructed start→end path.
	Path
)

// String returns a human-readable tag name, for diagnostics and tests.
func (s State) String() string {
	switch s {
	case Free:
		return "Free"
	case Obstacle:
		return "Obstacle"
	case Start:
		return "Start"
	case End:
		return "End"
	case Frontier:
		return "Frontier"
	case Visited:
		return "Visited"
	case Path:
		return "Path"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Coord is a cell's stable identity within a grid.
// Coords are comparable and safe to use as map keys regardless of
// how the cell's State changes mid-search.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single grid unit: an immutable Coord identity plus a
// mutable State tag. Identity and state are deliberately separate
// fields so coordinate-keyed sets and maps stay valid while tags
// change during a search.
type Cell struct {
	Coord Coord
	State State
}
