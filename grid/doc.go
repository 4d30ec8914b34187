// Package grid models the rectangular board a pathfinding run explores:
// fixed-size construction, per-cell traversal-state tags, and on-demand
// adjacency derived from the current obstacle layout.
//
// What:
//
//   - Grid wraps a rows×cols board of Cells addressed by Coord (row, col).
//   - Cells carry exactly one State tag: Free, Obstacle, Start, End,
//     Frontier, Visited, or Path.
//   - MarkStart/MarkEnd enforce at most one start and one end per grid.
//   - RecomputeAdjacency snapshots each cell's passable neighbors in the
//     fixed (down, up, right, left) order.
//
// Determinism:
//
//	Neighbors always returns cells in the same (down, up, right, left)
//	order, so search tie-breaking and traversal traces are reproducible.
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions are not positive.
//   - ErrOutOfBounds: coordinate outside the grid rectangle.
//   - ErrOccupied: obstacle requested on the start or end cell.
package grid
