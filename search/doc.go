// Package search implements three interchangeable grid traversal
// engines (BFS, DFS, A*) sharing one contract built for frame-by-frame
// visualization.
//
// What
//
//   - Each engine reads the start and end cells from a *grid.Grid,
//     explores it while mutating cell tags (Frontier, Visited, Path),
//     and returns a Result with a tri-state Outcome.
//   - An Observer receives OnStep once per round (the single yield
//     point at which a host may redraw changed cells) and OnSuccess
//     exactly once, with the reconstructed path, when the end is
//     reached.
//   - Cancellation is cooperative: the run's context is polled once
//     per round, and an observed cancellation yields Outcome Cancelled
//     with cell tags left as of the last completed round. The engine
//     never terminates the process.
//
// Determinism
//
//	Grid neighbors arrive in the fixed (down, up, right, left) order,
//	which fixes BFS and DFS tie-breaking; A* additionally breaks
//	fScore ties by open-set insertion order, oldest first. Running any
//	engine twice over the same grid therefore produces identical
//	expansion orders and OnStep sequences.
//
// Outcomes vs. errors
//
//	Exhausting the frontier without reaching the end is NotFound, not
//	an error. Errors are reserved for invalid input (nil grid, unset
//	start or end, identical start and end), detected before any
//	traversal or tag mutation, all wrapping ErrInvalidInput.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) time, O(N) memory.
//   - A*:       O(N log N) time, O(N) memory.
package search
