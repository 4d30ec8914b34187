// Package gridpath is an interactive pathfinding visualizer: draw a
// grid, place a start, an end and obstacles, then watch BFS, DFS or A*
// explore it round by round and light up the path it found.
//
// 🚀 What is gridpath?
//
//	A small headless core plus two ready-made hosts:
//		• grid/: the board, with cells, traversal-state tags and obstacle-aware adjacency
//		• search/: the engines, BFS, DFS and A* behind one step-observer contract
//		• internal/: a terminal UI (tcell) and a browser streamer (websocket)
//
// ✨ Why gridpath?
//
//   - Headless engines – no rendering knowledge; they yield through a
//     two-method Observer, so they unit-test in isolation
//   - Deterministic – fixed neighbor order and stable tie-breaking make
//     every run reproducible, trace for trace
//   - Cooperative – cancellation is a per-round context poll reported
//     as a Cancelled outcome, never a process exit
//
// Quick ASCII example on a 3×3 board (start S, end E, wall #):
//
//	S # E        BFS ripples outward from S in rounds;
//	. . #        A* leans toward E by Manhattan distance;
//	. . .        DFS dives deep and backtracks.
//
// Try it:
//
//	go run ./cmd/gridpath            # terminal UI
//	go run ./cmd/gridpath -web       # browser canvas on localhost:8080
package gridpath
