package search_test

import (
	"fmt"

	"github.com/inenovsk1/gridpath/grid"
	"github.com/inenovsk1/gridpath/search"
)

// ExampleBFS walks an open 3×3 grid corner to corner and prints the
// shortest path, reported end-first with the start excluded.
func ExampleBFS() {
	g, _ := grid.New(3, 3)
	_ = g.MarkStart(grid.Coord{Row: 0, Col: 0})
	_ = g.MarkEnd(grid.Coord{Row: 2, Col: 2})
	g.RecomputeAdjacency()

	res, err := search.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Path)
	// Output:
	// Found [(2,2) (2,1) (2,0) (1,0)]
}

// ExampleAStar blocks column 1 except for its bottom cell, forcing the
// search through the single doorway at (2,1).
func ExampleAStar() {
	g, _ := grid.New(3, 3)
	_ = g.MarkStart(grid.Coord{Row: 0, Col: 0})
	_ = g.MarkEnd(grid.Coord{Row: 0, Col: 2})
	_ = g.MarkObstacle(grid.Coord{Row: 0, Col: 1})
	_ = g.MarkObstacle(grid.Coord{Row: 1, Col: 1})
	g.RecomputeAdjacency()

	res, err := search.AStar(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Path)
	// Output:
	// Found [(0,2) (1,2) (2,2) (2,1) (2,0) (1,0)]
}

// ExampleObserverFuncs counts rounds while DFS explores, showing the
// one-OnStep-per-round yield point a renderer would redraw at.
func ExampleObserverFuncs() {
	g, _ := grid.New(2, 2)
	_ = g.MarkStart(grid.Coord{Row: 0, Col: 0})
	_ = g.MarkEnd(grid.Coord{Row: 1, Col: 1})
	g.RecomputeAdjacency()

	rounds := 0
	res, _ := search.DFS(g, search.WithObserver(search.ObserverFuncs{
		Step:    func() { rounds++ },
		Success: func(path []grid.Coord) { fmt.Println("path:", path) },
	}))
	fmt.Println("rounds:", rounds, "outcome:", res.Outcome)
	// Output:
	// path: [(1,1) (1,0)]
	// rounds: 2 outcome: Found
}
