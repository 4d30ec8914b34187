package search_test

import (
	"reflect"
	"testing"

	"github.com/inenovsk1/gridpath/grid"
	"github.com/inenovsk1/gridpath/search"
)

// TestDFS_VisitOrder3x3 locks the depth-first trace on an open 3×3
// grid: the walk dives down column 0, sweeps along the bottom, and
// snakes back up before reaching the end.
func TestDFS_VisitOrder3x3(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	res, err := search.DFS(g)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}

	wantOrder := []grid.Coord{
		{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 1},
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}

	wantPath := []grid.Coord{
		{Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 2}, {Row: 0, Col: 1},
		{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 0},
	}
	if !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("Path = %v; want %v", res.Path, wantPath)
	}
}

// TestDFS_LatchStopsExploration: once the end is reached, no further
// OnStep fires and no additional cell is explored.
func TestDFS_LatchStopsExploration(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	steps := 0
	res, err := search.DFS(g, search.WithObserver(search.ObserverFuncs{Step: func() { steps++ }}))
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if res.Outcome != search.Found {
		t.Fatalf("Outcome = %v; want Found", res.Outcome)
	}
	// One OnStep per visited neighbor, including the success round.
	if steps != len(res.Order) {
		t.Errorf("OnStep count = %d; want %d", steps, len(res.Order))
	}
}

// TestDFS_DeepCorridor: a 1×64 corridor forces the maximum exploration
// depth; the explicit frame stack must carry it.
func TestDFS_DeepCorridor(t *testing.T) {
	const cols = 64
	g := newGrid(t, 1, cols, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: cols - 1})
	res, err := search.DFS(g)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if res.Outcome != search.Found {
		t.Fatalf("Outcome = %v; want Found", res.Outcome)
	}
	if len(res.Path) != cols-1 {
		t.Errorf("path length = %d; want %d", len(res.Path), cols-1)
	}
}

// TestDFS_RevisitedNeighborRetag: an already-visited non-start neighbor
// is retagged Visited on every re-encounter, and a dead-end cell that
// is never re-encountered keeps its Frontier tag. Both behaviors are
// part of the trace-compatible output.
func TestDFS_RevisitedNeighborRetag(t *testing.T) {
	// 3×3 grid with the end walled off:
	//
	//	S # E      S=(0,0), E=(0,2), obstacles (0,1) and (1,2).
	//	. . #
	//	. . .
	//
	// The walk dives (1,0)→(2,0)→(2,1)→(1,1); (1,1) dead-ends and is
	// popped still Frontier; (2,1) then explores (2,2), which also
	// dead-ends; unwinding back to (1,0), its remaining neighbor (1,1)
	// is re-encountered and retagged Visited. (2,2) is never
	// re-encountered and stays Frontier.
	g := newGrid(t, 3, 3,
		grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2},
		grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 1, Col: 2})
	res, err := search.DFS(g)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if res.Outcome != search.NotFound {
		t.Fatalf("Outcome = %v; want NotFound", res.Outcome)
	}
	if s := g.StateAt(grid.Coord{Row: 1, Col: 1}); s != grid.Visited {
		t.Errorf("re-encountered dead end = %v; want Visited (retag)", s)
	}
	if s := g.StateAt(grid.Coord{Row: 2, Col: 2}); s != grid.Frontier {
		t.Errorf("unrevisited dead end = %v; want Frontier", s)
	}
}

// TestDFS_PathLongerThanOptimal: DFS is depth-greedy; on an open grid
// its path is allowed to exceed, and here does exceed, the BFS optimum.
func TestDFS_PathLongerThanOptimal(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: 2, Col: 2}

	gd := newGrid(t, 3, 3, start, end)
	dres, err := search.DFS(gd)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	gb := newGrid(t, 3, 3, start, end)
	bres, err := search.BFS(gb)
	if err != nil {
		t.Fatalf("BFS error: %v", err)
	}
	if len(dres.Path) <= len(bres.Path) {
		t.Errorf("DFS path length = %d; want > BFS length %d on this layout",
			len(dres.Path), len(bres.Path))
	}
}
