package search_test

import (
	"reflect"
	"testing"

	"github.com/inenovsk1/gridpath/grid"
	"github.com/inenovsk1/gridpath/search"
)

// TestManhattan covers the heuristic on a few coordinate pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Coord
		want int
	}{
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 0}, 0},
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4}, 8},
		{grid.Coord{Row: 2, Col: 7}, grid.Coord{Row: 5, Col: 1}, 9},
		{grid.Coord{Row: 5, Col: 1}, grid.Coord{Row: 2, Col: 7}, 9}, // symmetric
	}
	for _, tc := range cases {
		if got := search.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestAStar_OptimalLength: A* paths match the BFS optimum on unit-cost
// grids, with and without obstacles.
func TestAStar_OptimalLength(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: 4, Col: 4}

	cases := []struct {
		name      string
		obstacles []grid.Coord
	}{
		{"Open", nil},
		{"WallWithGap", column(2, 0, 3)},
		{"Scattered", []grid.Coord{{Row: 1, Col: 1}, {Row: 3, Col: 3}, {Row: 2, Col: 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ga := newGrid(t, 5, 5, start, end, tc.obstacles...)
			ares, err := search.AStar(ga)
			if err != nil {
				t.Fatalf("AStar error: %v", err)
			}
			gb := newGrid(t, 5, 5, start, end, tc.obstacles...)
			bres, err := search.BFS(gb)
			if err != nil {
				t.Fatalf("BFS error: %v", err)
			}
			if ares.Outcome != search.Found || bres.Outcome != search.Found {
				t.Fatalf("outcomes = %v/%v; want Found/Found", ares.Outcome, bres.Outcome)
			}
			if len(ares.Path) != len(bres.Path) {
				t.Errorf("A* path length = %d; BFS optimum = %d", len(ares.Path), len(bres.Path))
			}
		})
	}
}

// TestAStar_Deterministic: two runs over identical grids produce
// identical expansion orders and OnStep sequences; the insertion-order
// tie-break leaves nothing to map iteration chance.
func TestAStar_Deterministic(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: 7, Col: 7}
	obstacles := []grid.Coord{
		{Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
		{Row: 5, Col: 5}, {Row: 5, Col: 6}, {Row: 6, Col: 2},
	}

	run := func() ([]grid.Coord, int) {
		g := newGrid(t, 8, 8, start, end, obstacles...)
		steps := 0
		res, err := search.AStar(g, search.WithObserver(search.ObserverFuncs{Step: func() { steps++ }}))
		if err != nil {
			t.Fatalf("AStar error: %v", err)
		}
		if res.Outcome != search.Found {
			t.Fatalf("Outcome = %v; want Found", res.Outcome)
		}
		return res.Order, steps
	}

	order1, steps1 := run()
	order2, steps2 := run()
	if !reflect.DeepEqual(order1, order2) {
		t.Errorf("expansion orders differ:\n  first  = %v\n  second = %v", order1, order2)
	}
	if steps1 != steps2 {
		t.Errorf("OnStep counts differ: %d vs %d", steps1, steps2)
	}
}

// TestAStar_BeatsBFSOnExpansions: with start and end on the same row,
// off-row cells carry strictly larger fScores, so A* marches straight
// across while BFS floods half the grid.
func TestAStar_BeatsBFSOnExpansions(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: 0, Col: 9}

	ga := newGrid(t, 10, 10, start, end)
	ares, err := search.AStar(ga)
	if err != nil {
		t.Fatalf("AStar error: %v", err)
	}
	gb := newGrid(t, 10, 10, start, end)
	bres, err := search.BFS(gb)
	if err != nil {
		t.Fatalf("BFS error: %v", err)
	}
	if len(ares.Order) >= len(bres.Order) {
		t.Errorf("A* expanded %d cells; BFS expanded %d; heuristic gave no guidance",
			len(ares.Order), len(bres.Order))
	}
}

// TestAStar_StepPerRound: OnStep fires once per pop-and-relax round.
func TestAStar_StepPerRound(t *testing.T) {
	g := newGrid(t, 6, 6, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 5, Col: 5})
	steps := 0
	res, err := search.AStar(g, search.WithObserver(search.ObserverFuncs{Step: func() { steps++ }}))
	if err != nil {
		t.Fatalf("AStar error: %v", err)
	}
	if steps != len(res.Order) {
		t.Errorf("OnStep count = %d; want %d (one per round)", steps, len(res.Order))
	}
}
