package search

import (
	"container/heap"

	"github.com/inenovsk1/gridpath/grid"
)

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the A* heuristic.
// For unit-cost orthogonal steps it is admissible and consistent, which
// guarantees the optimality of the path A* returns.
func Manhattan(a, b grid.Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// astarWalker encapsulates mutable A* state for one run. Unknown cells
// carry an implicit gScore of +infinity, represented by absence from
// the gScore map.
type astarWalker struct {
	g          *grid.Grid
	opts       Options
	start, end grid.Coord
	open       openPQ
	inOpen     map[grid.Coord]bool
	gScore     map[grid.Coord]int
	seq        int // insertion counter feeding the tie-break
	res        *Result
}

// AStar runs A* over g from its marked start cell to its marked end
// cell, applying any number of functional Options.
//
// The open set is a min-heap ordered by fScore with insertion order as
// the tie-break (oldest first), so the expansion order and the OnStep
// sequence are fully deterministic and reproducible across runs on the
// same grid. One round pops the lowest entry, relaxes each
// neighbor (tentative gScore = gScore[current]+1; improvements update
// the score maps and Parent, and push not-yet-open neighbors tagged
// Frontier), fires OnStep, and retags the popped cell Visited. Cells
// already in the open set are not re-prioritized when their scores
// improve; with the consistent Manhattan heuristic a popped cell's
// gScore is already final, so the path remains optimal.
//
// The caller is responsible for g.RecomputeAdjacency() having run since
// the last obstacle change.
func AStar(g *grid.Grid, opts ...Option) (*Result, error) {
	start, end, err := validate(g)
	if err != nil {
		return nil, err
	}

	n := g.Rows() * g.Cols()
	w := &astarWalker{
		g:      g,
		opts:   buildOptions(opts),
		start:  start,
		end:    end,
		open:   make(openPQ, 0, n),
		inOpen: make(map[grid.Coord]bool, n),
		gScore: map[grid.Coord]int{start: 0},
		res: &Result{
			Parent: make(map[grid.Coord]grid.Coord, n),
			Order:  make([]grid.Coord, 0, n),
		},
	}

	heap.Init(&w.open)
	heap.Push(&w.open, &openItem{cell: start, fScore: Manhattan(start, end)})
	w.inOpen[start] = true

	return w.res, w.loop()
}

// loop pops and expands open-set entries until the end is popped, the
// open set empties, or cancellation is observed.
func (w *astarWalker) loop() error {
	for w.open.Len() > 0 {
		if cancelled(&w.opts) {
			w.res.Outcome = Cancelled
			return nil
		}

		current := heap.Pop(&w.open).(*openItem).cell
		delete(w.inOpen, current)

		if current == w.end {
			w.res.Outcome = Found
			w.res.Path = reconstructPath(w.g, w.res.Parent, w.end)
			w.opts.Observer.OnSuccess(w.res.Path)
			return nil
		}
		w.res.Order = append(w.res.Order, current)

		w.relax(current)
		w.opts.Observer.OnStep()
		markVisited(w.g, current, w.start)
	}

	w.res.Outcome = NotFound
	return nil
}

// relax attempts to improve each neighbor of current through it.
func (w *astarWalker) relax(current grid.Coord) {
	gCur := w.gScore[current]
	for _, nbr := range w.g.Neighbors(current) {
		tentative := gCur + 1
		if known, ok := w.gScore[nbr]; ok && tentative >= known {
			continue
		}
		w.gScore[nbr] = tentative
		w.res.Parent[nbr] = current
		if !w.inOpen[nbr] {
			w.seq++
			heap.Push(&w.open, &openItem{
				cell:   nbr,
				fScore: tentative + Manhattan(nbr, w.end),
				order:  w.seq,
			})
			w.inOpen[nbr] = true
			markFrontier(w.g, nbr, w.end)
		}
	}
}
