// Package search implements the three grid traversal engines (BFS,
// DFS, A*) behind one shared contract: read start and end from the
// grid, mutate cell tags as exploration proceeds, notify an Observer
// once per round, and return a tri-state Outcome.
package search

import "github.com/inenovsk1/gridpath/grid"

// bfsWalker encapsulates mutable BFS state for one run.
type bfsWalker struct {
	g          *grid.Grid
	opts       Options
	start, end grid.Coord
	queue      []grid.Coord
	visited    map[grid.Coord]bool
	res        *Result
}

// BFS runs breadth-first search over g from its marked start cell to
// its marked end cell, applying any number of functional Options.
//
// One round is one dequeue plus the expansion of all its unvisited
// neighbors: each newly discovered neighbor is recorded in Parent,
// marked visited, and tagged Frontier (the end cell's tag is left
// alone); then OnStep fires and the dequeued cell is tagged Visited
// (the start cell's tag is left alone). Because the queue is FIFO and
// neighbors arrive in the grid's fixed order, the Parent map yields a
// shortest path on unit-cost grids.
//
// The caller is responsible for g.RecomputeAdjacency() having run since
// the last obstacle change.
//
// Returns ErrInvalidInput (wrapping the specific cause) before any tag
// mutation when the grid is nil, start or end is unset, or they
// coincide.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	start, end, err := validate(g)
	if err != nil {
		return nil, err
	}

	n := g.Rows() * g.Cols()
	w := &bfsWalker{
		g:       g,
		opts:    buildOptions(opts),
		start:   start,
		end:     end,
		queue:   make([]grid.Coord, 0, n),
		visited: make(map[grid.Coord]bool, n),
		res: &Result{
			Parent: make(map[grid.Coord]grid.Coord, n),
			Order:  make([]grid.Coord, 0, n),
		},
	}

	// Seed with the start cell.
	w.queue = append(w.queue, start)
	w.visited[start] = true

	return w.res, w.loop()
}

// loop processes the queue until the end is dequeued, the queue
// empties, or cancellation is observed.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		if cancelled(&w.opts) {
			w.res.Outcome = Cancelled
			return nil
		}

		current := w.queue[0]
		w.queue = w.queue[1:]

		if current == w.end {
			w.succeed()
			return nil
		}
		w.res.Order = append(w.res.Order, current)

		w.expand(current)
		w.opts.Observer.OnStep()
		markVisited(w.g, current, w.start)
	}

	w.res.Outcome = NotFound
	return nil
}

// expand discovers every unvisited neighbor of current: records its
// predecessor, marks it visited, tags it Frontier, and enqueues it.
func (w *bfsWalker) expand(current grid.Coord) {
	for _, nbr := range w.g.Neighbors(current) {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.res.Parent[nbr] = current
		markFrontier(w.g, nbr, w.end)
		w.queue = append(w.queue, nbr)
	}
}

// succeed reconstructs the path, notifies the observer, and finalizes
// the result.
func (w *bfsWalker) succeed() {
	w.res.Outcome = Found
	w.res.Path = reconstructPath(w.g, w.res.Parent, w.end)
	w.opts.Observer.OnSuccess(w.res.Path)
}
