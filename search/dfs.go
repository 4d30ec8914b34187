package search

import "github.com/inenovsk1/gridpath/grid"

// dfsFrame is one level of the explicit exploration stack: the cell
// being expanded, its neighbor snapshot, and the next neighbor index.
type dfsFrame struct {
	cell grid.Coord
	nbrs []grid.Coord
	next int
}

// dfsWalker encapsulates mutable DFS state for one run, including the
// found latch that short-circuits sibling iteration once the end cell
// is reached. The latch lives here, never at package level, so runs
// stay reentrant.
type dfsWalker struct {
	g          *grid.Grid
	opts       Options
	start, end grid.Coord
	stack      []dfsFrame
	visited    map[grid.Coord]bool
	found      bool
	res        *Result
}

// DFS runs depth-first search over g from its marked start cell to its
// marked end cell, applying any number of functional Options.
//
// Exploration descends along the grid's fixed neighbor order. One round
// is one neighbor visit: the neighbor's predecessor is recorded, the
// current cell is retagged Visited, OnStep fires, and the walk descends
// into the neighbor (tagging it Frontier), or stops if the neighbor is
// the end cell. Already-visited non-start neighbors are retagged
// Visited on every re-encounter; re-encounters do not fire OnStep or
// re-explore. Recursion depth can reach the full cell count, so the
// walk runs on an explicit frame stack rather than the call stack.
//
// The caller is responsible for g.RecomputeAdjacency() having run since
// the last obstacle change.
//
// The returned path follows whatever branch reached the end first; its
// length is unconstrained and often exceeds the BFS optimum.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
	start, end, err := validate(g)
	if err != nil {
		return nil, err
	}

	n := g.Rows() * g.Cols()
	w := &dfsWalker{
		g:       g,
		opts:    buildOptions(opts),
		start:   start,
		end:     end,
		stack:   make([]dfsFrame, 0, n),
		visited: make(map[grid.Coord]bool, n),
		res: &Result{
			Parent: make(map[grid.Coord]grid.Coord, n),
			Order:  make([]grid.Coord, 0, n),
		},
	}

	w.visited[start] = true
	w.push(start)

	return w.res, w.loop()
}

// push enters a cell: marks it visited, tags it Frontier, and places a
// frame for it on the stack. The start cell keeps its own tag.
func (w *dfsWalker) push(c grid.Coord) {
	w.visited[c] = true
	if c != w.start {
		markFrontier(w.g, c, w.end)
	}
	w.stack = append(w.stack, dfsFrame{cell: c, nbrs: w.g.Neighbors(c)})
}

// loop drives the frame stack until the end is reached, every branch is
// exhausted, or cancellation is observed.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 && !w.found {
		frame := &w.stack[len(w.stack)-1]
		if frame.next >= len(frame.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nbr := frame.nbrs[frame.next]
		frame.next++

		if w.visited[nbr] {
			// Re-encountered neighbors flip straight to Visited and
			// are not re-explored.
			if nbr != w.start {
				w.g.At(nbr).State = grid.Visited
			}
			continue
		}

		if cancelled(&w.opts) {
			w.res.Outcome = Cancelled
			return nil
		}

		w.res.Parent[nbr] = frame.cell
		markVisited(w.g, frame.cell, w.start)
		w.res.Order = append(w.res.Order, nbr)

		if nbr == w.end {
			w.found = true
			w.res.Outcome = Found
			w.res.Path = reconstructPath(w.g, w.res.Parent, w.end)
			w.opts.Observer.OnSuccess(w.res.Path)
			w.opts.Observer.OnStep()
			return nil
		}

		w.opts.Observer.OnStep()
		w.push(nbr)
	}

	if !w.found {
		w.res.Outcome = NotFound
	}
	return nil
}
