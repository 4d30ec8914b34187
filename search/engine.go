package search

import (
	"fmt"

	"github.com/inenovsk1/gridpath/grid"
)

// validate performs the shared fail-fast checks and returns the start
// and end coordinates read from the grid. It runs before any traversal
// and before any tag mutation, so a rejected run leaves the grid
// untouched.
func validate(g *grid.Grid) (start, end grid.Coord, err error) {
	if g == nil {
		return start, end, fmt.Errorf("%w: %w", ErrInvalidInput, ErrGridNil)
	}
	start, ok := g.Start()
	if !ok {
		return start, end, fmt.Errorf("%w: %w", ErrInvalidInput, ErrStartUnset)
	}
	end, ok = g.End()
	if !ok {
		return start, end, fmt.Errorf("%w: %w", ErrInvalidInput, ErrEndUnset)
	}
	if start == end {
		return start, end, fmt.Errorf("%w: %w at %s", ErrInvalidInput, ErrSameStartEnd, start)
	}

	return start, end, nil
}

// buildOptions applies functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cancelled reports whether the run's context has been cancelled.
// Engines poll it once per round, at the same cadence as OnStep.
func cancelled(o *Options) bool {
	select {
	case <-o.Ctx.Done():
		return true
	default:
		return false
	}
}

// markFrontier tags c Frontier unless it is the end cell, whose tag the
// caller controls.
func markFrontier(g *grid.Grid, c, end grid.Coord) {
	if c != end {
		g.At(c).State = grid.Frontier
	}
}

// markVisited tags c Visited unless it is the start cell.
func markVisited(g *grid.Grid, c, start grid.Coord) {
	if c != start {
		g.At(c).State = grid.Visited
	}
}
