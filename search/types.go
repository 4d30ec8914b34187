// Package search provides tunable options, observer plumbing, and error
// definitions for the grid traversal engines.
package search

import (
	"context"
	"errors"

	"github.com/inenovsk1/gridpath/grid"
)

// Sentinel errors for engine validation. All input errors wrap
// ErrInvalidInput, so callers may match either the umbrella or the
// specific cause with errors.Is.
var (
	// ErrInvalidInput is the umbrella for every pre-traversal rejection.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStartUnset is returned when the grid has no designated start cell.
	ErrStartUnset = errors.New("search: start cell not set")

	// ErrEndUnset is returned when the grid has no designated end cell.
	ErrEndUnset = errors.New("search: end cell not set")

	// ErrSameStartEnd is returned when start and end share a coordinate.
	ErrSameStartEnd = errors.New("search: start and end are the same cell")
)

// Outcome is the tri-state result of one engine run. Failing to find a
// path is not an error, and neither is cancellation; the host decides
// what to do with either.
type Outcome uint8

const (
	// NotFound means the frontier was exhausted without reaching the end.
	NotFound Outcome = iota
	// Found means the end was reached and the path reconstructed.
	Found
	// Cancelled means the run observed context cancellation mid-search.
	// Cell tags are left as of the last completed round.
	Cancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "NotFound"
	case Found:
		return "Found"
	case Cancelled:
		return "Cancelled"
	default:
		return "Outcome(?)"
	}
}

// Observer is the narrow contract between an engine and its caller for
// incremental visualization. OnStep fires once per round, after the
// round's tag mutations and before the expanded cell is retagged
// Visited; the engine blocks until it returns. OnSuccess fires exactly
// once, only when the end cell is reached, with the reconstructed path
// (end first, start-adjacent cell last, start excluded).
type Observer interface {
	OnStep()
	OnSuccess(path []grid.Coord)
}

// NopObserver ignores every notification. It is the default observer.
type NopObserver struct{}

// OnStep implements Observer.
func (NopObserver) OnStep() {}

// OnSuccess implements Observer.
func (NopObserver) OnSuccess([]grid.Coord) {}

// ObserverFuncs adapts plain functions to the Observer interface.
// Nil fields are treated as no-ops.
type ObserverFuncs struct {
	Step    func()
	Success func(path []grid.Coord)
}

// OnStep implements Observer.
func (o ObserverFuncs) OnStep() {
	if o.Step != nil {
		o.Step()
	}
}

// OnSuccess implements Observer.
func (o ObserverFuncs) OnSuccess(path []grid.Coord) {
	if o.Success != nil {
		o.Success(path)
	}
}

// Option configures an engine run via functional arguments.
type Option func(*Options)

// Options holds the knobs shared by all three engines.
type Options struct {
	// Ctx allows cooperative cancellation; it is polled once per round.
	Ctx context.Context

	// Observer receives step and success notifications.
	Observer Observer
}

// DefaultOptions returns Options with a background context and a
// no-op observer.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Observer: NopObserver{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver registers the step/success observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Result holds the outcome of one engine run:
//   - Outcome: Found, NotFound, or Cancelled.
//   - Path: reconstructed path on success (end first, start excluded),
//     nil otherwise.
//   - Parent: predecessor map built during traversal; Parent[c] is the
//     cell from which c was first reached. The start cell has no entry.
//   - Order: cells in expansion order, one per completed round.
type Result struct {
	Outcome Outcome
	Path    []grid.Coord
	Parent  map[grid.Coord]grid.Coord
	Order   []grid.Coord
}

// Found reports whether the run reached the end cell.
func (r *Result) Found() bool { return r.Outcome == Found }
