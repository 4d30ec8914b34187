// Package tui hosts the interactive terminal visualizer: it owns the
// tcell screen, maps mouse clicks to grid cells, and replays search
// rounds as frame-by-frame redraws.
//
// Interaction follows the classic visualizer flow: the first click
// places the start, the second the end, further clicks (or drags) lay
// obstacles. 'b', 'd' and 'a' run BFS, DFS and A*; 'r' wipes the
// previous run's tags; 'c' clears the whole board; 'q', Escape or
// Ctrl-C quits, also mid-run, where the quit is delivered to the
// engine as context cancellation rather than a process exit.
package tui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/inenovsk1/gridpath/grid"
	"github.com/inenovsk1/gridpath/search"
)

// ErrQuit signals a user-requested exit; the caller treats it as a
// normal shutdown.
var ErrQuit = errors.New("tui: quit requested")

// runner is one of the three search entry points.
type runner func(*grid.Grid, ...search.Option) (*search.Result, error)

// App owns the screen and the grid being edited.
type App struct {
	screen tcell.Screen
	g      *grid.Grid
	delay  time.Duration
	status string
}

// New creates the terminal host for an already-built grid. Delay paces
// the animation: the host sleeps that long after redrawing each round.
func New(g *grid.Grid, delay time.Duration) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &App{screen: screen, g: g, delay: delay}, nil
}

// Run initializes the screen and drives the event loop until the user
// quits. The screen is always finalized on return, so the terminal is
// restored even on error paths.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()
	a.screen.EnableMouse()

	a.status = "click: start, end, obstacles | b/d/a: search | r: reset run | c: clear | q: quit"
	a.draw()

	for {
		ev := a.screen.PollEvent()
		if err := a.handle(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		a.draw()
	}
}

// handle dispatches one terminal event.
func (a *App) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			a.click(ev.Position())
		}
	case *tcell.EventKey:
		return a.key(ev)
	}
	return nil
}

// click marks the cell under the pointer: start first, then end, then
// obstacles. Clicks outside the board, and obstacle clicks on the
// markers, are ignored.
func (a *App) click(x, y int) {
	c := cellAt(x, y)
	if !a.g.InBounds(c) {
		return
	}
	switch {
	case !hasStart(a.g):
		_ = a.g.MarkStart(c)
	case !hasEnd(a.g):
		_ = a.g.MarkEnd(c)
	default:
		_ = a.g.MarkObstacle(c) // ErrOccupied on markers: ignore
	}
}

// key dispatches keyboard input.
func (a *App) key(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ErrQuit
		case 'c':
			a.g.Clear()
		case 'r':
			a.g.ClearSearch()
		case 'b':
			return a.runSearch("BFS", search.BFS)
		case 'd':
			return a.runSearch("DFS", search.DFS)
		case 'a':
			return a.runSearch("A*", search.AStar)
		}
	}
	return nil
}

// runSearch clears the previous run's tags, recomputes adjacency for
// the current obstacle layout, and animates one engine run. Quit events
// arriving mid-run cancel the engine's context; the engine winds down
// at its next round boundary and the quit propagates from here.
func (a *App) runSearch(name string, run runner) error {
	a.g.ClearSearch()
	a.g.RecomputeAdjacency()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := false
	obs := search.ObserverFuncs{
		Step: func() {
			if a.drainEvents() {
				quit = true
				cancel()
				return
			}
			a.draw()
			if a.delay > 0 {
				time.Sleep(a.delay)
			}
		},
	}

	a.status = name + ": searching..."
	res, err := run(a.g, search.WithContext(ctx), search.WithObserver(obs))
	if err != nil {
		// Invalid input: start or end missing. Report and keep editing.
		a.status = name + ": " + err.Error()
		return nil
	}
	if quit {
		return ErrQuit
	}

	switch res.Outcome {
	case search.Found:
		a.status = name + ": path found, length " + strconv.Itoa(len(res.Path))
	case search.NotFound:
		a.status = name + ": no path exists"
	case search.Cancelled:
		a.status = name + ": cancelled"
	}
	return nil
}

// drainEvents consumes every pending terminal event without blocking
// and reports whether a quit was requested.
func (a *App) drainEvents() bool {
	quit := false
	for a.screen.HasPendingEvent() {
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit = true
			}
		}
	}
	return quit
}

// draw repaints the whole board plus the status line. Grids are small,
// so a full repaint per frame stays well within a terminal refresh.
func (a *App) draw() {
	a.screen.Clear()
	for r := 0; r < a.g.Rows(); r++ {
		for c := 0; c < a.g.Cols(); c++ {
			coord := grid.Coord{Row: r, Col: c}
			style := styleFor(a.g.StateAt(coord))
			x, y := screenOrigin(coord)
			for i := 0; i < cellWidth; i++ {
				a.screen.SetContent(x+i, y, ' ', nil, style)
			}
		}
	}
	for i, ch := range a.status {
		a.screen.SetContent(i, a.g.Rows()+1, ch, nil, tcell.StyleDefault)
	}
	a.screen.Show()
}

func hasStart(g *grid.Grid) bool { _, ok := g.Start(); return ok }
func hasEnd(g *grid.Grid) bool   { _, ok := g.End(); return ok }
