// Package web hosts the browser visualizer: an embedded canvas page
// plus a websocket endpoint that replays one search run as a stream of
// idempotent grid frames, one per engine round.
package web

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/inenovsk1/gridpath/grid"
	"github.com/inenovsk1/gridpath/search"
)

const (
	// writeWait bounds how long one frame write may block; a client
	// slower than this is treated as gone and the run is cancelled.
	writeWait = 1 * time.Second

	// defaultSize is used when the query omits grid dimensions.
	defaultSize = 30

	// maxSize caps requested dimensions; the visualizer targets small
	// boards, not bulk traversal.
	maxSize = 200

	// obstacleDensity is the fraction of cells walled off in the
	// generated layout.
	obstacleDensity = 0.28
)

var upgrader = websocket.Upgrader{
	// The page and the socket share a host; no cross-origin access.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Frame is one websocket message: a full snapshot of cell states, and,
// on the final message, the outcome plus the reconstructed path. Full
// snapshots keep frames idempotent: a client may drop any prefix of
// the stream and still render the latest state correctly.
type Frame struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Cells   [][]int  `json:"cells"`
	Done    bool     `json:"done"`
	Outcome string   `json:"outcome,omitempty"`
	Path    [][2]int `json:"path,omitempty"`
}

// Server streams animated search runs to browsers.
type Server struct {
	delay time.Duration
}

// NewServer returns a web host pacing frames by delay.
func NewServer(delay time.Duration) *Server {
	return &Server{delay: delay}
}

// Handler returns the route mux: "/" serves the canvas page, "/ws"
// streams one run per connection.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.servePage)
	mux.HandleFunc("/ws", s.serveRun)
	return mux
}

// ListenAndServe runs the host on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

// serveRun upgrades the connection, builds the requested layout, and
// replays one engine run frame by frame. The peer vanishing (write
// error) cancels the engine's context, so the run never outlives its
// audience.
func (s *Server) serveRun(w http.ResponseWriter, r *http.Request) {
	engine, err := engineFor(r.URL.Query().Get("algo"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows := sizeParam(r, "rows")
	cols := sizeParam(r, "cols")
	seed := seedParam(r)

	g, err := buildLayout(rows, cols, seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = ws.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	send := func(f Frame) {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteJSON(f); err != nil {
			cancel()
		}
	}

	obs := search.ObserverFuncs{
		Step: func() {
			send(snapshot(g, false, nil, ""))
			if s.delay > 0 {
				time.Sleep(s.delay)
			}
		},
	}

	res, err := engine(g, search.WithContext(ctx), search.WithObserver(obs))
	if err != nil {
		// buildLayout always sets start and end; unreachable in practice.
		send(Frame{Done: true, Outcome: err.Error()})
		return
	}
	send(snapshot(g, true, res.Path, res.Outcome.String()))
}

// engineFor resolves the algo query parameter, defaulting to BFS.
func engineFor(name string) (func(*grid.Grid, ...search.Option) (*search.Result, error), error) {
	switch name {
	case "", "bfs":
		return search.BFS, nil
	case "dfs":
		return search.DFS, nil
	case "astar":
		return search.AStar, nil
	default:
		return nil, fmt.Errorf("unknown algo %q (want bfs, dfs, or astar)", name)
	}
}

func sizeParam(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n <= 1 {
		return defaultSize
	}
	if n > maxSize {
		return maxSize
	}
	return n
}

func seedParam(r *http.Request) int64 {
	seed, err := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
	if err != nil {
		return time.Now().UnixNano()
	}
	return seed
}

// buildLayout makes a rows×cols grid: start top-left, end bottom-right,
// seeded random obstacles everywhere else, adjacency ready for a run.
// The layout is reproducible for a given seed.
func buildLayout(rows, cols int, seed int64) (*grid.Grid, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: rows - 1, Col: cols - 1}
	if err := g.MarkStart(start); err != nil {
		return nil, err
	}
	if err := g.MarkEnd(end); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := grid.Coord{Row: r, Col: c}
			if coord == start || coord == end {
				continue
			}
			if rng.Float64() < obstacleDensity {
				_ = g.MarkObstacle(coord)
			}
		}
	}
	g.RecomputeAdjacency()

	return g, nil
}

// snapshot captures the full board as one frame.
func snapshot(g *grid.Grid, done bool, path []grid.Coord, outcome string) Frame {
	cells := make([][]int, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		row := make([]int, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			row[c] = int(g.StateAt(grid.Coord{Row: r, Col: c}))
		}
		cells[r] = row
	}
	f := Frame{Rows: g.Rows(), Cols: g.Cols(), Cells: cells, Done: done, Outcome: outcome}
	for _, p := range path {
		f.Path = append(f.Path, [2]int{p.Row, p.Col})
	}
	return f
}
