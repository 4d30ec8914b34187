// Package main is the entry point for the gridpath visualizer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/inenovsk1/gridpath/grid"
	"github.com/inenovsk1/gridpath/internal/tui"
	"github.com/inenovsk1/gridpath/internal/web"
)

func main() {
	os.Exit(run())
}

type options struct {
	rows  int
	cols  int
	delay time.Duration
	web   bool
	addr  string
}

func run() int {
	opts := parseFlags()

	if opts.web {
		srv := web.NewServer(opts.delay)
		fmt.Fprintf(os.Stderr, "gridpath: serving on http://%s\n", opts.addr)
		if err := srv.ListenAndServe(opts.addr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	g, err := grid.New(opts.rows, opts.cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	app, err := tui.New(g, opts.delay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.IntVar(&opts.rows, "rows", 30, "Grid row count")
	flag.IntVar(&opts.cols, "cols", 30, "Grid column count")
	flag.DurationVar(&opts.delay, "delay", 15*time.Millisecond, "Pause between animation frames")
	flag.BoolVar(&opts.web, "web", false, "Serve the browser visualizer instead of the terminal UI")
	flag.StringVar(&opts.addr, "addr", "localhost:8080", "Listen address for -web")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridpath - watch BFS, DFS and A* explore a grid\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridpath [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nTerminal UI: click start, end, then obstacles;\n")
		fmt.Fprintf(os.Stderr, "press b/d/a to search, r to reset, c to clear, q to quit.\n")
	}
	flag.Parse()

	return opts
}
