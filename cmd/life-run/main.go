// Command life-run drives the Life grid and snapshot store without a window.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"lifeedit/internal/app"
	"lifeedit/internal/life"
	"lifeedit/internal/snapshot"
)

type options struct {
	list  bool
	load  string
	steps int
	save  bool
	name  string
	print bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	var opts options
	fs.BoolVar(&opts.list, "list", false, "list stored snapshots and exit")
	fs.StringVar(&opts.load, "load", "", "snapshot to load before stepping")
	fs.IntVar(&opts.steps, "steps", 1, "generations to advance")
	fs.BoolVar(&opts.save, "save", false, "save the final grid")
	fs.StringVar(&opts.name, "name", "", "snapshot name for -save (default level_<timestamp>)")
	fs.BoolVar(&opts.print, "print", true, "print the final grid")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "", log.LstdFlags)
	if err := cfg.Validate(); err != nil {
		logger.Printf("invalid flags: %v", err)
		return 2
	}
	store, err := snapshot.Open(cfg.Dir)
	if err != nil {
		logger.Print(err)
		return 1
	}

	if opts.list {
		for name, err := range store.List() {
			if err != nil {
				logger.Print(err)
				return 1
			}
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	grid := life.FromCanvas(cfg.Width, cfg.Height, cfg.CellSize, cfg.Seeding())
	session := app.NewSession(grid, store, app.Options{CellSize: cfg.CellSize, Speed: cfg.Speed, Logger: logger})
	if opts.load != "" {
		if err := session.Load(opts.load); err != nil {
			logger.Print(err)
			return 1
		}
	}
	for i := 0; i < opts.steps; i++ {
		session.StepOnce()
	}
	if opts.save {
		name, err := session.Save(opts.name)
		if err != nil {
			logger.Print(err)
			return 1
		}
		fmt.Fprintln(stdout, name)
	}
	if opts.print {
		if err := printGrid(stdout, grid); err != nil {
			logger.Print(err)
			return 1
		}
	}
	return 0
}

// printGrid writes one line per row, '#' for alive and '.' for dead cells,
// followed by a summary line.
func printGrid(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	size := g.Dimensions()
	cells := g.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			c := byte('.')
			if cells[row*size.W+col] != 0 {
				c = '#'
			}
			bw.WriteByte(c)
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "generation %d, %d alive\n", g.Generation(), g.AliveCount())
	return bw.Flush()
}
