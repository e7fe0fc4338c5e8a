//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeedit/internal/app"
	"lifeedit/internal/life"
	"lifeedit/internal/snapshot"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	store, err := snapshot.Open(cfg.Dir)
	if err != nil {
		log.Fatal(err)
	}

	grid := life.FromCanvas(cfg.Width, cfg.Height, cfg.CellSize, cfg.Seeding())
	session := app.NewSession(grid, store, app.Options{
		CellSize: cfg.CellSize,
		Speed:    cfg.Speed,
		Logger:   log.New(os.Stderr, "", log.LstdFlags),
	})
	game := app.New(session)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
