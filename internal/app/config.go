package app

import (
	"flag"
	"fmt"

	"lifeedit/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Dir      string
	Speed    int
	Seed     int64
	Random   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    1024,
		Height:   512,
		CellSize: life.DefaultCellSize,
		Dir:      "levels",
		Speed:    10,
		Seed:     0,
		Random:   0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.StringVar(&c.Dir, "dir", c.Dir, "directory holding .gol snapshots")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial cells")
	fs.Float64Var(&c.Random, "random", c.Random, "probability that a cell starts alive (0 = empty grid)")
}

// Validate reports configuration values that cannot produce a grid.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width < c.CellSize || c.Height < c.CellSize {
		return fmt.Errorf("canvas %dx%d is smaller than one %dpx cell", c.Width, c.Height, c.CellSize)
	}
	if c.Random < 0 || c.Random > 1 {
		return fmt.Errorf("random probability %v outside [0,1]", c.Random)
	}
	if c.Dir == "" {
		return fmt.Errorf("snapshot directory must not be empty")
	}
	return nil
}

// Seeding returns the grid seeding policy selected by the flags.
func (c *Config) Seeding() life.Seeding {
	if c.Random <= 0 {
		return life.AllDead()
	}
	return life.Random(c.Random, c.Seed)
}
