// Package life implements a bounded Conway's Game of Life grid.
package life

import (
	"errors"
	"fmt"

	"lifeedit/internal/core"
)

// DefaultCellSize is the edge length, in pixels, of one cell on the canvas.
const DefaultCellSize = 20

var (
	// ErrOutOfRange reports a coordinate outside the grid.
	ErrOutOfRange = errors.New("life: coordinate out of range")
	// ErrSizeMismatch reports a cell buffer whose length differs from the grid's cell count.
	ErrSizeMismatch = errors.New("life: cell count mismatch")
)

// State is the binary state of a cell.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is a grid coordinate together with its state.
type Cell struct {
	Col, Row int
	State    State
}

// Seeding controls how a new grid is populated.
type Seeding struct {
	// Probability is the chance that a cell starts Alive. Zero means all dead.
	Probability float64
	Seed        int64
}

// AllDead returns the seeding policy that starts with every cell Dead.
func AllDead() Seeding { return Seeding{} }

// Random returns a policy that makes every cell Alive with probability p,
// drawing from a PCG source seeded with seed.
func Random(p float64, seed int64) Seeding {
	return Seeding{Probability: p, Seed: seed}
}

// Grid is a fixed-size, non-wrapping Life board. The current generation lives
// in cur; Step writes the next one into nxt and swaps the two.
type Grid struct {
	cur, nxt   *core.ByteGrid
	generation uint64
}

// New returns a grid with the given number of columns and rows.
func New(columns, rows int, seeding Seeding) *Grid {
	g := &Grid{cur: core.NewByteGrid(columns, rows), nxt: core.NewByteGrid(columns, rows)}
	if seeding.Probability > 0 {
		core.FillBernoulli(core.NewRNG(seeding.Seed).Source(), g.cur.Cells(), seeding.Probability)
	}
	return g
}

// FromCanvas sizes a grid to fit a width x height pixel canvas using square
// cells of cellSize pixels. Partial cells at the right and bottom are dropped.
func FromCanvas(width, height, cellSize int, seeding Seeding) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return New(width/cellSize, height/cellSize, seeding)
}

// Dimensions returns the number of columns (W) and rows (H).
func (g *Grid) Dimensions() core.Size { return core.Size{W: g.cur.W, H: g.cur.H} }

// CellCount returns columns*rows.
func (g *Grid) CellCount() int { return len(g.cur.Cells()) }

// Generation returns how many steps have run since construction or the last Clear.
func (g *Grid) Generation() uint64 { return g.generation }

// Cells exposes the current generation in row-major order, 1 for alive and 0
// for dead. Callers must not modify it; use Toggle or SetCells.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// AliveCount returns the number of alive cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.cur.Cells() {
		n += int(c)
	}
	return n
}

// CellAt returns the state of the cell at (col, row).
func (g *Grid) CellAt(col, row int) (State, error) {
	if !g.cur.Contains(col, row) {
		return Dead, outOfRange(col, row)
	}
	return State(g.cur.Cells()[g.cur.Index(col, row)]), nil
}

// Toggle flips the cell at (col, row) between Alive and Dead.
func (g *Grid) Toggle(col, row int) error {
	if !g.cur.Contains(col, row) {
		return outOfRange(col, row)
	}
	g.flip(col, row)
	return nil
}

// ToggleNeighborhood flips every existing neighbour of (col, row). The cell
// itself is left untouched.
func (g *Grid) ToggleNeighborhood(col, row int) error {
	if !g.cur.Contains(col, row) {
		return outOfRange(col, row)
	}
	g.cur.Neighbors(col, row, g.flip)
	return nil
}

// Neighbors returns the in-bounds Moore neighbours of (col, row): 3 for a
// corner, 5 for an edge cell and 8 otherwise. It returns nil when (col, row)
// is outside the grid.
func (g *Grid) Neighbors(col, row int) []Cell {
	if !g.cur.Contains(col, row) {
		return nil
	}
	cells := g.cur.Cells()
	out := make([]Cell, 0, 8)
	g.cur.Neighbors(col, row, func(nx, ny int) {
		out = append(out, Cell{Col: nx, Row: ny, State: State(cells[g.cur.Index(nx, ny)])})
	})
	return out
}

// Step advances the grid by one generation. Every next state is computed
// from the current generation before any cell changes.
func (g *Grid) Step() {
	cur := g.cur.Cells()
	nxt := g.nxt.Cells()
	w, h := g.cur.W, g.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			g.cur.Neighbors(x, y, func(nx, ny int) {
				neighbors += int(cur[ny*w+nx])
			})
			idx := y*w + x
			nxt[idx] = 0
			if Rule(cur[idx] == 1, neighbors) {
				nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	g.cur.Clear()
	g.generation = 0
}

// SetCells replaces the whole generation. Any non-zero value is Alive. The
// grid is left untouched when len(cells) differs from CellCount.
func (g *Grid) SetCells(cells []uint8) error {
	dst := g.cur.Cells()
	if len(cells) != len(dst) {
		return fmt.Errorf("%w: got %d cells, grid has %d", ErrSizeMismatch, len(cells), len(dst))
	}
	for i, c := range cells {
		dst[i] = 0
		if c != 0 {
			dst[i] = 1
		}
	}
	return nil
}

func (g *Grid) flip(col, row int) {
	g.cur.Cells()[g.cur.Index(col, row)] ^= 1
}

func outOfRange(col, row int) error {
	return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, col, row)
}
