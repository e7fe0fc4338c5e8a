package app

import (
	"errors"
	"io"
	"log"

	"lifeedit/internal/core"
	"lifeedit/internal/life"
	"lifeedit/internal/snapshot"
)

const (
	// MinSpeed and MaxSpeed bound the generations-per-second control.
	MinSpeed = 1
	MaxSpeed = 60

	speedKey = "speed"
)

// ErrRunning is returned by operations that require a paused simulation.
var ErrRunning = errors.New("app: simulation is running; pause it first")

// Options tune a Session. Zero values pick defaults.
type Options struct {
	CellSize int
	Speed    int
	Clock    core.Clock
	Logger   *log.Logger
}

// Session drives a Grid on behalf of a front end. It owns the
// Paused/Running state, paces steps and gates snapshot I/O while running.
type Session struct {
	grid     *life.Grid
	store    *snapshot.Store
	cellSize int
	speed    int
	running  bool
	pacer    *core.FixedStep
	log      *log.Logger
}

// NewSession returns a paused session over grid and store.
func NewSession(grid *life.Grid, store *snapshot.Store, opts Options) *Session {
	if opts.CellSize <= 0 {
		opts.CellSize = life.DefaultCellSize
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		grid:     grid,
		store:    store,
		cellSize: opts.CellSize,
		log:      opts.Logger,
	}
	s.speed = clampSpeed(opts.Speed)
	s.pacer = core.NewFixedStep(s.speed, opts.Clock)
	return s
}

// Grid returns the grid the session drives.
func (s *Session) Grid() *life.Grid { return s.grid }

// CellSize returns the on-screen edge length of a cell in pixels.
func (s *Session) CellSize() int { return s.cellSize }

// Generation returns the number of generations since the last clear.
func (s *Session) Generation() uint64 { return s.grid.Generation() }

// AliveCount returns the number of alive cells.
func (s *Session) AliveCount() int { return s.grid.AliveCount() }

// Running reports whether the simulation advances on Tick.
func (s *Session) Running() bool { return s.running }

// Play starts the simulation. The next Tick steps immediately.
func (s *Session) Play() {
	if s.running {
		return
	}
	s.running = true
	s.pacer.Reset()
}

// Pause stops the simulation.
func (s *Session) Pause() { s.running = false }

// TogglePlay switches between Running and Paused.
func (s *Session) TogglePlay() {
	if s.running {
		s.Pause()
		return
	}
	s.Play()
}

// StepOnce advances exactly one generation and leaves the session paused.
func (s *Session) StepOnce() {
	s.running = false
	s.grid.Step()
}

// Tick is called from the front end's frame loop. It advances one
// generation when running and a step is due, and reports whether it did.
func (s *Session) Tick() bool {
	if !s.running || !s.pacer.ShouldStep() {
		return false
	}
	s.grid.Step()
	return true
}

// Speed returns the target generations per second.
func (s *Session) Speed() int { return s.speed }

// SetSpeed changes the target generations per second, clamped to
// [MinSpeed, MaxSpeed].
func (s *Session) SetSpeed(gps int) {
	s.speed = clampSpeed(gps)
	s.pacer.SetTPS(s.speed)
}

// ParameterControls exposes the speed control to the panel.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    speedKey,
		Label:  "Speed",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    MinSpeed,
		Max:    MaxSpeed,
		HasMin: true,
		HasMax: true,
	}}
}

// IntParameter reports the current value of an integer control.
func (s *Session) IntParameter(key string) (int, bool) {
	if key == speedKey {
		return s.speed, true
	}
	return 0, false
}

// SetIntParameter updates an integer control.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != speedKey {
		return false
	}
	s.SetSpeed(value)
	return true
}

// CellAt converts canvas pixel coordinates to a grid coordinate. Negative
// pixels map to negative cells so they stay out of range.
func (s *Session) CellAt(px, py int) (col, row int) {
	return floorDiv(px, s.cellSize), floorDiv(py, s.cellSize)
}

// ClickCell toggles the cell under the pixel. Clicks while running and
// clicks outside the grid are ignored. It reports whether a cell changed.
func (s *Session) ClickCell(px, py int) bool {
	return s.edit(px, py, s.grid.Toggle)
}

// ClickNeighborhood toggles the neighbours of the cell under the pixel,
// with the same rules as ClickCell.
func (s *Session) ClickNeighborhood(px, py int) bool {
	return s.edit(px, py, s.grid.ToggleNeighborhood)
}

func (s *Session) edit(px, py int, apply func(col, row int) error) bool {
	if s.running {
		return false
	}
	col, row := s.CellAt(px, py)
	if err := apply(col, row); err != nil {
		if errors.Is(err, life.ErrOutOfRange) {
			s.log.Printf("[session] click at (%d,%d) outside grid, ignored", px, py)
			return false
		}
		s.log.Printf("[session] edit failed: %v", err)
		return false
	}
	return true
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() { s.grid.Clear() }

// Snapshots lists the stored snapshot names in sorted order.
func (s *Session) Snapshots() ([]string, error) { return s.store.Names() }

// Save stores the grid under name, or under a timestamped name when name is
// empty, and returns the name used.
func (s *Session) Save(name string) (string, error) {
	if s.running {
		return "", ErrRunning
	}
	saved, err := s.store.Save(s.grid, name)
	if err != nil {
		return "", err
	}
	s.log.Printf("[session] saved %s (%d alive)", saved, s.grid.AliveCount())
	return saved, nil
}

// Load replaces the grid with the named snapshot.
func (s *Session) Load(name string) error {
	if s.running {
		return ErrRunning
	}
	if err := s.store.Load(name, s.grid); err != nil {
		return err
	}
	s.log.Printf("[session] loaded %s (%d alive)", name, s.grid.AliveCount())
	return nil
}

func clampSpeed(gps int) int {
	if gps < MinSpeed {
		return MinSpeed
	}
	if gps > MaxSpeed {
		return MaxSpeed
	}
	return gps
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
