//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusSource reports what the status line shows.
type StatusSource interface {
	Running() bool
	Generation() uint64
	AliveCount() int
}

// Status draws a one-line state summary over the top-left of the canvas.
// H toggles it.
type Status struct {
	src     StatusSource
	visible bool
	bg      *ebiten.Image
}

// NewStatus constructs a visible status line.
func NewStatus(src StatusSource) *Status {
	s := &Status{src: src, visible: true}
	s.bg = ebiten.NewImage(1, 1)
	s.bg.Fill(color.RGBA{A: 160})
	return s
}

// Update handles the visibility toggle.
func (s *Status) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.visible = !s.visible
	}
}

// Draw renders the status line onto screen.
func (s *Status) Draw(screen *ebiten.Image) {
	if !s.visible {
		return
	}
	state := "paused"
	if s.src.Running() {
		state = "running"
	}
	line := fmt.Sprintf("%s  gen %d  alive %d", state, s.src.Generation(), s.src.AliveCount())

	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+8), float64(bounds.Dy()+6))
	op.GeoM.Translate(2, 2)
	screen.DrawImage(s.bg, op)
	text.Draw(screen, line, face, 6, 2+3+bounds.Dy(), color.White)
}
