//go:build ebiten

package app

import (
	"lifeedit/internal/render"
	"lifeedit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	panel   *ui.Panel
	status  *ui.Status

	canvasW, canvasH int
}

// New constructs a Game for the provided session.
func New(session *Session) *Game {
	size := session.Grid().Dimensions()
	w, h := render.PixelSize(size.W, size.H, session.CellSize())
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H, session.CellSize(), render.DefaultStyle()),
		panel:   ui.NewPanel(session, w, h),
		status:  ui.NewStatus(session),
		canvasW: w,
		canvasH: h,
	}
}

// WindowSize returns the window size needed for the canvas and panel.
func (g *Game) WindowSize() (int, int) {
	return g.canvasW, g.canvasH + ui.PanelHeight
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}

	mx, my := ebiten.CursorPosition()
	if my < g.canvasH {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.session.ClickCell(mx, my)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.session.ClickNeighborhood(mx, my)
		}
	}

	g.panel.Update()
	g.status.Update()
	g.session.Tick()
	return nil
}

// Draw renders the grid, status line and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Grid().Cells())
	g.status.Draw(screen)
	g.panel.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
