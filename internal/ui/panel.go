//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifeedit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controller is what the panel drives.
type Controller interface {
	Running() bool
	TogglePlay()
	StepOnce()
	Clear()
	Generation() uint64
	Snapshots() ([]string, error)
	Save(name string) (string, error)
	Load(name string) error
}

// Panel renders the button bar below the simulation canvas.
type Panel struct {
	ctrl    Controller
	width   int
	offsetY int
	panel   *ebiten.Image
	pixel   *ebiten.Image
	buttons []Button

	speed     *core.ParameterControl
	intSetter core.IntParameterSetter

	snapshots []string
	selected  int
	message   string
}

// NewPanel constructs a panel of the given width, drawn offsetY pixels from
// the top of the screen.
func NewPanel(ctrl Controller, width, offsetY int) *Panel {
	p := &Panel{ctrl: ctrl, width: width, offsetY: offsetY, buttons: Layout(width)}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	if provider, ok := ctrl.(core.ParameterControlsProvider); ok {
		for _, c := range provider.ParameterControls() {
			if c.Type == core.ParamTypeInt {
				c := c
				p.speed = &c
				break
			}
		}
	}
	if setter, ok := ctrl.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	p.refreshSnapshots("")
	return p
}

// Update handles clicks on the panel.
func (p *Panel) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if my < p.offsetY {
		return
	}
	b, ok := HitTest(p.buttons, mx, my-p.offsetY)
	if !ok || !p.enabled(b.Action) {
		return
	}
	p.apply(b.Action)
}

func (p *Panel) apply(action Action) {
	switch action {
	case ActionPlay:
		p.ctrl.TogglePlay()
	case ActionStep:
		p.ctrl.StepOnce()
	case ActionClear:
		p.ctrl.Clear()
	case ActionSave:
		name, err := p.ctrl.Save("")
		if err != nil {
			p.message = err.Error()
			return
		}
		p.message = "saved " + name
		p.refreshSnapshots(name)
	case ActionLoad:
		name := p.selectedName()
		if name == "" {
			return
		}
		if err := p.ctrl.Load(name); err != nil {
			p.message = err.Error()
			return
		}
		p.message = "loaded " + name
	case ActionPrevSnapshot:
		p.selected = cycle(p.selected, -1, len(p.snapshots))
	case ActionNextSnapshot:
		p.selected = cycle(p.selected, 1, len(p.snapshots))
	case ActionSlower:
		p.adjustSpeed(-1)
	case ActionFaster:
		p.adjustSpeed(1)
	}
}

// enabled mirrors what the session accepts: snapshot I/O and stepping only
// while paused.
func (p *Panel) enabled(action Action) bool {
	switch action {
	case ActionSave, ActionStep:
		return !p.ctrl.Running()
	case ActionLoad:
		return !p.ctrl.Running() && p.selectedName() != ""
	case ActionPrevSnapshot, ActionNextSnapshot:
		return len(p.snapshots) > 1
	case ActionSlower, ActionFaster:
		return p.canAdjust(directionOf(action))
	default:
		return true
	}
}

func directionOf(action Action) int {
	if action == ActionSlower {
		return -1
	}
	return 1
}

func (p *Panel) speedValue() (int, bool) {
	if p.speed == nil || p.intSetter == nil {
		return 0, false
	}
	return p.intSetter.IntParameter(p.speed.Key)
}

func (p *Panel) canAdjust(direction int) bool {
	v, ok := p.speedValue()
	if !ok {
		return false
	}
	target := v + direction*p.speedStep()
	return p.speed.Clamp(target) == target
}

func (p *Panel) adjustSpeed(direction int) {
	v, ok := p.speedValue()
	if !ok {
		return
	}
	target := p.speed.Clamp(v + direction*p.speedStep())
	if target == v {
		return
	}
	p.intSetter.SetIntParameter(p.speed.Key, target)
}

func (p *Panel) speedStep() int {
	if p.speed.Step <= 0 {
		return 1
	}
	return p.speed.Step
}

func (p *Panel) refreshSnapshots(selectName string) {
	names, err := p.ctrl.Snapshots()
	if err != nil {
		p.message = err.Error()
		names = nil
	}
	p.snapshots = names
	p.selected = 0
	for i, n := range names {
		if n == selectName {
			p.selected = i
		}
	}
}

func (p *Panel) selectedName() string {
	if len(p.snapshots) == 0 {
		return ""
	}
	return p.snapshots[p.selected]
}

// Draw paints the panel onto screen.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.width <= 0 {
		return
	}
	if p.panel == nil {
		p.panel = ebiten.NewImage(p.width, PanelHeight)
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	for _, b := range p.buttons {
		label := b.Label
		if b.Action == ActionPlay && p.ctrl.Running() {
			label = "Pause"
		}
		p.drawButton(b.Rect, label, p.enabled(b.Action))
	}

	face := basicfont.Face7x13
	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	firstY := panelPadding
	name := p.selectedName()
	if name == "" {
		name = "no snapshots"
	}
	text.Draw(p.panel, name, face, rowEnd(p.buttons, firstY)+2*buttonGap, firstY+textBaseline, dimColor)

	secondY := panelPadding + buttonSize + buttonGap
	info := fmt.Sprintf("Steps: %d", p.ctrl.Generation())
	if v, ok := p.speedValue(); ok {
		info = fmt.Sprintf("%s %d/s   %s", p.speed.Label, v, info)
	}
	x := rowEnd(p.buttons, secondY) + 2*buttonGap
	text.Draw(p.panel, info, face, x, secondY+textBaseline, textColor)
	if p.message != "" {
		x += text.BoundString(face, info).Dx() + 4*buttonGap
		text.Draw(p.panel, p.message, face, x, secondY+textBaseline, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(p.offsetY))
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(p.panel, label, face, x, y, fg)
}
