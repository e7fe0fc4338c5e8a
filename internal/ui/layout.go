package ui

import "image"

// Action identifies a control panel button.
type Action int

const (
	ActionPlay Action = iota
	ActionStep
	ActionClear
	ActionSave
	ActionLoad
	ActionPrevSnapshot
	ActionNextSnapshot
	ActionSlower
	ActionFaster
)

// Button is a clickable rectangle in panel-local coordinates.
type Button struct {
	Action Action
	Label  string
	Rect   image.Rectangle
}

const (
	// PanelHeight is the height of the control panel below the canvas.
	PanelHeight = 2*buttonSize + buttonGap + 2*panelPadding

	panelPadding = 8
	buttonSize   = 24
	buttonGap    = 6
	textBaseline = 16
)

var firstRow = []struct {
	action Action
	label  string
	width  int
}{
	{ActionPlay, "Play", 56},
	{ActionStep, "Step", 48},
	{ActionClear, "Clear", 52},
	{ActionSave, "Save", 48},
	{ActionLoad, "Load", 48},
	{ActionPrevSnapshot, "<", buttonSize},
	{ActionNextSnapshot, ">", buttonSize},
}

// Layout places the panel buttons. The first row holds the simulation and
// snapshot buttons, the second the speed controls. Buttons that would not
// fit in width are dropped.
func Layout(width int) []Button {
	var out []Button
	x := panelPadding
	y := panelPadding
	for _, b := range firstRow {
		r := image.Rect(x, y, x+b.width, y+buttonSize)
		if r.Max.X > width-panelPadding {
			break
		}
		out = append(out, Button{Action: b.action, Label: b.label, Rect: r})
		x = r.Max.X + buttonGap
	}

	y += buttonSize + buttonGap
	minus := image.Rect(panelPadding, y, panelPadding+buttonSize, y+buttonSize)
	plus := image.Rect(minus.Max.X+buttonGap, y, minus.Max.X+buttonGap+buttonSize, y+buttonSize)
	if plus.Max.X <= width-panelPadding {
		out = append(out,
			Button{Action: ActionSlower, Label: "-", Rect: minus},
			Button{Action: ActionFaster, Label: "+", Rect: plus},
		)
	}
	return out
}

// HitTest returns the button under (x, y), in panel-local coordinates.
func HitTest(buttons []Button, x, y int) (Button, bool) {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// rowEnd returns the right edge of the last button on the row containing y.
func rowEnd(buttons []Button, y int) int {
	end := panelPadding
	for _, b := range buttons {
		if b.Rect.Min.Y <= y && y < b.Rect.Max.Y && b.Rect.Max.X > end {
			end = b.Rect.Max.X
		}
	}
	return end
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// cycle moves the selection index by delta within n entries, wrapping.
func cycle(selected, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((selected+delta)%n + n) % n
}
