// Package panel lays out the settings widgets and turns pointer input into
// writes on a config.Store. Drawing lives with the window code.
package panel

import (
	"strconv"

	"github.com/iburimskiy/particle-canvas/internal/config"
)

var HelpText = []string{
	"Move the mouse or click",
	"Double-click to toggle settings",
}

const helpLineHeight = 16

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Row is the layout of one field.
type Row struct {
	Field  config.Field
	Top    float64
	Track  Rect // slider track, zero for checkboxes
	Box    Rect // checkbox, zero for sliders
	hitbox Rect
}

type Panel struct {
	store   *config.Store
	Visible bool
	active  int // index of the slider being dragged, -1 when idle
}

func New(store *config.Store, visible bool) *Panel {
	return &Panel{store: store, Visible: visible, active: -1}
}

func (p *Panel) Toggle() {
	p.Visible = !p.Visible
	p.active = -1
}

func (p *Panel) Bounds() Rect {
	h := 2*config.PanelPadding + float64(len(HelpText)*helpLineHeight) + float64(len(config.Fields)*config.RowHeight)
	return Rect{X: config.PanelX, Y: config.PanelY, W: config.PanelWidth, H: h}
}

func (p *Panel) Rows() []Row {
	left := float64(config.PanelX + config.PanelPadding)
	width := float64(config.PanelWidth - 2*config.PanelPadding)
	top := float64(config.PanelY+config.PanelPadding) + float64(len(HelpText)*helpLineHeight)

	rows := make([]Row, len(config.Fields))
	for i, f := range config.Fields {
		r := Row{Field: f, Top: top + float64(i*config.RowHeight)}
		switch f.Kind {
		case config.KindRange:
			r.Track = Rect{X: left, Y: r.Top + 20, W: width, H: config.SliderHeight}
			r.hitbox = Rect{X: left - config.KnobRadius, Y: r.Track.Y - config.KnobRadius, W: width + 2*config.KnobRadius, H: config.SliderHeight + 2*config.KnobRadius}
		case config.KindCheckbox:
			r.Box = Rect{X: left, Y: r.Top + 16, W: config.CheckboxSize, H: config.CheckboxSize}
			r.hitbox = Rect{X: left, Y: r.Top, W: width, H: config.RowHeight}
		}
		rows[i] = r
	}
	return rows
}

// Contains reports whether (x, y) is over the visible panel.
func (p *Panel) Contains(x, y float64) bool {
	return p.Visible && p.Bounds().Contains(x, y)
}

// Press handles a button press. It returns false when the press is not the
// panel's to handle.
func (p *Panel) Press(x, y float64) (bool, error) {
	if !p.Contains(x, y) {
		return false, nil
	}
	for i, r := range p.Rows() {
		if !r.hitbox.Contains(x, y) {
			continue
		}
		if r.Field.Kind == config.KindCheckbox {
			return true, p.store.Toggle(r.Field.Name)
		}
		p.active = i
		return true, p.setFromX(r, x)
	}
	return true, nil
}

// Drag moves the active slider, if any.
func (p *Panel) Drag(x float64) error {
	if p.active < 0 {
		return nil
	}
	return p.setFromX(p.Rows()[p.active], x)
}

// PassesMove reports whether a cursor move to (x, y) belongs to the canvas.
// Moves over the visible panel or while a slider is held do not.
func (p *Panel) PassesMove(x, y float64) bool {
	return !p.Dragging() && !p.Contains(x, y)
}

func (p *Panel) Release()       { p.active = -1 }
func (p *Panel) Dragging() bool { return p.active >= 0 }

func (p *Panel) setFromX(r Row, x float64) error {
	frac := clamp01((x - r.Track.X) / r.Track.W)
	return p.store.SetNumber(r.Field.Name, r.Field.Min+frac*(r.Field.Max-r.Field.Min))
}

// Fraction is where the knob of a slider row sits, in [0, 1].
func (p *Panel) Fraction(r Row) float64 {
	v, err := p.store.Current().Number(r.Field.Name)
	if err != nil {
		return 0
	}
	return clamp01(r.Field.Fraction(v))
}

// Checked reports a checkbox row's state.
func (p *Panel) Checked(r Row) bool {
	v, _ := p.store.Current().Number(r.Field.Name)
	return v != 0
}

// Label is the row caption with the current value.
func (p *Panel) Label(r Row) string {
	if r.Field.Kind == config.KindCheckbox {
		return r.Field.Label
	}
	v, err := p.store.Current().Number(r.Field.Name)
	if err != nil {
		return r.Field.Label
	}
	return r.Field.Label + ": " + strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
