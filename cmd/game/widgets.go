package main

import (
	"github.com/younwookim/impala/internal/application/scene"
	"github.com/younwookim/impala/internal/application/widget"
	"github.com/younwookim/impala/internal/domain/geom"
	"github.com/younwookim/impala/internal/domain/observer"
	"github.com/younwookim/impala/internal/infrastructure/ebitenio"
)

// Button size
const (
	buttonW = 120
	buttonH = 24
)

// labeledButton is a widget.Button living in a scene.Container
type labeledButton struct {
	scene.ObjectBase
	*widget.Button
	label  string
	screen *ebitenio.Screen
}

// newLabeledButton creates a button centered on (cx, cy) that calls onClick
// when clicked.
func newLabeledButton(d *devices, label string, cx, cy int, onClick func()) (*labeledButton, error) {
	b, err := widget.NewButton(d.keyboard, d.mouse, geom.NewRect(0, 0, buttonW, buttonH), d.clock)
	if err != nil {
		return nil, err
	}
	b.SetCentered(true)
	b.SetPos(cx, cy)
	if _, err := b.Subscribe(widget.EventClicked, func(observer.Event) { onClick() }); err != nil {
		b.Delete()
		return nil, err
	}
	return &labeledButton{Button: b, label: label, screen: d.screen}, nil
}

func (b *labeledButton) Render() {
	if b.screen == nil {
		return
	}
	ebitenio.DrawButton(b.screen.Target(), b.Button, b.label)
}

func (b *labeledButton) Wakeup(...any) {}

func (b *labeledButton) Close() error {
	b.Delete()
	return nil
}

// menu gives a column of buttons keyboard focus handling: Up and Down move
// the selection, the confirm key clicks the selected button.
type menu struct {
	buttons  []*labeledButton
	selected int
}

func (m *menu) add(b *labeledButton) {
	m.buttons = append(m.buttons, b)
	if len(m.buttons) == 1 {
		b.Selected = true
	}
}

func (m *menu) move(delta int) {
	if len(m.buttons) == 0 {
		return
	}
	m.buttons[m.selected].Selected = false
	m.selected = (m.selected + delta + len(m.buttons)) % len(m.buttons)
	m.buttons[m.selected].Selected = true
}
