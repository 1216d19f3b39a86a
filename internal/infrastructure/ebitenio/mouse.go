package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/impala/internal/application/input"
)

var mouseButtons = [...]struct {
	from ebiten.MouseButton
	to   int
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonRight, input.ButtonRight},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

// MouseDriver polls ebiten's cursor and button transitions into a Mouse.
type MouseDriver struct {
	mouse  *input.Mouse
	x, y   int
	polled bool
}

// NewMouseDriver creates a driver for m. Attach it with m.AddDriver.
func NewMouseDriver(m *input.Mouse) *MouseDriver {
	return &MouseDriver{mouse: m}
}

// Poll queues a motion event when the cursor moved, then the button
// transitions at the new position.
func (d *MouseDriver) Poll() {
	x, y := ebiten.CursorPosition()
	if !d.polled || x != d.x || y != d.y {
		d.mouse.Move(x, y)
		d.x, d.y, d.polled = x, y, true
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.from) {
			d.mouse.ButtonDown(x, y, b.to)
		}
		if inpututil.IsMouseButtonJustReleased(b.from) {
			d.mouse.ButtonUp(x, y, b.to)
		}
	}
}
