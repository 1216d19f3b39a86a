package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/impala/internal/application/clock"
	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/domain/geom"
	"github.com/younwookim/impala/internal/domain/observer"
)

type buttonFixture struct {
	keyboard *input.Keyboard
	mouse    *input.Mouse
	clock    *clock.Manual
	button   *Button
	clicks   int
}

func newButtonFixture(t *testing.T) *buttonFixture {
	t.Helper()
	f := &buttonFixture{
		keyboard: input.NewKeyboard(),
		mouse:    input.NewMouse(0),
		clock:    clock.NewManual(time.Unix(0, 0)),
	}
	b, err := NewButton(f.keyboard, f.mouse, geom.NewRect(0, 0, 100, 40), f.clock)
	require.NoError(t, err)
	_, err = b.Subscribe(EventClicked, func(observer.Event) { f.clicks++ })
	require.NoError(t, err)
	f.button = b
	return f
}

// frame mimics the engine order: devices first, then the widget.
func (f *buttonFixture) frame(t *testing.T) {
	t.Helper()
	require.NoError(t, f.keyboard.Update())
	require.NoError(t, f.mouse.Update())
	require.NoError(t, f.button.Update())
}

func TestButton_Click(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(50, 20)
	f.frame(t)
	assert.Equal(t, VisualHover, f.button.Visual())
	assert.True(t, f.button.Hovered())

	f.mouse.ButtonDown(50, 20, input.ButtonLeft)
	f.frame(t)
	assert.Equal(t, VisualPressed, f.button.Visual())
	assert.Equal(t, 0, f.clicks)

	f.mouse.ButtonUp(50, 20, input.ButtonLeft)
	f.frame(t)
	assert.Equal(t, 1, f.clicks)
	assert.Equal(t, VisualPressed, f.button.Visual(), "release shows pressed for one frame")

	f.frame(t)
	assert.Equal(t, VisualHover, f.button.Visual())
	assert.Equal(t, 1, f.clicks)
}

func TestButton_ClickInSingleFrame(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(50, 20)
	f.mouse.ButtonDown(50, 20, input.ButtonLeft)
	f.mouse.ButtonUp(50, 20, input.ButtonLeft)
	f.frame(t)

	assert.Equal(t, 1, f.clicks)
}

func TestButton_DisabledBeforePress(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(50, 20)
	f.frame(t)
	f.button.Enable(false)
	assert.Equal(t, VisualDisabled, f.button.Visual())

	f.mouse.ButtonDown(50, 20, input.ButtonLeft)
	f.frame(t)
	f.mouse.ButtonUp(50, 20, input.ButtonLeft)
	f.frame(t)

	assert.Equal(t, 0, f.clicks)
	assert.Equal(t, VisualDisabled, f.button.Visual())
}

func TestButton_DisabledDuringPress(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(50, 20)
	f.mouse.ButtonDown(50, 20, input.ButtonLeft)
	f.frame(t)

	f.button.Enable(false)
	f.frame(t)
	f.button.Enable(true)
	assert.Equal(t, VisualIdle, f.button.Visual())

	f.mouse.ButtonUp(50, 20, input.ButtonLeft)
	f.frame(t)

	assert.Equal(t, 0, f.clicks, "button must stay enabled for the whole press")
}

func TestButton_ReleaseOutside(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(50, 20)
	f.mouse.ButtonDown(50, 20, input.ButtonLeft)
	f.frame(t)

	f.mouse.Move(150, 20)
	f.mouse.ButtonUp(150, 20, input.ButtonLeft)
	f.frame(t)

	assert.Equal(t, 0, f.clicks)
	assert.Equal(t, VisualIdle, f.button.Visual())
}

func TestButton_PressOutsideReleaseInside(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(150, 20)
	f.mouse.ButtonDown(150, 20, input.ButtonLeft)
	f.frame(t)

	f.mouse.Move(50, 20)
	f.frame(t)
	assert.Equal(t, VisualIdle, f.button.Visual(), "held button pressed elsewhere")

	f.mouse.ButtonUp(50, 20, input.ButtonLeft)
	f.frame(t)
	assert.Equal(t, 0, f.clicks)
}

func TestButton_IgnoresOtherButtons(t *testing.T) {
	f := newButtonFixture(t)

	f.mouse.Move(50, 20)
	f.mouse.ButtonDown(50, 20, input.ButtonRight)
	f.mouse.ButtonUp(50, 20, input.ButtonRight)
	f.frame(t)

	assert.Equal(t, 0, f.clicks)
	assert.Equal(t, VisualHover, f.button.Visual())
}

func TestButton_KeyboardConfirm(t *testing.T) {
	f := newButtonFixture(t)
	f.button.Selected = true

	f.mouse.Move(300, 300)
	f.frame(t)
	assert.Equal(t, VisualHover, f.button.Visual(), "selected but unhovered shows hover")

	f.keyboard.KeyDown(input.KeyEnter, '\r')
	f.frame(t)
	first := f.button.Visual()

	var visuals []Visual
	for i := 0; i < 3; i++ {
		f.clock.Advance(50 * time.Millisecond)
		f.frame(t)
		visuals = append(visuals, f.button.Visual())
	}
	assert.Equal(t, 0, f.clicks, "confirm waits for the blink delay")
	assert.NotEqual(t, first, visuals[0], "selected button blinks while the timer runs")
	assert.Equal(t, visuals[0], visuals[2])

	f.clock.Advance(ConfirmDelay)
	f.frame(t)
	assert.Equal(t, 1, f.clicks)

	f.clock.Advance(time.Second)
	f.frame(t)
	assert.Equal(t, 1, f.clicks)
}

func TestButton_KeyboardConfirmRequiresSelection(t *testing.T) {
	f := newButtonFixture(t)

	f.keyboard.KeyDown(input.KeyEnter, '\r')
	f.frame(t)
	f.clock.Advance(time.Second)
	f.frame(t)
	assert.Equal(t, 0, f.clicks)

	f.button.Selected = true
	f.button.Enable(false)
	f.keyboard.KeyDown(input.KeyEnter, '\r')
	f.frame(t)
	f.button.Enable(true)
	f.clock.Advance(time.Second)
	f.frame(t)
	assert.Equal(t, 0, f.clicks)
}

func TestButton_Delete(t *testing.T) {
	f := newButtonFixture(t)
	f.button.Delete()

	f.mouse.Move(50, 20)
	f.mouse.ButtonDown(50, 20, input.ButtonLeft)
	f.mouse.ButtonUp(50, 20, input.ButtonLeft)
	f.frame(t)

	assert.Equal(t, 0, f.clicks)
	assert.Equal(t, 0, f.mouse.Count(input.EventButtonDown))
	assert.Equal(t, 0, f.keyboard.Count(input.EventKeyDown))
}

func TestButton_SetPos(t *testing.T) {
	f := newButtonFixture(t)

	f.button.SetPos(10, 10)
	assert.Equal(t, geom.NewRect(10, 10, 100, 40), f.button.Rect())

	f.button.SetCentered(true)
	f.button.SetPos(160, 120)
	assert.Equal(t, geom.NewRect(110, 100, 100, 40), f.button.Rect())
}

func TestVisual_String(t *testing.T) {
	assert.Equal(t, "Idle", VisualIdle.String())
	assert.Equal(t, "Hover", VisualHover.String())
	assert.Equal(t, "Pressed", VisualPressed.String())
	assert.Equal(t, "Disabled", VisualDisabled.String())
	assert.Equal(t, "Unknown", Visual(9).String())
}
