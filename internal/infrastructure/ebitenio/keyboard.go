// Package ebitenio connects the engine to ebiten: it polls ebiten's
// keyboard and mouse into the input resources, buffers scene drawing in an
// offscreen Screen, and runs the engine inside ebiten's game loop.
package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/impala/internal/application/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeySpace:       input.KeySpace,
	ebiten.KeyBackspace:   input.KeyBackspace,
	ebiten.KeyTab:         input.KeyTab,
	ebiten.KeyArrowUp:     input.KeyUp,
	ebiten.KeyArrowDown:   input.KeyDown,
	ebiten.KeyArrowLeft:   input.KeyLeft,
	ebiten.KeyArrowRight:  input.KeyRight,
	ebiten.KeyA:           input.KeyA,
	ebiten.KeyB:           input.KeyB,
	ebiten.KeyC:           input.KeyC,
	ebiten.KeyD:           input.KeyD,
	ebiten.KeyE:           input.KeyE,
	ebiten.KeyF:           input.KeyF,
	ebiten.KeyG:           input.KeyG,
	ebiten.KeyH:           input.KeyH,
	ebiten.KeyI:           input.KeyI,
	ebiten.KeyJ:           input.KeyJ,
	ebiten.KeyK:           input.KeyK,
	ebiten.KeyL:           input.KeyL,
	ebiten.KeyM:           input.KeyM,
	ebiten.KeyN:           input.KeyN,
	ebiten.KeyO:           input.KeyO,
	ebiten.KeyP:           input.KeyP,
	ebiten.KeyQ:           input.KeyQ,
	ebiten.KeyR:           input.KeyR,
	ebiten.KeyS:           input.KeyS,
	ebiten.KeyT:           input.KeyT,
	ebiten.KeyU:           input.KeyU,
	ebiten.KeyV:           input.KeyV,
	ebiten.KeyW:           input.KeyW,
	ebiten.KeyX:           input.KeyX,
	ebiten.KeyY:           input.KeyY,
	ebiten.KeyZ:           input.KeyZ,
	ebiten.KeyDigit0:      input.Key0,
	ebiten.KeyDigit1:      input.Key1,
	ebiten.KeyDigit2:      input.Key2,
	ebiten.KeyDigit3:      input.Key3,
	ebiten.KeyDigit4:      input.Key4,
	ebiten.KeyDigit5:      input.Key5,
	ebiten.KeyDigit6:      input.Key6,
	ebiten.KeyDigit7:      input.Key7,
	ebiten.KeyDigit8:      input.Key8,
	ebiten.KeyDigit9:      input.Key9,
}

// Key maps an ebiten key. ok is false for keys the engine does not model.
func Key(k ebiten.Key) (key input.Key, ok bool) {
	key, ok = keyMap[k]
	return key, ok
}

// KeyboardDriver polls ebiten's key transitions into a Keyboard.
type KeyboardDriver struct {
	kb   *input.Keyboard
	keys []ebiten.Key
}

// NewKeyboardDriver creates a driver for kb. Attach it with kb.AddDriver.
func NewKeyboardDriver(kb *input.Keyboard) *KeyboardDriver {
	return &KeyboardDriver{kb: kb}
}

// Poll queues the keys pressed and released since the previous tick.
func (d *KeyboardDriver) Poll() {
	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		if key, ok := keyMap[k]; ok {
			d.kb.KeyDown(key, key.Rune())
		}
	}
	d.keys = inpututil.AppendJustReleasedKeys(d.keys[:0])
	for _, k := range d.keys {
		if key, ok := keyMap[k]; ok {
			d.kb.KeyUp(key, key.Rune())
		}
	}
}
