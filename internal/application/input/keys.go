package input

// Key is a backend-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	}
	return "Unknown"
}

// KeyFromRune maps a character to the key that produces it. Remote
// keyboards only send characters, so this is how their events get a key.
func KeyFromRune(r rune) Key {
	switch {
	case r == '\n' || r == '\r':
		return KeyEnter
	case r == 0x1b:
		return KeyEscape
	case r == ' ':
		return KeySpace
	case r == '\b' || r == 0x7f:
		return KeyBackspace
	case r == '\t':
		return KeyTab
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	return KeyUnknown
}

// Rune returns the lowercase character k types, or 0 for keys without one
// (arrows, escape).
func (k Key) Rune() rune {
	switch {
	case k == KeyEnter:
		return '\r'
	case k == KeySpace:
		return ' '
	case k == KeyBackspace:
		return '\b'
	case k == KeyTab:
		return '\t'
	case k >= KeyA && k <= KeyZ:
		return 'a' + rune(k-KeyA)
	case k >= Key0 && k <= Key9:
		return '0' + rune(k-Key0)
	}
	return 0
}
